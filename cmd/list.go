package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"howto/internal/entry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries with their titles",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	entries, err := entry.Load(entriesDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Printf("no entries found under %s/\n", entriesDir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TITLE\tPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Title, e.Path)
	}
	return w.Flush()
}
