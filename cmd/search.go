package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"howto/internal/search"
)

var flagSearchK int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries by keyword",
	Long: `Search entry titles, paths, and bodies by keyword.
All query tokens must match (AND semantics); matching is case-insensitive.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&flagSearchK, "limit", "k", 0, "Maximum number of results (0 = all)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	docs, err := search.LoadCorpus(entriesDir)
	if err != nil {
		return err
	}

	matches := search.Keyword(docs, query, flagSearchK)
	if len(matches) == 0 {
		fmt.Printf("no entries match %q\n", query)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for i, m := range matches {
		fmt.Fprintf(w, "  %d.\t%s\t%s\n", i+1, m.Title, m.Path)
	}
	return w.Flush()
}
