package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Fixed repository layout: the tool always runs from the repository root.
const (
	entriesDir = "entries"
	indexFile  = "README.md"
)

var rootCmd = &cobra.Command{
	Use:          "howto",
	Short:        "howto — maintain the README index of the HOWTO articles",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `howto maintains this repository's README.md: an index of every Markdown
article under entries/, listed by its first-line heading.

Run it with no arguments from the repository root to regenerate the index.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
