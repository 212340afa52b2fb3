package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"howto/internal/catalog"
)

var flagExportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a YAML catalog of all entries",
	Long: `Export a machine-readable YAML catalog of the corpus: one record per
entry with its title, path, content hash, and word count.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Write the catalog to a file instead of stdout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	cat, err := catalog.Build(entriesDir)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cat)
	if err != nil {
		return fmt.Errorf("cannot marshal catalog: %w", err)
	}

	if flagExportOut == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(flagExportOut, data, 0o644); err != nil {
		return fmt.Errorf("cannot write catalog %s: %w", flagExportOut, err)
	}
	printOK("", fmt.Sprintf("catalog written: %s (%d entries)", flagExportOut, cat.Count))
	return nil
}
