package cmd

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"howto/internal/entry"
)

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate every entry's first-line heading",
	Long: `Check that every Markdown file under entries/ starts with a #-heading,
and warn about titles shared by more than one entry. Unlike a regeneration,
lint keeps going after the first problem and reports all of them.`,
	Args: cobra.NoArgs,
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)
}

func runLint(_ *cobra.Command, _ []string) error {
	printSection("howto lint")

	entries, err := entry.Discover(entriesDir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		printWarn("", fmt.Sprintf("no entries found under %s/", entriesDir))
		return nil
	}
	fmt.Println()

	titles := map[string][]string{}
	var missing int
	for _, e := range entries {
		title, err := entry.ReadHeading(e.Path)
		if err != nil {
			var mh *entry.MissingHeadingError
			if errors.As(err, &mh) {
				printErr("", mh.Error())
				missing++
				continue
			}
			return err
		}
		printOK("", e.Path)
		titles[title] = append(titles[title], e.Path)
	}

	// Duplicate titles are permitted in the generated index; lint only
	// surfaces them so authors can rename deliberately.
	var dupTitles []string
	for title, paths := range titles {
		if len(paths) > 1 {
			dupTitles = append(dupTitles, title)
		}
	}
	sort.Strings(dupTitles)
	if len(dupTitles) > 0 {
		fmt.Println()
		for _, title := range dupTitles {
			printWarn("", fmt.Sprintf("duplicate title %q: %s", title, strings.Join(titles[title], ", ")))
		}
	}

	fmt.Printf("\n  %d entries / %d missing heading / %d duplicate titles\n",
		len(entries), missing, len(dupTitles))

	if missing > 0 {
		return fmt.Errorf("%d entry file(s) have no first-line heading", missing)
	}
	return nil
}
