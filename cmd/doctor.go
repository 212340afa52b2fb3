package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"howto/internal/entry"
	"howto/internal/index"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run pre-flight repository checks",
	Long: `Check that the repository layout is what howto expects.
Run this command when something seems wrong, or before filing a bug report.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true
	failD := func(format string, args ...any) {
		printErr("", fmt.Sprintf(format, args...))
		allOK = false
	}

	printSection("howto doctor")
	fmt.Println()

	// ── Check 1: entries directory ────────────────────────────────────────
	fmt.Printf("[ %s/ ]\n", entriesDir)
	entries, discErr := entry.Discover(entriesDir)
	switch {
	case discErr != nil:
		failD("%v", discErr)
	case len(entries) == 0:
		printWarn("", fmt.Sprintf("no entries found under %s/", entriesDir))
	default:
		printOK("", fmt.Sprintf("%d entries found", len(entries)))
	}
	fmt.Println()

	// ── Check 2: index heading ────────────────────────────────────────────
	fmt.Printf("[ %s ]\n", indexFile)
	title, headErr := entry.ReadHeading(indexFile)
	if headErr != nil {
		failD("%v", headErr)
	} else {
		printOK("", fmt.Sprintf("top-level heading: %s", title))
	}
	fmt.Println()

	// ── Check 3: index freshness ──────────────────────────────────────────
	fmt.Println("[ index freshness ]")
	if discErr == nil && headErr == nil {
		var buf bytes.Buffer
		if _, err := index.Render(&buf, indexFile, entriesDir); err != nil {
			failD("cannot render index: %v", err)
		} else if current, err := os.ReadFile(indexFile); err != nil {
			failD("cannot read %s: %v", indexFile, err)
		} else if bytes.Equal(current, buf.Bytes()) {
			printOK("", fmt.Sprintf("%s is up to date", indexFile))
		} else {
			printWarn("", fmt.Sprintf("%s is stale — run 'howto' to regenerate", indexFile))
			allOK = false
		}
	} else {
		printSkip("", "skipped (earlier checks failed)")
	}
	fmt.Println()

	// ── Check 4: regeneration lock ────────────────────────────────────────
	fmt.Println("[ regeneration lock ]")
	if lockPath, err := generateLockPath(indexFile); err != nil {
		printWarn("", fmt.Sprintf("cannot determine lock path: %v", err))
	} else {
		l := flock.New(lockPath)
		locked, err := l.TryLock()
		switch {
		case err != nil:
			printWarn("", fmt.Sprintf("cannot probe lock %s: %v", lockPath, err))
		case !locked:
			printWarn("", fmt.Sprintf("regeneration lock is held (lock: %s)", lockPath))
			allOK = false
		default:
			_ = l.Unlock()
			printOK("", "no regeneration in progress")
		}
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed.")
		return nil
	}
	fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
	return fmt.Errorf("doctor found issues")
}
