// Package index regenerates the root README.md from the entries corpus.
package index

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"howto/internal/entry"
)

// Render writes the full index content to w: the preserved top-level
// heading from indexPath, a blank line, then one Markdown link line plus
// one blank line per entry under entriesRoot, in path order. It returns
// the number of entries written.
//
// Any heading-extraction failure aborts the render; whatever was already
// written to w stays written (no transactional guarantee).
func Render(w io.Writer, indexPath, entriesRoot string) (int, error) {
	title, err := entry.ReadHeading(indexPath)
	if err != nil {
		return 0, err
	}
	return render(w, title, entriesRoot)
}

// Build regenerates the index: it reads the preserved heading from
// indexPath, then overwrites outPath with the rendered index. indexPath
// and outPath are usually the same file, so the heading is read in full
// before the output is truncated.
func Build(indexPath, entriesRoot, outPath string) (int, error) {
	title, err := entry.ReadHeading(indexPath)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(outPath)
	if err != nil {
		return 0, fmt.Errorf("cannot create %s: %w", outPath, err)
	}

	bw := bufio.NewWriter(f)
	n, err := render(bw, title, entriesRoot)
	if err != nil {
		_ = bw.Flush()
		_ = f.Close()
		return n, err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return n, fmt.Errorf("cannot write %s: %w", outPath, err)
	}
	if err := f.Close(); err != nil {
		return n, fmt.Errorf("cannot write %s: %w", outPath, err)
	}
	return n, nil
}

func render(w io.Writer, title, entriesRoot string) (int, error) {
	entries, err := entry.Discover(entriesRoot)
	if err != nil {
		return 0, err
	}

	if _, err := fmt.Fprintf(w, "# %s\n\n", title); err != nil {
		return 0, err
	}

	for i, e := range entries {
		t, err := entry.ReadHeading(e.Path)
		if err != nil {
			return i, err
		}
		if _, err := fmt.Fprintf(w, "[%s](%s)\n\n", t, e.Path); err != nil {
			return i, err
		}
	}
	return len(entries), nil
}
