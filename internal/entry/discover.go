package entry

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover recursively finds all *.md files under root and returns them
// sorted by byte-lexical order of their slash-separated path. The sort is
// the index order, so it must not depend on filesystem iteration order.
//
// Titles are not filled in here; callers extract headings per file.
// Dot-prefixed files and directories (and Windows-hidden files) are
// skipped so editor droppings never enter the index.
func Discover(root string) ([]Entry, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("cannot stat entries directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("entries path is not a directory: %s", root)
	}

	var out []Entry
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || hiddenByAttr(path) {
			return nil
		}
		if filepath.Ext(name) != ".md" {
			return nil
		}
		out = append(out, Entry{Path: filepath.ToSlash(path)})
		return nil
	}

	if err := filepath.WalkDir(root, walkFn); err != nil {
		return nil, fmt.Errorf("cannot scan entries: %w", err)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

// Load discovers all entries under root and extracts their titles.
// Any entry without a valid first-line heading fails the whole load.
func Load(root string) ([]Entry, error) {
	entries, err := Discover(root)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		title, err := ReadHeading(entries[i].Path)
		if err != nil {
			return nil, err
		}
		entries[i].Title = title
	}
	return entries, nil
}
