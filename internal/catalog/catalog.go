// Package catalog builds the machine-readable YAML export of the corpus.
package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"time"

	"howto/internal/entry"
)

// Entry is one article in the exported catalog.
type Entry struct {
	Title  string `yaml:"title"`
	Path   string `yaml:"path"`
	SHA256 string `yaml:"sha256"`
	Words  int    `yaml:"words"`
}

// Catalog is the exported document, marshalled as YAML.
type Catalog struct {
	GeneratedAt string  `yaml:"generated_at"`
	Count       int     `yaml:"count"`
	Entries     []Entry `yaml:"entries"`
}

// Build reads every entry under root and returns the catalog, in index
// (path) order. A missing first-line heading fails the whole build.
func Build(root string) (*Catalog, error) {
	entries, err := entry.Discover(root)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		b, err := os.ReadFile(e.Path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", e.Path, err)
		}
		title, err := entry.ExtractHeading(e.Path, b)
		if err != nil {
			return nil, err
		}
		sum := sha256.Sum256(b)
		out = append(out, Entry{
			Title:  title,
			Path:   e.Path,
			SHA256: hex.EncodeToString(sum[:]),
			Words:  len(strings.Fields(string(b))),
		})
	}

	return &Catalog{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Count:       len(out),
		Entries:     out,
	}, nil
}
