// Package search implements keyword search over the entries corpus.
package search

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"howto/internal/entry"
)

// Document is one searchable entry: its title, path, and full body.
type Document struct {
	Path  string
	Title string
	Body  string
}

// LoadCorpus reads every entry under root into a searchable Document,
// in index (path) order. A missing first-line heading fails the load,
// same as it fails a regeneration.
func LoadCorpus(root string) ([]Document, error) {
	entries, err := entry.Discover(root)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, len(entries))
	for _, e := range entries {
		b, err := os.ReadFile(e.Path)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", e.Path, err)
		}
		title, err := entry.ExtractHeading(e.Path, b)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document{Path: e.Path, Title: title, Body: string(b)})
	}
	return docs, nil
}

// Keyword matches documents whose title, path, or body contains every
// query token (AND semantics), case-folded. Results keep index order.
func Keyword(docs []Document, query string, limit int) []Document {
	folder := cases.Fold()
	tokens := tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var out []Document
	for _, d := range docs {
		blob := folder.String(strings.Join([]string{d.Title, d.Path, d.Body}, "\n"))
		ok := true
		for _, tok := range tokens {
			if !strings.Contains(blob, tok) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, d)
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func tokenize(q string) []string {
	folder := cases.Fold()
	parts := strings.Fields(q)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, folder.String(p))
	}
	return out
}
