package search

import (
	"os"
	"path/filepath"
	"testing"
)

func initCorpus(t *testing.T, files map[string]string) {
	t.Helper()
	chdirTempDir(t)
	for rel, content := range files {
		if err := os.MkdirAll(filepath.Dir(rel), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(rel, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadCorpusOrderAndTitles(t *testing.T) {
	initCorpus(t, map[string]string{
		"entries/b.md": "## How do I B?\n\nlinking headers\n",
		"entries/a.md": "## How do I A?\n\nversioning scheme\n",
	})

	docs, err := LoadCorpus("entries")
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d documents, want 2", len(docs))
	}
	if docs[0].Path != "entries/a.md" || docs[0].Title != "How do I A?" {
		t.Errorf("docs[0] = %+v", docs[0])
	}
	if docs[1].Path != "entries/b.md" || docs[1].Title != "How do I B?" {
		t.Errorf("docs[1] = %+v", docs[1])
	}
}

func TestLoadCorpusFailsOnMissingHeading(t *testing.T) {
	initCorpus(t, map[string]string{
		"entries/bad.md": "Not a heading\n",
	})

	if _, err := LoadCorpus("entries"); err == nil {
		t.Error("expected error for entry without heading")
	}
}

func TestKeywordCaseFolding(t *testing.T) {
	docs := []Document{
		{Path: "entries/a.md", Title: "Versioning scheme", Body: "# Versioning scheme\nuse semver\n"},
		{Path: "entries/b.md", Title: "Linking headers", Body: "# Linking headers\nheader generation\n"},
	}

	got := Keyword(docs, "VERSIONING", 0)
	if len(got) != 1 || got[0].Path != "entries/a.md" {
		t.Errorf("got %+v, want only entries/a.md", got)
	}
}

func TestKeywordAndSemantics(t *testing.T) {
	docs := []Document{
		{Path: "entries/a.md", Title: "Versioning scheme", Body: "semver rules\n"},
		{Path: "entries/b.md", Title: "Linking headers", Body: "semver appears here too\n"},
	}

	got := Keyword(docs, "semver linking", 0)
	if len(got) != 1 || got[0].Path != "entries/b.md" {
		t.Errorf("got %+v, want only entries/b.md", got)
	}
}

func TestKeywordLimitAndOrder(t *testing.T) {
	docs := []Document{
		{Path: "entries/a.md", Title: "One", Body: "common term\n"},
		{Path: "entries/b.md", Title: "Two", Body: "common term\n"},
		{Path: "entries/c.md", Title: "Three", Body: "common term\n"},
	}

	got := Keyword(docs, "common", 2)
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0].Path != "entries/a.md" || got[1].Path != "entries/b.md" {
		t.Errorf("results out of index order: %+v", got)
	}
}

func TestKeywordEmptyQuery(t *testing.T) {
	docs := []Document{{Path: "entries/a.md", Title: "One", Body: "body\n"}}
	if got := Keyword(docs, "   ", 0); len(got) != 0 {
		t.Errorf("blank query should match nothing, got %+v", got)
	}
}

// chdirTempDir switches into a fresh temp dir for the test's duration
// (stand-in for t.Chdir, which requires Go 1.24+).
func chdirTempDir(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
