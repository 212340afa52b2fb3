// Package entry models the Markdown HOWTO articles kept under entries/
// and extracts the first-line heading each one must carry.
package entry

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Entry represents one Markdown article.
type Entry struct {
	Path  string // slash-separated path relative to the repository root
	Title string // trimmed first-line heading text; empty until extracted
}

// MissingHeadingError reports a file whose first line is not a #-heading.
// Its message is the tool's user-facing diagnostic, so it is returned
// unwrapped all the way up to the command layer.
type MissingHeadingError struct {
	Path string
}

func (e *MissingHeadingError) Error() string {
	return "no #-header on first line of " + e.Path
}

// One or more #, whitespace, then the heading text.
var headingRE = regexp.MustCompile(`^#+\s+(.+)$`)

// ExtractHeading returns the trimmed heading text from the first line of
// content. path is only used to build the error diagnostic.
func ExtractHeading(path string, content []byte) (string, error) {
	s := strings.TrimPrefix(string(content), "\ufeff")
	line, _, _ := strings.Cut(s, "\n")

	m := headingRE.FindStringSubmatch(line)
	if m == nil {
		return "", &MissingHeadingError{Path: path}
	}
	title := strings.TrimSpace(m[1])
	if title == "" {
		return "", &MissingHeadingError{Path: path}
	}
	return title, nil
}

// ReadHeading reads the file at path and extracts its first-line heading.
func ReadHeading(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read %s: %w", path, err)
	}
	return ExtractHeading(path, b)
}
