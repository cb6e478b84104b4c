// Package markdown extracts text from Markdown files, stripping
// emphasis markers.
package markdown

import (
	"os"
	"regexp"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Exactly three marker classes are stripped. Headers, links, lists,
// and fenced code blocks pass through unchanged.
var (
	bold       = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italic     = regexp.MustCompile(`\*(.*?)\*`)
	inlineCode = regexp.MustCompile("`(.*?)`")
)

// Extractor handles Markdown files.
type Extractor struct{}

// New creates a new Markdown extractor.
func New() *Extractor {
	return &Extractor{}
}

// Type returns the file type this extractor handles.
func (e *Extractor) Type() domain.FileType {
	return domain.FileTypeMarkdown
}

// Extract reads the file and removes bold, italic, and inline code
// markers. Bold runs before italic so `**` is not consumed as two
// italic markers.
func (e *Extractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	text := string(data)
	text = bold.ReplaceAllString(text, "$1")
	text = italic.ReplaceAllString(text, "$1")
	text = inlineCode.ReplaceAllString(text, "$1")

	return text, nil
}
