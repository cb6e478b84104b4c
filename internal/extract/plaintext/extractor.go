// Package plaintext extracts text from plain UTF-8 files.
package plaintext

import (
	"os"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles plain text files.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Type returns the file type this extractor handles.
func (e *Extractor) Type() domain.FileType {
	return domain.FileTypeText
}

// Extract reads the entire file verbatim.
func (e *Extractor) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
