// Package pdf extracts text from paginated PDF documents.
package pdf

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.Extractor = (*Extractor)(nil)

// Extractor handles PDF documents.
type Extractor struct{}

// New creates a new PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Type returns the file type this extractor handles.
func (e *Extractor) Type() domain.FileType {
	return domain.FileTypePDF
}

// Extract concatenates the text of every page in page order. The
// underlying file handle is closed whether or not extraction
// succeeds. A malformed PDF surfaces the decoder's error unchanged;
// no fallback extraction is attempted.
func (e *Extractor) Extract(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var result strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d: %w", i, err)
		}
		result.WriteString(text)
	}

	return result.String(), nil
}
