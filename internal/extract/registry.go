package extract

import (
	"fmt"
	"path/filepath"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.ExtractorRegistry = (*Registry)(nil)

// Registry maps file types to extractors and dispatches by extension.
type Registry struct {
	extractors map[domain.FileType]driven.Extractor
}

// NewRegistry creates an empty extractor registry.
func NewRegistry() *Registry {
	return &Registry{
		extractors: make(map[domain.FileType]driven.Extractor),
	}
}

// Register adds an extractor. A later registration for the same file
// type replaces the earlier one.
func (r *Registry) Register(extractor driven.Extractor) {
	r.extractors[extractor.Type()] = extractor
}

// Extract dispatches to the extractor for the path's extension.
func (r *Registry) Extract(path string) (string, error) {
	fileType, ok := domain.TypeForExtension(filepath.Ext(path))
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path)
	}

	extractor, ok := r.extractors[fileType]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedType, path)
	}

	return extractor.Extract(path)
}
