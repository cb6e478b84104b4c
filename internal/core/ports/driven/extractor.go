package driven

import "github.com/docvec-labs/docvec-cli/internal/core/domain"

// Extractor converts one document format into raw text.
// Each extractor handles a single file type.
type Extractor interface {
	// Type returns the file type this extractor handles.
	Type() domain.FileType

	// Extract reads the file at path and returns its text content.
	// Decode failures propagate as-is; no fallback extraction is
	// attempted.
	Extract(path string) (string, error)
}

// ExtractorRegistry dispatches extraction by file extension.
// Registering a second extractor for the same type replaces the first,
// so new formats can be added without touching the dispatcher.
type ExtractorRegistry interface {
	// Register adds an extractor to the registry.
	Register(extractor Extractor)

	// Extract dispatches to the extractor for the path's extension.
	// Returns domain.ErrUnsupportedType, naming the path, when no
	// extractor matches.
	Extract(path string) (string, error)
}
