// Package none provides the explicit no-op vector store, selected with
// store type "none". Saves are dropped and searches return nothing,
// so the pipeline runs without a configured database.
package none

import (
	"context"

	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Store is a vector store that persists nothing.
type Store struct{}

// New creates a no-op store.
func New() *Store {
	return &Store{}
}

// Save discards the vectors.
func (s *Store) Save(_ context.Context, _ [][]float32, _ string) error {
	return nil
}

// Search returns an empty result, never an error.
func (s *Store) Search(_ context.Context, _ []float32, _ int) ([]string, error) {
	return nil, nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}
