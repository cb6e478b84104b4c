package services

import (
	"context"
	"fmt"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driving"
	"github.com/docvec-labs/docvec-cli/internal/logger"
)

// Ensure QueryService implements the interface.
var _ driving.Querier = (*QueryService)(nil)

// DefaultTopK is the candidate count used when the caller passes a
// non-positive topK.
const DefaultTopK = 4

// QueryService answers free-text queries: embed the query, search the
// store, return deduplicated filenames.
type QueryService struct {
	embedder driven.EmbeddingService
	store    driven.VectorStore
}

// NewQueryService creates a new query service.
func NewQueryService(embedder driven.EmbeddingService, store driven.VectorStore) *QueryService {
	return &QueryService{
		embedder: embedder,
		store:    store,
	}
}

// Query embeds text and returns the filenames of the topK nearest
// stored paragraphs. The requested topK drives the store's search
// limit; duplicate filenames collapse, so fewer names may return.
func (s *QueryService) Query(ctx context.Context, text string, topK int) ([]string, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrInvalidInput)
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	vectors, err := s.embedder.EmbedBatch(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}
	if len(vectors) != 1 {
		return nil, fmt.Errorf("embed query: expected 1 vector, got %d", len(vectors))
	}

	names, err := s.store.Search(ctx, vectors[0], topK)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Debug("query matched %d files", len(names))
	return names, nil
}
