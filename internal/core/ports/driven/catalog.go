package driven

import (
	"context"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
)

// Catalog records which files have been ingested and when.
// The vector store always appends on re-ingestion; the catalog makes
// the resulting duplicates visible to the user.
type Catalog interface {
	// Record stores one catalog entry for an ingested file.
	Record(ctx context.Context, entry domain.IngestedFile) error

	// List returns all catalog entries, most recent first.
	List(ctx context.Context) ([]domain.IngestedFile, error)

	// Close closes the underlying database.
	Close() error
}
