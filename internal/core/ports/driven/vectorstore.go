package driven

import "context"

// VectorStore persists paragraph embeddings keyed by source filename
// and answers nearest-neighbour queries. Schema, index build, and
// similarity scoring are owned entirely by the backing database.
type VectorStore interface {
	// Save inserts one record per vector, all sharing fileName, then
	// flushes so the records are visible to subsequent searches.
	// Vectors whose length disagrees with the collection dimension are
	// rejected by the store, not by this adapter.
	Save(ctx context.Context, vectors [][]float32, fileName string) error

	// Search returns the source filenames of the topK nearest stored
	// vectors, deduplicated into an unordered list. Duplicate
	// filenames across paragraphs collapse, so the result may be
	// shorter than topK.
	Search(ctx context.Context, vector []float32, topK int) ([]string, error)

	// Close releases the underlying connection.
	Close() error
}
