package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrUnsupportedType indicates a file extension outside the
	// supported set. This is a caller error and is never retried.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmbeddingUnavailable indicates the embedding backend is not
	// reachable. Ingestion and querying cannot proceed without it.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrStoreUnavailable indicates the vector store rejected the
	// connection at startup.
	ErrStoreUnavailable = errors.New("vector store unavailable")
)
