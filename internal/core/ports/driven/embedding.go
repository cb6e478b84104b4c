package driven

import "context"

// EmbeddingService generates vector embeddings from text.
// The backing model is loaded once at construction; a backend that is
// unreachable at startup is fatal to the owning process.
//
// Implementations may include:
//   - Ollama (all-minilm, nomic-embed-text)
//   - OpenAI-compatible endpoints (text-embedding-3-small, ...)
type EmbeddingService interface {
	// EmbedBatch generates one embedding per input text, in input
	// order. Every vector has exactly Dimensions() elements.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Dimensions returns the embedding vector size (e.g. 384, 1536).
	// This must match the vector store's configured field dimension.
	Dimensions() int

	// ModelName returns the name of the embedding model being used.
	ModelName() string

	// Ping validates the backend is reachable with a lightweight
	// request. Called once at startup.
	Ping(ctx context.Context) error
}
