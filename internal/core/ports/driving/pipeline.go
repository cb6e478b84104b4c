package driving

import "context"

// FileError pairs a failed file with its error, for reporting when
// per-file failure isolation is enabled.
type FileError struct {
	// Path is the file that failed.
	Path string

	// Err is the extraction or embedding error.
	Err error
}

// IngestReport summarises one ingest run.
type IngestReport struct {
	// RunID identifies the run.
	RunID string

	// FilesIngested is the number of files saved to the vector store.
	FilesIngested int

	// FilesSkipped counts files whose extraction yielded no paragraphs.
	FilesSkipped int

	// Paragraphs is the total number of paragraph vectors saved.
	Paragraphs int

	// Failures holds per-file errors collected when the run continues
	// past failures. Empty on a fully successful run.
	Failures []FileError
}

// Ingestor drives the ingestion pipeline.
type Ingestor interface {
	// Ingest processes the given files sequentially: extract text,
	// segment into paragraphs, embed each paragraph, and save the
	// vectors under the file's path.
	Ingest(ctx context.Context, files []string) (*IngestReport, error)
}

// Querier answers free-text queries against the ingested corpus.
type Querier interface {
	// Query embeds the text and returns the deduplicated, unordered
	// filenames of the topK nearest stored paragraphs.
	Query(ctx context.Context, text string, topK int) ([]string, error)
}
