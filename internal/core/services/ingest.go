package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driving"
	"github.com/docvec-labs/docvec-cli/internal/logger"
	"github.com/docvec-labs/docvec-cli/internal/segment"
)

// Ensure IngestService implements the interface.
var _ driving.Ingestor = (*IngestService)(nil)

// IngestService drives the ingestion pipeline: extract, segment,
// embed, save. Files are processed sequentially.
type IngestService struct {
	registry        driven.ExtractorRegistry
	embedder        driven.EmbeddingService
	store           driven.VectorStore
	catalog         driven.Catalog
	continueOnError bool
}

// IngestOption configures the ingest service.
type IngestOption func(*IngestService)

// WithContinueOnError isolates per-file failures: instead of aborting
// the remaining batch, failures are collected in the report.
func WithContinueOnError() IngestOption {
	return func(s *IngestService) {
		s.continueOnError = true
	}
}

// NewIngestService creates a new ingest service.
// The catalog parameter is optional (can be nil).
func NewIngestService(
	registry driven.ExtractorRegistry,
	embedder driven.EmbeddingService,
	store driven.VectorStore,
	catalog driven.Catalog,
	opts ...IngestOption,
) *IngestService {
	s := &IngestService{
		registry: registry,
		embedder: embedder,
		store:    store,
		catalog:  catalog,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Ingest processes the given files sequentially. By default the first
// extraction or embedding failure aborts the remaining batch and
// surfaces to the caller.
func (s *IngestService) Ingest(ctx context.Context, files []string) (*driving.IngestReport, error) {
	report := &driving.IngestReport{
		RunID: uuid.New().String(),
	}
	logger.Section("ingest")
	logger.Info("run %s: %d files", report.RunID, len(files))

	for _, path := range files {
		paragraphs, err := s.ingestFile(ctx, report.RunID, path)
		if err != nil {
			if s.continueOnError {
				logger.Warn("skipping %s: %v", path, err)
				report.Failures = append(report.Failures, driving.FileError{Path: path, Err: err})
				continue
			}
			return nil, fmt.Errorf("ingest %s: %w", path, err)
		}

		if paragraphs == 0 {
			logger.Debug("%s: no paragraphs, skipped", path)
			report.FilesSkipped++
			continue
		}

		report.FilesIngested++
		report.Paragraphs += paragraphs
	}

	logger.Info("run %s: ingested %d files (%d paragraphs, %d skipped, %d failed)",
		report.RunID, report.FilesIngested, report.Paragraphs, report.FilesSkipped, len(report.Failures))
	return report, nil
}

// ingestFile runs one file through the pipeline and returns the number
// of paragraph vectors saved.
func (s *IngestService) ingestFile(ctx context.Context, runID, path string) (int, error) {
	text, err := s.registry.Extract(path)
	if err != nil {
		return 0, err
	}

	paragraphs := segment.Paragraphs(text)
	if len(paragraphs) == 0 {
		return 0, nil
	}

	// One batch call per file.
	vectors, err := s.embedder.EmbedBatch(ctx, paragraphs)
	if err != nil {
		return 0, err
	}

	if err := s.store.Save(ctx, vectors, path); err != nil {
		return 0, err
	}
	logger.Debug("%s: saved %d paragraph vectors", path, len(vectors))

	if s.catalog != nil {
		entry := domain.IngestedFile{
			ID:         uuid.New().String(),
			RunID:      runID,
			Path:       path,
			Paragraphs: len(paragraphs),
			IngestedAt: time.Now().Unix(),
		}
		if err := s.catalog.Record(ctx, entry); err != nil {
			return 0, fmt.Errorf("record in catalog: %w", err)
		}
	}

	return len(paragraphs), nil
}
