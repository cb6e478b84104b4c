package cli

import (
	"context"
	"errors"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driving"
)

// mockIngestor returns a fixed report and records the files it saw.
type mockIngestor struct {
	files  []string
	report *driving.IngestReport
	err    error
}

func (m *mockIngestor) Ingest(_ context.Context, files []string) (*driving.IngestReport, error) {
	m.files = files
	if m.err != nil {
		return nil, m.err
	}
	if m.report != nil {
		return m.report, nil
	}
	return &driving.IngestReport{
		RunID:         "run-1",
		FilesIngested: len(files),
		Paragraphs:    len(files) * 2,
	}, nil
}

// mockQuerier returns fixed filenames.
type mockQuerier struct {
	names []string
	topK  int
	err   error
}

func (m *mockQuerier) Query(_ context.Context, _ string, topK int) ([]string, error) {
	m.topK = topK
	if m.err != nil {
		return nil, m.err
	}
	return m.names, nil
}

// mockCatalog serves fixed entries.
type mockCatalog struct {
	entries []domain.IngestedFile
	err     error
}

func (m *mockCatalog) Record(_ context.Context, _ domain.IngestedFile) error { return m.err }

func (m *mockCatalog) List(_ context.Context) ([]domain.IngestedFile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockCatalog) Close() error { return nil }

var errMockService = errors.New("mock service failure")

// setupTestServices installs mock services and returns a cleanup that
// restores the previous wiring.
func setupTestServices() func() {
	oldIngest := ingestService
	oldQuery := queryService
	oldCatalog := catalogStore

	ingestService = &mockIngestor{}
	queryService = &mockQuerier{names: []string{"/corpus/alpha.txt", "/corpus/beta.md"}}
	catalogStore = &mockCatalog{}

	return func() {
		ingestService = oldIngest
		queryService = oldQuery
		catalogStore = oldCatalog
	}
}
