package services

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
)

// fakeEmbedder derives a deterministic vector from character
// frequencies, so near-duplicate texts land near each other under L2.
type fakeEmbedder struct {
	dimensions int
	batches    [][]string
	err        error
}

func newFakeEmbedder(dimensions int) *fakeEmbedder {
	return &fakeEmbedder{dimensions: dimensions}
}

func (f *fakeEmbedder) EmbedBatch(_ context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, texts)

	vectors := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, f.dimensions)
		for _, r := range text {
			vec[int(r)%f.dimensions]++
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func (f *fakeEmbedder) Dimensions() int { return f.dimensions }

func (f *fakeEmbedder) ModelName() string { return "fake-model" }

func (f *fakeEmbedder) Ping(_ context.Context) error { return nil }

// storedRecord mirrors one vector-store row.
type storedRecord struct {
	fileName string
	vector   []float32
}

// fakeStore is an in-memory vector store with brute-force L2 search.
type fakeStore struct {
	mu       sync.Mutex
	records  []storedRecord
	saveErr  error
	searchEr error
}

func (f *fakeStore) Save(_ context.Context, vectors [][]float32, fileName string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, vec := range vectors {
		f.records = append(f.records, storedRecord{fileName: fileName, vector: vec})
	}
	return nil
}

func (f *fakeStore) Search(_ context.Context, vector []float32, topK int) ([]string, error) {
	if f.searchEr != nil {
		return nil, f.searchEr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	type scored struct {
		fileName string
		distance float64
	}
	candidates := make([]scored, 0, len(f.records))
	for _, rec := range f.records {
		var sum float64
		for i := range vector {
			if i >= len(rec.vector) {
				break
			}
			d := float64(vector[i] - rec.vector[i])
			sum += d * d
		}
		candidates = append(candidates, scored{fileName: rec.fileName, distance: math.Sqrt(sum)})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].distance < candidates[j].distance })

	if topK < len(candidates) {
		candidates = candidates[:topK]
	}

	seen := make(map[string]struct{})
	var names []string
	for _, c := range candidates {
		if _, dup := seen[c.fileName]; dup {
			continue
		}
		seen[c.fileName] = struct{}{}
		names = append(names, c.fileName)
	}
	return names, nil
}

func (f *fakeStore) Close() error { return nil }

// count returns how many records share fileName.
func (f *fakeStore) count(fileName string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, rec := range f.records {
		if rec.fileName == fileName {
			n++
		}
	}
	return n
}

// fakeCatalog records entries in memory.
type fakeCatalog struct {
	mu      sync.Mutex
	entries []domain.IngestedFile
	err     error
}

func (f *fakeCatalog) Record(_ context.Context, entry domain.IngestedFile) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeCatalog) List(_ context.Context) ([]domain.IngestedFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.IngestedFile(nil), f.entries...), nil
}

func (f *fakeCatalog) Close() error { return nil }

// errExtraction is returned by failingExtractor.
var errExtraction = errors.New("extraction failed")

// failingExtractor always fails, for batch-abort tests.
type failingExtractor struct{}

func (failingExtractor) Type() domain.FileType { return domain.FileTypeText }

func (failingExtractor) Extract(_ string) (string, error) { return "", errExtraction }
