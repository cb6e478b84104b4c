// Package milvus provides a vector store adapter backed by Milvus.
package milvus

import (
	"context"
	"fmt"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.VectorStore = (*Store)(nil)

// Default configuration values.
const (
	DefaultCollection = "embeddings"
	DefaultNList      = 128
	DefaultNProbe     = 16
)

// Collection field names.
const (
	fieldID        = "id"
	fieldFileName  = "file_name"
	fieldEmbedding = "embedding"
)

// maxFileNameLength bounds the file_name varchar field.
const maxFileNameLength = 512

// Config holds Milvus connection and collection configuration.
type Config struct {
	// Address is the Milvus server address (e.g. "localhost:19530").
	Address string

	// Collection is the collection name (default: embeddings).
	Collection string

	// Dimension is the embedding vector size. Must match the
	// embedding model; the store rejects mismatched inserts.
	Dimension int

	// NList is the IVF_FLAT candidate-list size (default: 128).
	NList int

	// NProbe is the number of clusters probed per search (default: 16).
	NProbe int
}

// Store persists paragraph embeddings in a Milvus collection.
type Store struct {
	client     client.Client
	collection string
	dimension  int
	nprobe     int
}

// NewStore connects to Milvus and ensures the collection and its
// index exist. An existing collection is used as-is; no schema
// migration or validation is performed.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Collection == "" {
		cfg.Collection = DefaultCollection
	}
	if cfg.NList == 0 {
		cfg.NList = DefaultNList
	}
	if cfg.NProbe == 0 {
		cfg.NProbe = DefaultNProbe
	}
	if cfg.Dimension <= 0 {
		return nil, fmt.Errorf("milvus: dimension must be positive, got %d", cfg.Dimension)
	}

	c, err := client.NewClient(ctx, client.Config{Address: cfg.Address})
	if err != nil {
		return nil, fmt.Errorf("milvus: connect to %s: %w", cfg.Address, err)
	}

	s := &Store{
		client:     c,
		collection: cfg.Collection,
		dimension:  cfg.Dimension,
		nprobe:     cfg.NProbe,
	}

	if err := s.ensureCollection(ctx, cfg.NList); err != nil {
		c.Close()
		return nil, err
	}

	return s, nil
}

// ensureCollection creates the collection and its IVF_FLAT/L2 index
// when the collection does not already exist.
func (s *Store) ensureCollection(ctx context.Context, nlist int) error {
	has, err := s.client.HasCollection(ctx, s.collection)
	if err != nil {
		return fmt.Errorf("milvus: check collection %s: %w", s.collection, err)
	}
	if has {
		return nil
	}

	schema := entity.NewSchema().
		WithName(s.collection).
		WithDescription("paragraph embeddings keyed by source filename").
		WithField(entity.NewField().
			WithName(fieldID).
			WithDataType(entity.FieldTypeInt64).
			WithIsPrimaryKey(true).
			WithIsAutoID(true)).
		WithField(entity.NewField().
			WithName(fieldFileName).
			WithDataType(entity.FieldTypeVarChar).
			WithMaxLength(maxFileNameLength)).
		WithField(entity.NewField().
			WithName(fieldEmbedding).
			WithDataType(entity.FieldTypeFloatVector).
			WithDim(int64(s.dimension)))

	if err := s.client.CreateCollection(ctx, schema, entity.DefaultShardNumber); err != nil {
		return fmt.Errorf("milvus: create collection %s: %w", s.collection, err)
	}

	index, err := entity.NewIndexIvfFlat(entity.L2, nlist)
	if err != nil {
		return fmt.Errorf("milvus: build index params: %w", err)
	}
	if err := s.client.CreateIndex(ctx, s.collection, fieldEmbedding, index, false); err != nil {
		return fmt.Errorf("milvus: create index on %s: %w", s.collection, err)
	}

	return nil
}

// Save inserts one record per vector, all sharing fileName, then
// flushes so the records are visible to subsequent searches.
func (s *Store) Save(ctx context.Context, vectors [][]float32, fileName string) error {
	if len(vectors) == 0 {
		return nil
	}

	if err := s.client.LoadCollection(ctx, s.collection, false); err != nil {
		return fmt.Errorf("milvus: load collection %s: %w", s.collection, err)
	}

	names := make([]string, len(vectors))
	for i := range names {
		names[i] = fileName
	}

	_, err := s.client.Insert(ctx, s.collection, "",
		entity.NewColumnVarChar(fieldFileName, names),
		entity.NewColumnFloatVector(fieldEmbedding, s.dimension, vectors),
	)
	if err != nil {
		return fmt.Errorf("milvus: insert into %s: %w", s.collection, err)
	}

	if err := s.client.Flush(ctx, s.collection, false); err != nil {
		return fmt.Errorf("milvus: flush %s: %w", s.collection, err)
	}

	return nil
}

// Search returns the filenames of the topK nearest stored vectors,
// deduplicated into an unordered list.
func (s *Store) Search(ctx context.Context, vector []float32, topK int) ([]string, error) {
	if err := s.client.LoadCollection(ctx, s.collection, false); err != nil {
		return nil, fmt.Errorf("milvus: load collection %s: %w", s.collection, err)
	}

	sp, err := entity.NewIndexIvfFlatSearchParam(s.nprobe)
	if err != nil {
		return nil, fmt.Errorf("milvus: build search params: %w", err)
	}

	results, err := s.client.Search(
		ctx,
		s.collection,
		nil, // partitions
		"",  // expression
		[]string{fieldFileName},
		[]entity.Vector{entity.FloatVector(vector)},
		fieldEmbedding,
		entity.L2,
		topK,
		sp,
	)
	if err != nil {
		return nil, fmt.Errorf("milvus: search %s: %w", s.collection, err)
	}

	// Duplicate filenames across paragraph matches collapse to one
	// entry, so callers may receive fewer than topK names.
	seen := make(map[string]struct{})
	var names []string
	for _, result := range results {
		column, ok := result.Fields.GetColumn(fieldFileName).(*entity.ColumnVarChar)
		if !ok {
			return nil, fmt.Errorf("milvus: unexpected type for %s column", fieldFileName)
		}
		for _, name := range column.Data() {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.client.Close()
}
