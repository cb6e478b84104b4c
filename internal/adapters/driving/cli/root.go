// Package cli implements the docvec command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/docvec-labs/docvec-cli/internal/adapters/driven/catalog/sqlite"
	"github.com/docvec-labs/docvec-cli/internal/adapters/driven/config/file"
	"github.com/docvec-labs/docvec-cli/internal/adapters/driven/embedding/ollama"
	"github.com/docvec-labs/docvec-cli/internal/adapters/driven/embedding/openai"
	"github.com/docvec-labs/docvec-cli/internal/adapters/driven/vectorstore/milvus"
	"github.com/docvec-labs/docvec-cli/internal/adapters/driven/vectorstore/none"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driving"
	"github.com/docvec-labs/docvec-cli/internal/core/services"
	"github.com/docvec-labs/docvec-cli/internal/extract"
	"github.com/docvec-labs/docvec-cli/internal/extract/docx"
	"github.com/docvec-labs/docvec-cli/internal/extract/markdown"
	"github.com/docvec-labs/docvec-cli/internal/extract/pdf"
	"github.com/docvec-labs/docvec-cli/internal/extract/plaintext"
	"github.com/docvec-labs/docvec-cli/internal/logger"
)

var version = "dev"

var (
	verboseFlag bool
	configPath  string
)

// Services are wired lazily on first use; tests inject fakes here.
var (
	ingestService driving.Ingestor
	queryService  driving.Querier
	catalogStore  driven.Catalog
)

// closers holds resources opened during wiring, released after Execute.
var closers []io.Closer

var rootCmd = &cobra.Command{
	Use:   "docvec",
	Short: "Index documents and retrieve them by meaning",
	Long: `docvec walks a directory tree, extracts text from PDF, DOCX,
plain-text and Markdown files, embeds each paragraph, and stores the
vectors so files can later be retrieved with a free-text query.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.docvec/config.toml)")
}

// Execute runs the CLI and releases wired resources afterwards.
func Execute(v string) error {
	version = v
	defer closeResources()
	return rootCmd.Execute()
}

// loadConfig reads the configuration from --config or the default path.
func loadConfig() (*file.Config, error) {
	path := configPath
	if path == "" {
		var err error
		path, err = file.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	return file.Load(path)
}

// setupPipeline wires the ingestion and query services from the
// configuration. Already-set services (injected by tests) are kept.
func setupPipeline(ctx context.Context) error {
	if ingestService != nil && queryService != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	embedder, err := newEmbedder(cfg)
	if err != nil {
		return err
	}
	if err := embedder.Ping(ctx); err != nil {
		return fmt.Errorf("embedding backend %s unreachable: %w", cfg.Embedding.Backend, err)
	}
	logger.Debug("embedding backend: %s (%s, %d dimensions)",
		cfg.Embedding.Backend, embedder.ModelName(), embedder.Dimensions())

	store, err := newStore(ctx, cfg, embedder.Dimensions())
	if err != nil {
		return err
	}
	closers = append(closers, store)

	cat, err := sqlite.NewCatalog(cfg.DataDir)
	if err != nil {
		return err
	}
	closers = append(closers, cat)
	catalogStore = cat

	var opts []services.IngestOption
	if ingestKeepGoing {
		opts = append(opts, services.WithContinueOnError())
	}
	ingestService = services.NewIngestService(newRegistry(), embedder, store, cat, opts...)
	queryService = services.NewQueryService(embedder, store)
	return nil
}

// setupCatalog wires only the ingest catalog, for read-only listing.
func setupCatalog() error {
	if catalogStore != nil {
		return nil
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cat, err := sqlite.NewCatalog(cfg.DataDir)
	if err != nil {
		return err
	}
	closers = append(closers, cat)
	catalogStore = cat
	return nil
}

// newRegistry returns the extractor registry with all supported types.
func newRegistry() *extract.Registry {
	r := extract.NewRegistry()
	r.Register(pdf.New())
	r.Register(docx.New())
	r.Register(plaintext.New())
	r.Register(markdown.New())
	return r
}

// newEmbedder builds the configured embedding backend.
func newEmbedder(cfg *file.Config) (driven.EmbeddingService, error) {
	switch cfg.Embedding.Backend {
	case file.BackendOllama:
		return ollama.NewEmbeddingService(ollama.Config{
			BaseURL:           cfg.Embedding.BaseURL,
			Model:             cfg.Embedding.Model,
			Dimensions:        cfg.Embedding.Dimensions,
			RequestsPerSecond: cfg.Embedding.RequestsPerSecond,
		}), nil

	case file.BackendOpenAI:
		return openai.NewEmbeddingService(openai.Config{
			APIKey:     os.Getenv(cfg.Embedding.APIKeyEnv),
			BaseURL:    cfg.Embedding.BaseURL,
			Model:      cfg.Embedding.Model,
			Dimensions: cfg.Embedding.Dimensions,
		})

	default:
		return nil, fmt.Errorf("unknown embedding backend %q", cfg.Embedding.Backend)
	}
}

// newStore builds the configured vector store. The dimension comes
// from the embedding backend so inserts always match the collection.
func newStore(ctx context.Context, cfg *file.Config, dimensions int) (driven.VectorStore, error) {
	switch cfg.Store.Type {
	case file.StoreMilvus:
		return milvus.NewStore(ctx, milvus.Config{
			Address:    cfg.Store.Address,
			Collection: cfg.Store.Collection,
			Dimension:  dimensions,
			NList:      cfg.Store.NList,
			NProbe:     cfg.Store.NProbe,
		})

	case file.StoreNone:
		logger.Warn("no vector store configured: vectors are discarded")
		return none.New(), nil

	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Store.Type)
	}
}

func closeResources() {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Warn("close: %v", err)
		}
	}
	closers = nil
}
