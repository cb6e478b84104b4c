// Package file provides the TOML-backed application configuration.
// Configuration lives at ~/.docvec/config.toml; a missing file yields
// defaults so the CLI works out of the box against a local Ollama.
package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Embedding backend identifiers.
const (
	BackendOllama = "ollama"
	BackendOpenAI = "openai"
)

// Vector store type identifiers. StoreNone disables persistence:
// saves are dropped and searches return nothing.
const (
	StoreMilvus = "milvus"
	StoreNone   = "none"
)

// EmbeddingConfig selects and configures the embedding backend.
type EmbeddingConfig struct {
	// Backend is "ollama" or "openai".
	Backend string `toml:"backend"`

	// BaseURL overrides the backend's default endpoint.
	BaseURL string `toml:"base_url,omitempty"`

	// Model is the embedding model identifier.
	Model string `toml:"model,omitempty"`

	// APIKeyEnv names the environment variable holding the API key
	// (openai backend only).
	APIKeyEnv string `toml:"api_key_env,omitempty"`

	// Dimensions overrides the model's default vector size.
	Dimensions int `toml:"dimensions,omitempty"`

	// RequestsPerSecond caps the embedding request rate. Zero means
	// unlimited.
	RequestsPerSecond float64 `toml:"requests_per_second,omitempty"`
}

// StoreConfig selects and configures the vector store.
type StoreConfig struct {
	// Type is "milvus" or "none".
	Type string `toml:"type"`

	// Address is the Milvus server address.
	Address string `toml:"address,omitempty"`

	// Collection is the collection name.
	Collection string `toml:"collection,omitempty"`

	// NList is the IVF_FLAT candidate-list size.
	NList int `toml:"nlist,omitempty"`

	// NProbe is the number of clusters probed per search.
	NProbe int `toml:"nprobe,omitempty"`
}

// Config is the root application configuration.
type Config struct {
	Embedding EmbeddingConfig `toml:"embedding"`
	Store     StoreConfig     `toml:"store"`

	// DataDir holds the ingest catalog (default: ~/.docvec/data).
	DataDir string `toml:"data_dir,omitempty"`
}

// Default returns the configuration used when no file exists:
// a local Ollama backend and no vector store.
func Default() *Config {
	return &Config{
		Embedding: EmbeddingConfig{Backend: BackendOllama},
		Store:     StoreConfig{Type: StoreNone},
	}
}

// DefaultPath returns ~/.docvec/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".docvec", "config.toml"), nil
}

// Load reads the configuration from path. A missing file returns
// defaults; a malformed file returns an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	applyDefaults(cfg)
	return cfg, nil
}

// Save writes the configuration to path, creating directories as
// needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// applyDefaults fills fields the file left empty.
func applyDefaults(cfg *Config) {
	if cfg.Embedding.Backend == "" {
		cfg.Embedding.Backend = BackendOllama
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = StoreNone
	}
	if cfg.Embedding.Backend == BackendOpenAI && cfg.Embedding.APIKeyEnv == "" {
		cfg.Embedding.APIKeyEnv = "OPENAI_API_KEY"
	}
}
