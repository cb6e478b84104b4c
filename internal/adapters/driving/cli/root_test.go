package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvec-labs/docvec-cli/internal/adapters/driven/config/file"
	"github.com/docvec-labs/docvec-cli/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "docvec", rootCmd.Use)
}

func TestRootCmd_HasPersistentFlags(t *testing.T) {
	verbose := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verbose, "verbose flag should exist")
	assert.Equal(t, "v", verbose.Shorthand)

	config := rootCmd.PersistentFlags().Lookup("config")
	require.NotNil(t, config, "config flag should exist")
}

func TestRootCmd_VerboseFlagEnablesLogger(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	defer func() {
		verboseFlag = false
		logger.SetVerbose(false)
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"--verbose", "version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestLoadConfig_UsesConfigFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[embedding]\nbackend = \"ollama\"\nmodel = \"custom-model\"\n"), 0o644))

	configPath = path
	defer func() { configPath = "" }()

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "custom-model", cfg.Embedding.Model)
}

func TestNewEmbedder_UnknownBackend(t *testing.T) {
	cfg := file.Default()
	cfg.Embedding.Backend = "quantum"

	_, err := newEmbedder(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown embedding backend")
}

func TestNewEmbedder_Ollama(t *testing.T) {
	embedder, err := newEmbedder(file.Default())
	require.NoError(t, err)
	assert.Equal(t, 384, embedder.Dimensions())
}

func TestNewRegistry_CoversSupportedTypes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	text, err := newRegistry().Extract(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}
