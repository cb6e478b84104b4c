package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
)

func TestCatalogCmd_Use(t *testing.T) {
	assert.Equal(t, "catalog", catalogCmd.Use)
}

func TestCatalogCmd_ListsEntries(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	ingested := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	catalogStore = &mockCatalog{entries: []domain.IngestedFile{
		{ID: "a", RunID: "run-1", Path: "/corpus/alpha.txt", Paragraphs: 3, IngestedAt: ingested.Unix()},
		{ID: "b", RunID: "run-1", Path: "/corpus/beta.md", Paragraphs: 12, IngestedAt: ingested.Unix()},
	}}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalog"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "2026-03-14 09:30")
	assert.Contains(t, out, "3 paragraphs")
	assert.Contains(t, out, "/corpus/alpha.txt")
	assert.Contains(t, out, "/corpus/beta.md")
}

func TestCatalogCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"catalog"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No files ingested yet.")
}

func TestCatalogCmd_ListError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogStore = &mockCatalog{err: errMockService}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"catalog"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "listing catalog")
}

func TestCatalogCmd_RejectsArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"catalog", "extra"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}
