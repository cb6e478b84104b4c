// Package sqlite provides a SQLite-backed ingest catalog.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/docvec-labs/docvec-cli/internal/adapters/driven/catalog/sqlite/migrations"
	"github.com/docvec-labs/docvec-cli/internal/core/domain"
	"github.com/docvec-labs/docvec-cli/internal/core/ports/driven"
)

// Ensure Catalog implements the interface.
var _ driven.Catalog = (*Catalog)(nil)

// Catalog records ingested files in a SQLite database.
type Catalog struct {
	db   *sql.DB
	path string
}

// NewCatalog creates a catalog at the specified data directory.
// If dataDir is empty, defaults to ~/.docvec/data/catalog.db.
func NewCatalog(dataDir string) (*Catalog, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".docvec", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Catalog{
		db:   db,
		path: dbPath,
	}

	if err := c.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return c, nil
}

// migrate applies every embedded migration in filename order.
// Statements are idempotent, so re-running on an existing database is
// safe.
func (c *Catalog) migrate(fsys fs.FS) error {
	entries, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return err
	}
	sort.Strings(entries)

	for _, name := range entries {
		script, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := c.db.Exec(string(script)); err != nil {
			return fmt.Errorf("applying migration %s: %w", name, err)
		}
	}

	return nil
}

// Record stores one catalog entry for an ingested file.
func (c *Catalog) Record(ctx context.Context, entry domain.IngestedFile) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO ingested_files (id, run_id, path, paragraphs, ingested_at)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.RunID, entry.Path, entry.Paragraphs, entry.IngestedAt,
	)
	if err != nil {
		return fmt.Errorf("recording %s: %w", entry.Path, err)
	}
	return nil
}

// List returns all catalog entries, most recent first.
func (c *Catalog) List(ctx context.Context) ([]domain.IngestedFile, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, run_id, path, paragraphs, ingested_at
		 FROM ingested_files
		 ORDER BY ingested_at DESC, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	defer rows.Close()

	var entries []domain.IngestedFile
	for rows.Next() {
		var e domain.IngestedFile
		if err := rows.Scan(&e.ID, &e.RunID, &e.Path, &e.Paragraphs, &e.IngestedAt); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close closes the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Path returns the database file path.
func (c *Catalog) Path() string {
	return c.path
}
