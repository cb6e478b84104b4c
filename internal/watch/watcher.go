// Package watch re-ingests documents as they change on disk.
package watch

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/docvec-labs/docvec-cli/internal/core/ports/driving"
	"github.com/docvec-labs/docvec-cli/internal/logger"
	"github.com/docvec-labs/docvec-cli/internal/walker"
)

// Watcher monitors a directory tree and runs the ingestion pipeline on
// every supported file that is created or written. The same filters
// apply as during a full walk: hidden directories are ignored and only
// supported extensions are ingested.
type Watcher struct {
	root     string
	ingestor driving.Ingestor
}

// New creates a watcher over root.
func New(root string, ingestor driving.Ingestor) *Watcher {
	return &Watcher{
		root:     root,
		ingestor: ingestor,
	}
}

// Run watches the tree until ctx is cancelled. Directories created
// while watching are added to the watch set; events for unsupported or
// hidden paths are dropped. Ingestion failures are logged and do not
// stop the watch loop.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := w.addTree(fw, w.root); err != nil {
		return err
	}
	logger.Section("watch")
	logger.Info("watching %s", w.root)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, fw, event)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		}
	}
}

// handleEvent reacts to a single filesystem event: new directories
// extend the watch set, supported file writes trigger re-ingestion.
func (w *Watcher) handleEvent(ctx context.Context, fw *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op.Has(fsnotify.Create) && isDir(event.Name) {
		if !isHidden(event.Name) {
			if err := w.addTree(fw, event.Name); err != nil {
				logger.Warn("watch %s: %v", event.Name, err)
			}
		}
		return
	}

	if !w.shouldIngest(event) {
		return
	}

	report, err := w.ingestor.Ingest(ctx, []string{event.Name})
	if err != nil {
		logger.Warn("re-ingest %s: %v", event.Name, err)
		return
	}
	logger.Info("re-ingested %s (%d paragraphs)", event.Name, report.Paragraphs)
}

// shouldIngest reports whether the event concerns a supported, visible
// file that was created or written.
func (w *Watcher) shouldIngest(event fsnotify.Event) bool {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return false
	}
	if isDir(event.Name) {
		return false
	}
	if isHidden(event.Name) {
		return false
	}
	return walker.Supported(event.Name)
}

// addTree watches dir and every visible subdirectory beneath it.
func (w *Watcher) addTree(fw *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return fw.Add(path)
	})
}

// isHidden reports whether any path component starts with "." ("." and
// ".." themselves do not count).
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
