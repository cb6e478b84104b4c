// Package walker discovers supported document files under a root
// directory.
package walker

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/docvec-labs/docvec-cli/internal/core/domain"
)

// List returns the paths of all supported files under root, in
// directory-traversal order. Hidden subdirectories (name starting with
// ".") are pruned and never descended into; the root itself is always
// traversed. Filesystem errors propagate to the caller.
func List(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// Supported reports whether the path's extension is one of the
// ingestable types. Matching is exact and case-sensitive.
func Supported(path string) bool {
	_, ok := domain.TypeForExtension(filepath.Ext(path))
	return ok
}
