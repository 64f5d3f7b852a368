// Package fs provides the filesystem adapters: walking, hashing, staging and
// verification of source trees.
package fs

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/zerr"
)

// Walker lists the files of a source tree, applying ignore patterns.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Walk returns the sorted slash-separated relative paths of all regular files
// under root. Entries matching an ignore pattern are excluded; a matching
// directory is pruned whole. ".git" is always pruned.
func (w *Walker) Walk(root string, ignore []string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if rel == "." {
			return nil
		}

		if d.IsDir() {
			if d.Name() == ".git" || matchesAny(ignore, rel, d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		if matchesAny(ignore, rel, d.Name()) {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to walk source tree"), "root", root)
	}

	slices.Sort(files)
	return files, nil
}

// matchesAny reports whether any pattern matches the relative path or the
// entry's base name, so both "**/__pycache__" and ".DS_Store" work.
func matchesAny(patterns []string, rel, name string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
