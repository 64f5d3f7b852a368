// Package prefix implements the installed-package metadata store kept inside
// an installation prefix.
package prefix

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/zerr"

	"github.com/michellab/protopack/internal/core/domain"
)

// metaDir is the directory under a prefix holding one JSON manifest per
// installed package.
const metaDir = ".protopack/meta"

// Store implements ports.ManifestStore using flat JSON files. It is stateless
// across prefixes; the prefix is part of every call so one process can build
// into several prefixes.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

func manifestPath(prefixDir, name string) string {
	return filepath.Join(prefixDir, filepath.FromSlash(metaDir), name+".json")
}

// Get retrieves the manifest for a package name.
// Returns nil, nil if the package is not installed in the prefix.
func (s *Store) Get(prefixDir, name string) (*domain.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(manifestPath(prefixDir, name)) //nolint:gosec // path is inside the prefix
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "package", name)
	}

	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal manifest"), "package", name)
	}
	return &m, nil
}

// Put stores the manifest, replacing any previous one for the same name.
func (s *Store) Put(prefixDir string, m domain.Manifest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal manifest")
	}

	path := manifestPath(prefixDir, m.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create metadata directory")
	}

	//nolint:gosec // path is inside the prefix
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write manifest"), "package", m.Name)
	}
	return nil
}

// List returns the manifests of all packages installed in the prefix, sorted
// by name. A prefix with no metadata directory yields an empty list.
func (s *Store) List(prefixDir string) ([]domain.Manifest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Join(prefixDir, filepath.FromSlash(metaDir))
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read metadata directory")
	}

	var manifests []domain.Manifest
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name())) //nolint:gosec // path is inside the prefix
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read manifest"), "file", entry.Name())
		}
		var m domain.Manifest
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal manifest"), "file", entry.Name())
		}
		manifests = append(manifests, m)
	}

	slices.SortFunc(manifests, func(a, b domain.Manifest) int {
		return strings.Compare(a.Name, b.Name)
	})
	return manifests, nil
}
