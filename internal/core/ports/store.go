package ports

import "github.com/michellab/protopack/internal/core/domain"

// ManifestStore defines the interface for the installed-package metadata
// kept inside an installation prefix.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Get retrieves the manifest for a package name.
	// Returns nil, nil if the package is not installed in the prefix.
	Get(prefix, name string) (*domain.Manifest, error)

	// Put stores the manifest, replacing any previous one for the same name.
	Put(prefix string, manifest domain.Manifest) error

	// List returns the manifests of all packages installed in the prefix,
	// sorted by name.
	List(prefix string) ([]domain.Manifest, error)
}
