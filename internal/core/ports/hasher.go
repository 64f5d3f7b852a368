package ports

import "github.com/michellab/protopack/internal/core/domain"

// TreeHasher defines the interface for computing content hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type TreeHasher interface {
	// ComputeTreeHash computes a single hash covering the recipe definition
	// and the full content of its source tree. Two recipes with identical
	// definitions and identical source trees hash identically.
	ComputeTreeHash(recipe *domain.Recipe) (string, error)

	// ComputeDirHash computes a hash over the files under root, excluding
	// paths matching the ignore patterns.
	ComputeDirHash(root string, ignore []string) (string, error)
}
