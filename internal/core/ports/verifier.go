package ports

import "github.com/michellab/protopack/internal/core/domain"

// Verifier defines the interface for checking a staged package tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyStaged reports whether the package directory staged in prefix is
	// byte-identical to the recipe's filtered source tree.
	VerifyStaged(r *domain.Recipe, prefix string) (bool, error)
}
