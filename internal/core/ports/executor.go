package ports

import "context"

// Executor defines the interface for running recipe build-script steps.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs one argv vector in dir with the given extra environment
	// entries ("KEY=VALUE") merged over the process environment.
	Execute(ctx context.Context, argv []string, dir string, env []string) error
}
