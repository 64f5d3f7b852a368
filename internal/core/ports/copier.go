package ports

import "context"

// Copier defines the interface for staging a source tree into a prefix.
//
//go:generate go run go.uber.org/mock/mockgen -source=copier.go -destination=mocks/mock_copier.go -package=mocks
type Copier interface {
	// CopyTree mirrors src into dst, excluding paths matching the ignore
	// patterns. Any existing content at dst is removed first, so the result
	// is identical to the filtered source tree. Returns the number of files
	// copied.
	CopyTree(ctx context.Context, src, dst string, ignore []string) (int, error)
}
