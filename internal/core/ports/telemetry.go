package ports

import (
	"context"
	"io"
)

// Telemetry records per-package build progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex for the named unit of work.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is one recorded unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the unit's output stream.
	Stdout() io.Writer

	// Stderr returns a writer capturing the unit's error stream.
	Stderr() io.Writer

	// Complete marks the vertex as finished, with err nil on success.
	Complete(err error)

	// Cached marks the vertex as a cache hit.
	Cached()
}
