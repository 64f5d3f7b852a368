package telemetry

import (
	"context"
	"io"

	"github.com/michellab/protopack/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry for tests and non-TTY runs.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &noOpVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error { return nil }

type noOpVertex struct{}

func (v *noOpVertex) Stdout() io.Writer { return io.Discard }
func (v *noOpVertex) Stderr() io.Writer { return io.Discard }
func (v *noOpVertex) Complete(error)    {}
func (v *noOpVertex) Cached()           {}
