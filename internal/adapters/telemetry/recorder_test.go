package telemetry_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michellab/protopack/internal/adapters/telemetry"
)

func TestNew(t *testing.T) {
	assert.NotNil(t, telemetry.New())
}

func TestRecorder_VertexLifecycle(t *testing.T) {
	rec := telemetry.New()

	ctx, vertex := rec.Record(context.Background(), "protocaller")
	require.NotNil(t, ctx)
	require.NotNil(t, vertex)

	_, err := fmt.Fprintln(vertex.Stdout(), "copying tree")
	require.NoError(t, err)
	_, err = fmt.Fprintln(vertex.Stderr(), "warning: large file")
	require.NoError(t, err)

	vertex.Complete(nil)
	require.NoError(t, rec.Close())
}

func TestRecorder_CachedVertex(t *testing.T) {
	rec := telemetry.New()

	_, vertex := rec.Record(context.Background(), "protocaller")
	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, rec.Close())
}

func TestNoOp(t *testing.T) {
	rec := telemetry.NewNoOp()

	ctx, vertex := rec.Record(context.Background(), "anything")
	assert.NotNil(t, ctx)

	_, err := fmt.Fprintln(vertex.Stdout(), "discarded")
	assert.NoError(t, err)

	vertex.Complete(nil)
	vertex.Cached()
	assert.NoError(t, rec.Close())
}
