package progrock_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/pali/internal/adapters/telemetry/progrock"
	"go.trai.ch/pali/internal/core/ports"
	"go.trai.ch/zerr"
)

func TestRecorder_Record(t *testing.T) {
	rec := progrock.NewRecorder(vprogrock.NewTape())

	ctx, vertex := rec.Record(context.Background(), "compile")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	n, err := vertex.Stdout().Write([]byte("compiling main.tp\n"))
	require.NoError(t, err)
	assert.Equal(t, 18, n)

	vertex.Complete(nil)
	require.NoError(t, rec.Close())
}

func TestRecorder_CompleteWithError(t *testing.T) {
	rec := progrock.NewRecorder(vprogrock.NewTape())

	_, vertex := rec.Record(context.Background(), "assemble")

	_, err := vertex.Stderr().Write([]byte("fasm: syntax error\n"))
	require.NoError(t, err)

	vertex.Complete(zerr.New("exit status 1"))
	require.NoError(t, rec.Close())
}

func TestRecorder_Cached(t *testing.T) {
	rec := progrock.NewRecorder(vprogrock.NewTape())

	_, vertex := rec.Record(context.Background(), "link")
	vertex.Cached()
	vertex.Complete(nil)

	require.NoError(t, rec.Close())
}

func TestRecorder_StreamsOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	rec := progrock.NewStreaming(vprogrock.NewTape(), &stdout, &stderr)

	_, vertex := rec.Record(context.Background(), "run")

	_, err := vertex.Stdout().Write([]byte("payload\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("warning: slow\n"))
	require.NoError(t, err)

	vertex.Complete(nil)
	require.NoError(t, rec.Close())

	assert.Equal(t, "payload\n", stdout.String())
	assert.Equal(t, "warning: slow\n", stderr.String())
}

func TestVertexFromContext_Missing(t *testing.T) {
	_, ok := ports.VertexFromContext(context.Background())
	assert.False(t, ok)
}
