// Package telemetry provides telemetry implementations and wiring.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/pali/internal/core/ports"
)

// NoOp is a telemetry implementation that records nothing.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &noVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (n *NoOp) Close() error {
	return nil
}

type noVertex struct{}

func (v *noVertex) Stdout() io.Writer { return io.Discard }
func (v *noVertex) Stderr() io.Writer { return io.Discard }
func (v *noVertex) Cached()           {}
func (v *noVertex) Complete(error)    {}
