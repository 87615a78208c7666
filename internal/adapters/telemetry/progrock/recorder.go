// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"io"
	"os"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/pali/internal/core/ports"
)

// Recorder implements ports.Telemetry using the progrock library. Each
// executed target is recorded as one vertex on the tape, and the vertex
// streams are teed to the configured writers so action output stays visible
// while the run is in flight.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	stdout io.Writer
	stderr io.Writer
}

// New creates a new Recorder with a default tape, streaming action output
// to the process's stdout and stderr.
func New() ports.Telemetry {
	return NewStreaming(progrock.NewTape(), os.Stdout, os.Stderr)
}

// NewRecorder creates a new Recorder with the given writer and no live
// output streams.
func NewRecorder(w progrock.Writer) *Recorder {
	return NewStreaming(w, io.Discard, io.Discard)
}

// NewStreaming creates a new Recorder that additionally copies every
// vertex's stdout and stderr to the given writers.
func NewStreaming(w progrock.Writer, stdout, stderr io.Writer) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		stdout: stdout,
		stderr: stderr,
	}
}

// Record starts recording a new vertex for the named target.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	d := digest.FromString(name)
	vr := r.rec.Vertex(d, name)
	v := &Vertex{
		vertex: vr,
		stdout: io.MultiWriter(vr.Stdout(), r.stdout),
		stderr: io.MultiWriter(vr.Stderr(), r.stderr),
	}
	return ports.ContextWithVertex(ctx, v), v
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
