// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/pali/internal/core/domain"
)

// Executor defines the interface for running a target's action as an
// external process.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute spawns the target's command and blocks until it terminates,
	// streaming the child's output to stdout and stderr.
	//
	// A non-zero exit is reported through the ActionResult, never as a
	// raised error; the same holds for launch failures, timeouts and
	// cancellation. The executor never aborts the run itself.
	Execute(ctx context.Context, target *domain.Target, stdout, stderr io.Writer) domain.ActionResult
}
