// Package app implements the application layer for pali.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/pali/internal/core/ports"
	"go.trai.ch/pali/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	scheduler    *scheduler.Scheduler
	renderer     ports.Renderer
	logger       ports.Logger

	out io.Writer
}

// RunOptions controls a single build invocation.
type RunOptions struct {
	// Force treats every target in the goal's closure as stale.
	Force bool
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	sched *scheduler.Scheduler,
	renderer ports.Renderer,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		scheduler:    sched,
		renderer:     renderer,
		logger:       logger,
		out:          os.Stdout,
	}
}

// SetOutput redirects the report output. Used for testing.
func (a *App) SetOutput(w io.Writer) {
	a.out = w
}

// Run builds the named goal target and prints the run report.
// It returns domain.ErrRunFailed when the goal did not reach a successful
// terminal state, so the CLI can map it to a non-zero exit status.
func (a *App) Run(ctx context.Context, goal string, opts RunOptions) error {
	graph, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	report, err := a.scheduler.Run(ctx, graph, goal, opts.Force)
	if report == nil {
		// Construction-time error: no actions ran, no partial report.
		return err
	}

	fmt.Fprint(a.out, a.renderer.RenderReport(report))
	return err
}

// Clean removes every declared output of every target in the graph.
// Missing outputs are not an error.
func (a *App) Clean(ctx context.Context) error {
	graph, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	var errs error
	for _, name := range graph.Names() {
		target, ok := graph.Get(name)
		if !ok {
			continue
		}
		for _, out := range target.Outputs {
			path := out.String()
			if err := os.Remove(path); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					continue
				}
				errs = errors.Join(errs, zerr.With(zerr.Wrap(err, "failed to remove output"), "path", path))
				continue
			}
			a.logger.Info("removed " + path)
		}
	}
	return errs
}
