// Package main is the entry point for the pali task runner.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pali/cmd/pali/commands"
	"go.trai.ch/pali/internal/adapters/config"
	"go.trai.ch/pali/internal/app"
	"go.trai.ch/pali/internal/core/domain"
	_ "go.trai.ch/pali/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run(opts ...func(*app.App)) int {
	// Cancellation (interrupt, termination) propagates through the context
	// into the running action.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	if loader, ok := components.ConfigLoader.(*config.Loader); ok {
		cli.SetConfigHook(func(path string) {
			loader.Filename = path
		})
	}

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrRunFailed) {
			// The run report already names the failing target.
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
