// Package shell provides the external process executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/pali/internal/core/domain"
	"go.trai.ch/pali/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// stderrTailLimit bounds how much of the action's stderr is retained for
// the run report.
const stderrTailLimit = 4096

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the target's command and blocks until the process terminates.
// Every failure mode is reported through the ActionResult: a launch failure
// (missing executable, permission denied) is distinguishable from a non-zero
// exit, which is distinguishable from a timeout or cancellation.
func (e *Executor) Execute(ctx context.Context, target *domain.Target, stdout, stderr io.Writer) domain.ActionResult {
	if len(target.Command) == 0 {
		return domain.ActionResult{}
	}
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	runCtx := ctx
	if target.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, target.Timeout)
		defer cancel()
	}

	//nolint:gosec // the command is the user's declared action
	cmd := exec.CommandContext(runCtx, target.Command[0], target.Command[1:]...)
	if target.WorkingDir.String() != "" {
		cmd.Dir = target.WorkingDir.String()
	}
	cmd.Env = resolveEnvironment(os.Environ(), target.Environment)

	tail := &tailBuffer{limit: stderrTailLimit}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return launchFailure(err)
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return launchFailure(err)
	}

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return launchFailure(err)
	}

	var g errgroup.Group
	g.Go(func() error {
		_, err := io.Copy(stdout, stdoutPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(io.MultiWriter(stderr, tail), stderrPipe)
		return err
	})

	// Copy errors are not fatal to the result; the exit status is what
	// classifies the outcome.
	if err := g.Wait(); err != nil {
		e.logger.Warn("output stream interrupted: " + err.Error())
	}

	waitErr := cmd.Wait()
	result := domain.ActionResult{
		Duration:   time.Since(start),
		StderrTail: tail.String(),
	}

	if waitErr == nil {
		return result
	}

	switch {
	case errors.Is(runCtx.Err(), context.DeadlineExceeded) && ctx.Err() == nil:
		result.Failure = domain.FailureTimeout
		result.ExitCode = -1
		result.Err = zerr.With(zerr.Wrap(waitErr, "action timed out"), "timeout", target.Timeout.String())
	case ctx.Err() != nil:
		result.Failure = domain.FailureCanceled
		result.ExitCode = -1
		result.Err = zerr.Wrap(waitErr, "action canceled")
	default:
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			result.Failure = domain.FailureExit
			result.ExitCode = exitErr.ExitCode()
			result.Err = zerr.With(zerr.Wrap(waitErr, "action exited non-zero"), "exit_code", exitErr.ExitCode())
		} else {
			result.Failure = domain.FailureLaunch
			result.ExitCode = -1
			result.Err = zerr.Wrap(waitErr, "action did not run")
		}
	}
	return result
}

func launchFailure(err error) domain.ActionResult {
	return domain.ActionResult{
		ExitCode: -1,
		Failure:  domain.FailureLaunch,
		Err:      zerr.Wrap(err, "failed to launch action"),
	}
}

// resolveEnvironment merges target overrides over the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	keys := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			keys = append(keys, k)
		}
		envMap[k] = v
	}
	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			keys = append(keys, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(keys))
	for _, k := range keys {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// tailBuffer keeps the last limit bytes written to it.
type tailBuffer struct {
	limit int
	buf   []byte
}

func (b *tailBuffer) Write(p []byte) (int, error) {
	b.buf = append(b.buf, p...)
	if len(b.buf) > b.limit {
		b.buf = b.buf[len(b.buf)-b.limit:]
	}
	return len(p), nil
}

func (b *tailBuffer) String() string {
	return string(b.buf)
}
