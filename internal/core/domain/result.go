package domain

import "time"

// FailureKind classifies how an action execution failed.
// Execution failures are routine outcomes, not raised errors: the executor
// reports them upward and never aborts the run itself.
type FailureKind int

const (
	// FailureNone indicates the action exited successfully.
	FailureNone FailureKind = iota
	// FailureLaunch indicates the process could not be started at all
	// (missing executable, permission denied).
	FailureLaunch
	// FailureExit indicates the process ran and exited non-zero.
	FailureExit
	// FailureTimeout indicates the configured per-target timeout elapsed and
	// the process was terminated.
	FailureTimeout
	// FailureCanceled indicates the invocation was canceled while the
	// process was running.
	FailureCanceled
)

// String returns the string representation of the FailureKind.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureLaunch:
		return "launch"
	case FailureExit:
		return "exit"
	case FailureTimeout:
		return "timeout"
	case FailureCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// ActionResult is the immutable record of one action execution.
// It is created by the executor and consumed by the scheduler and the
// run report.
type ActionResult struct {
	// ExitCode is the process exit code. -1 when the process never ran or
	// was terminated by a signal.
	ExitCode int

	// Failure classifies the result. FailureNone means success.
	Failure FailureKind

	// StderrTail holds the last captured portion of the action's stderr,
	// surfaced for the first failing target of a run.
	StderrTail string

	// Duration is the wall-clock time between launch and termination.
	Duration time.Duration

	// Err carries the underlying error for failed results.
	Err error
}

// OK reports whether the action succeeded.
func (r ActionResult) OK() bool {
	return r.Failure == FailureNone
}
