package domain

import "go.trai.ch/zerr"

var (
	// ErrTargetAlreadyExists is returned when adding a target whose name is already declared.
	ErrTargetAlreadyExists = zerr.New("target already exists")

	// ErrUnknownTarget is returned when a goal or prerequisite references an undeclared target.
	ErrUnknownTarget = zerr.New("unknown target")

	// ErrCycleDetected is returned when the prerequisite relation is cyclic.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrNoGoalSpecified is returned when a run is requested without a goal target.
	ErrNoGoalSpecified = zerr.New("no goal specified")

	// ErrRunFailed is the aggregate error for an invocation whose goal did not
	// reach a successful terminal state. The run report carries the detail.
	ErrRunFailed = zerr.New("run failed")
)
