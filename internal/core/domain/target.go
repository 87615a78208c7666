package domain

import "time"

// Target represents a named unit of work in the task graph.
// It uses InternedString for fields that are frequently repeated to save memory.
type Target struct {
	Name InternedString

	// Command is the external command run when the target is stale.
	// An empty command makes the target a pure ordering node.
	Command []string

	// Outputs are the filesystem paths the command is expected to produce.
	// Only existence and modification time are ever inspected, never contents.
	Outputs []InternedString

	// Prerequisites must reach a successful terminal state before this
	// target's command may run.
	Prerequisites []InternedString

	// Phony marks a target as having no cacheable output. A phony target is
	// considered stale on every invocation even if Outputs is non-empty,
	// so a forgotten output declaration is never silently masked.
	Phony bool

	Environment map[string]string
	WorkingDir  InternedString

	// Timeout bounds the command's runtime. Zero means no timeout.
	Timeout time.Duration
}
