package domain

// Status represents the state of a target during one invocation.
type Status string

const (
	// StatusPending indicates the target is waiting to be processed.
	StatusPending Status = "Pending"
	// StatusRunning indicates the target's action is currently executing.
	StatusRunning Status = "Running"
	// StatusUpToDate indicates the target was skipped because its outputs
	// are current relative to its prerequisites.
	StatusUpToDate Status = "UpToDate"
	// StatusSucceeded indicates the target was stale and its action
	// completed successfully.
	StatusSucceeded Status = "Succeeded"
	// StatusFailed indicates the target's action was attempted and failed.
	StatusFailed Status = "Failed"
	// StatusSkippedUpstream indicates the target was skipped because a
	// prerequisite failed; its action was never attempted.
	StatusSkippedUpstream Status = "SkippedUpstream"
)

// Terminal reports whether the status is a terminal state.
func (s Status) Terminal() bool {
	switch s {
	case StatusUpToDate, StatusSucceeded, StatusFailed, StatusSkippedUpstream:
		return true
	default:
		return false
	}
}

// Success reports whether the status is a successful terminal state.
func (s Status) Success() bool {
	return s == StatusUpToDate || s == StatusSucceeded
}

// ReportEntry is one (target, outcome) record of a run.
type ReportEntry struct {
	Target InternedString
	Status Status

	// Result is set for targets whose action was executed, nil otherwise.
	Result *ActionResult
}

// Report aggregates per-target outcomes for one invocation, in processing
// order. It is append-only and owned by the scheduler for the duration of
// the run; nothing in it persists across invocations.
type Report struct {
	entries []ReportEntry
}

// NewReport creates an empty Report.
func NewReport() *Report {
	return &Report{}
}

// Record appends an outcome for a target.
func (r *Report) Record(target InternedString, status Status, result *ActionResult) {
	r.entries = append(r.entries, ReportEntry{Target: target, Status: status, Result: result})
}

// Summary returns the recorded entries in processing order.
func (r *Report) Summary() []ReportEntry {
	out := make([]ReportEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of recorded entries.
func (r *Report) Len() int {
	return len(r.entries)
}

// Outcome returns the recorded status for a target.
func (r *Report) Outcome(target InternedString) (Status, bool) {
	for _, e := range r.entries {
		if e.Target == target {
			return e.Status, true
		}
	}
	return "", false
}

// FirstFailure returns the first entry with StatusFailed, which is the
// target whose diagnostics are worth surfacing; cascading skips carry none.
func (r *Report) FirstFailure() (ReportEntry, bool) {
	for _, e := range r.entries {
		if e.Status == StatusFailed {
			return e, true
		}
	}
	return ReportEntry{}, false
}

// OK reports whether every recorded target reached a successful state.
func (r *Report) OK() bool {
	for _, e := range r.entries {
		if !e.Status.Success() {
			return false
		}
	}
	return true
}
