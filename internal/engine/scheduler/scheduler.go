// Package scheduler implements the dependency-ordered target execution engine.
package scheduler

import (
	"context"
	"sync"

	"go.trai.ch/pali/internal/core/domain"
	"go.trai.ch/pali/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler processes the prerequisite closure of a goal target strictly in
// resolved order. A target's action never begins before all of its
// prerequisites have reached a terminal state; there is no overlap between
// two actions.
type Scheduler struct {
	executor  ports.Executor
	oracle    ports.StalenessOracle
	telemetry ports.Telemetry
	logger    ports.Logger

	mu     sync.RWMutex
	status map[domain.InternedString]domain.Status
}

// NewScheduler creates a new Scheduler with the given dependencies.
func NewScheduler(
	executor ports.Executor,
	oracle ports.StalenessOracle,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Scheduler {
	return &Scheduler{
		executor:  executor,
		oracle:    oracle,
		telemetry: telemetry,
		logger:    logger,
		status:    make(map[domain.InternedString]domain.Status),
	}
}

// Status returns the current status of a target during or after a run.
func (s *Scheduler) Status(name domain.InternedString) domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status[name]
}

func (s *Scheduler) updateStatus(name domain.InternedString, status domain.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status[name] = status
}

// Run builds the named goal. It resolves the goal's prerequisite closure,
// decides skip versus rebuild per target, executes stale targets' actions in
// order, and halts dependent work on first failure.
//
// Construction-time errors (unknown target, cycle) abort immediately with a
// nil report. Execution-time failures are recorded per target; the returned
// error is ErrRunFailed iff the goal did not reach a successful state.
// If force is true every target in the closure is treated as stale.
func (s *Scheduler) Run(ctx context.Context, graph *domain.Graph, goal string, force bool) (*domain.Report, error) {
	if goal == "" {
		return nil, domain.ErrNoGoalSpecified
	}

	goalName := domain.NewInternedString(goal)
	order, err := graph.Resolve(goalName)
	if err != nil {
		return nil, err
	}

	for _, t := range order {
		s.updateStatus(t.Name, domain.StatusPending)
	}

	report := domain.NewReport()
	failed := make(map[domain.InternedString]bool)
	rebuilt := make(map[domain.InternedString]bool)

	for i := range order {
		target := order[i]

		// Cancellation: everything not yet started is skipped, never run.
		if ctx.Err() != nil {
			s.skipUpstream(report, failed, target.Name)
			continue
		}

		if s.upstreamFailed(&target, failed) {
			s.skipUpstream(report, failed, target.Name)
			continue
		}

		prereqs := prerequisiteTargets(graph, &target)
		stale := force || s.oracle.IsStale(&target, prereqs, anyRebuilt(&target, rebuilt))
		if !stale {
			s.updateStatus(target.Name, domain.StatusUpToDate)
			report.Record(target.Name, domain.StatusUpToDate, nil)
			_, vertex := s.telemetry.Record(ctx, target.Name.String())
			vertex.Cached()
			vertex.Complete(nil)
			continue
		}

		s.updateStatus(target.Name, domain.StatusRunning)
		vctx, vertex := s.telemetry.Record(ctx, target.Name.String())
		result := s.executor.Execute(vctx, &target, vertex.Stdout(), vertex.Stderr())

		if result.OK() {
			s.updateStatus(target.Name, domain.StatusSucceeded)
			report.Record(target.Name, domain.StatusSucceeded, &result)
			rebuilt[target.Name] = true
			vertex.Complete(nil)
		} else {
			s.updateStatus(target.Name, domain.StatusFailed)
			report.Record(target.Name, domain.StatusFailed, &result)
			failed[target.Name] = true
			vertex.Complete(result.Err)
		}
	}

	goalStatus, _ := report.Outcome(goalName)
	if !goalStatus.Success() {
		return report, zerr.With(runFailedError(report), "goal", goal)
	}
	return report, nil
}

// runFailedError builds the aggregate run error, attaching the first failing
// target when one exists.
func runFailedError(report *domain.Report) error {
	err := error(domain.ErrRunFailed)
	if entry, ok := report.FirstFailure(); ok {
		err = zerr.With(err, "failed_target", entry.Target.String())
	}
	return err
}

func (s *Scheduler) skipUpstream(report *domain.Report, failed map[domain.InternedString]bool, name domain.InternedString) {
	s.updateStatus(name, domain.StatusSkippedUpstream)
	report.Record(name, domain.StatusSkippedUpstream, nil)
	failed[name] = true
}

func (s *Scheduler) upstreamFailed(target *domain.Target, failed map[domain.InternedString]bool) bool {
	for _, dep := range target.Prerequisites {
		if failed[dep] {
			return true
		}
	}
	return false
}

func anyRebuilt(target *domain.Target, rebuilt map[domain.InternedString]bool) bool {
	for _, dep := range target.Prerequisites {
		if rebuilt[dep] {
			return true
		}
	}
	return false
}

func prerequisiteTargets(graph *domain.Graph, target *domain.Target) []domain.Target {
	if len(target.Prerequisites) == 0 {
		return nil
	}
	prereqs := make([]domain.Target, 0, len(target.Prerequisites))
	for _, dep := range target.Prerequisites {
		if t, ok := graph.Get(dep); ok {
			prereqs = append(prereqs, t)
		}
	}
	return prereqs
}
