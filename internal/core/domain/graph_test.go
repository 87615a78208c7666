package domain_test

import (
	"errors"
	"strings"
	"testing"

	"go.trai.ch/pali/internal/core/domain"
	"go.trai.ch/zerr"
)

func target(name string, prereqs ...string) *domain.Target {
	t := &domain.Target{Name: domain.NewInternedString(name)}
	for _, p := range prereqs {
		t.Prerequisites = append(t.Prerequisites, domain.NewInternedString(p))
	}
	return t
}

func mustAdd(t *testing.T, g *domain.Graph, targets ...*domain.Target) {
	t.Helper()
	for _, tg := range targets {
		if err := g.AddTarget(tg); err != nil {
			t.Fatalf("failed to add target %s: %v", tg.Name, err)
		}
	}
}

func TestGraph_AddTarget_Duplicate(t *testing.T) {
	g := domain.NewGraph()
	mustAdd(t, g, target("compile"))

	err := g.AddTarget(target("compile"))
	if err == nil {
		t.Fatal("expected error when adding duplicate target, got nil")
	}
	if !errors.Is(err, domain.ErrTargetAlreadyExists) {
		t.Errorf("expected ErrTargetAlreadyExists, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if name, ok := meta["target"].(string); !ok || name != "compile" {
		t.Errorf("expected metadata target=compile, got %v", meta["target"])
	}
}

func TestGraph_Resolve_Chain(t *testing.T) {
	g := domain.NewGraph()
	mustAdd(t, g,
		target("compile"),
		target("assemble", "compile"),
		target("link", "assemble"),
		target("run", "link"),
	)

	order, err := g.Resolve(domain.NewInternedString("run"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, len(order))
	for i, tg := range order {
		got[i] = tg.Name.String()
	}
	want := []string{"compile", "assemble", "link", "run"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v, want %v", got, want)
		}
	}
}

func TestGraph_Resolve_DiamondTieBreak(t *testing.T) {
	// goal lists b before a, but a is declared first; first-declared order
	// decides the tie, and base appears exactly once.
	g := domain.NewGraph()
	mustAdd(t, g,
		target("base"),
		target("a", "base"),
		target("b", "base"),
		target("goal", "b", "a"),
	)

	order, err := g.Resolve(domain.NewInternedString("goal"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := make([]string, len(order))
	for i, tg := range order {
		got[i] = tg.Name.String()
	}
	want := []string{"base", "a", "b", "goal"}
	if len(got) != len(want) {
		t.Fatalf("expected %d targets, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got %v, want %v", got, want)
		}
	}
}

func TestGraph_Resolve_ExcludesUnreachable(t *testing.T) {
	g := domain.NewGraph()
	mustAdd(t, g,
		target("compile"),
		target("assemble", "compile"),
		target("unrelated"),
	)

	order, err := g.Resolve(domain.NewInternedString("assemble"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order) != 2 {
		t.Fatalf("expected closure of 2 targets, got %d", len(order))
	}
	for _, tg := range order {
		if tg.Name.String() == "unrelated" {
			t.Error("unreachable target included in resolution")
		}
	}
}

func TestGraph_Resolve_UnknownGoal(t *testing.T) {
	g := domain.NewGraph()
	mustAdd(t, g, target("compile"))

	_, err := g.Resolve(domain.NewInternedString("deploy"))
	if !errors.Is(err, domain.ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}
}

func TestGraph_Resolve_UnknownPrerequisite(t *testing.T) {
	g := domain.NewGraph()
	mustAdd(t, g, target("link", "assemble"))

	_, err := g.Resolve(domain.NewInternedString("link"))
	if !errors.Is(err, domain.ErrUnknownTarget) {
		t.Fatalf("expected ErrUnknownTarget, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	if name := zErr.Metadata()["target"]; name != "assemble" {
		t.Errorf("expected metadata target=assemble, got %v", name)
	}
}

func TestGraph_Resolve_Cycle(t *testing.T) {
	g := domain.NewGraph()
	mustAdd(t, g,
		target("a", "b"),
		target("b", "c"),
		target("c", "a"),
	)

	_, err := g.Resolve(domain.NewInternedString("a"))
	if !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	cycle, ok := zErr.Metadata()["cycle"].(string)
	if !ok || cycle == "" {
		t.Fatal("expected non-empty cycle metadata")
	}
	for _, name := range []string{"a", "b", "c"} {
		if !strings.Contains(cycle, name) {
			t.Errorf("cycle %q does not name %s", cycle, name)
		}
	}
}

func TestGraph_Validate(t *testing.T) {
	g := domain.NewGraph()
	mustAdd(t, g,
		target("compile"),
		target("assemble", "compile"),
	)
	if err := g.Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}

	mustAdd(t, g, target("loop", "loop"))
	if err := g.Validate(); !errors.Is(err, domain.ErrCycleDetected) {
		t.Fatalf("expected ErrCycleDetected for self-loop, got %v", err)
	}
}
