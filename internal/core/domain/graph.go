// Package domain contains the core domain models for the target dependency graph.
package domain

import (
	"cmp"
	"slices"

	"go.trai.ch/zerr"
)

// Graph is an immutable-after-construction description of named targets and
// their prerequisite edges. Targets live in an arena keyed by interned name;
// declaration order is kept so that resolution is deterministic.
type Graph struct {
	targets  map[InternedString]Target
	declared []InternedString
	index    map[InternedString]int
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		targets: make(map[InternedString]Target),
		index:   make(map[InternedString]int),
	}
}

// AddTarget adds a target to the graph.
// It returns an error if a target with the same name already exists.
func (g *Graph) AddTarget(t *Target) error {
	if _, exists := g.targets[t.Name]; exists {
		return zerr.With(ErrTargetAlreadyExists, "target", t.Name.String())
	}
	g.targets[t.Name] = *t
	g.index[t.Name] = len(g.declared)
	g.declared = append(g.declared, t.Name)
	return nil
}

// Get returns the target with the given name.
func (g *Graph) Get(name InternedString) (Target, bool) {
	t, ok := g.targets[name]
	return t, ok
}

// TargetCount returns the number of declared targets.
func (g *Graph) TargetCount() int {
	return len(g.targets)
}

// Names returns the target names in declaration order.
func (g *Graph) Names() []InternedString {
	out := make([]InternedString, len(g.declared))
	copy(out, g.declared)
	return out
}

// Resolve returns the prerequisite closure of goal in topological order:
// every prerequisite precedes its dependents, and ties among independent
// targets break by first-declared order. It fails with ErrUnknownTarget if the
// goal or any referenced prerequisite is not declared, and with
// ErrCycleDetected if the prerequisite relation is cyclic.
func (g *Graph) Resolve(goal InternedString) ([]Target, error) {
	if _, ok := g.targets[goal]; !ok {
		return nil, zerr.With(ErrUnknownTarget, "target", goal.String())
	}

	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)

	order := make([]Target, 0, len(g.targets))
	state := make(map[InternedString]int, len(g.targets))
	var path []InternedString

	var visit func(name InternedString) error
	visit = func(name InternedString) error {
		state[name] = visiting
		path = append(path, name)

		target, exists := g.targets[name]
		if !exists {
			return zerr.With(ErrUnknownTarget, "target", name.String())
		}

		for _, dep := range g.sortedPrerequisites(target.Prerequisites) {
			switch state[dep] {
			case visiting:
				return cycleError(path, dep)
			case unvisited:
				if err := visit(dep); err != nil {
					return err
				}
			}
		}

		state[name] = done
		path = path[:len(path)-1]
		order = append(order, target)
		return nil
	}

	if err := visit(goal); err != nil {
		return nil, err
	}
	return order, nil
}

// Validate checks every declared target for unknown prerequisites and cycles.
// It walks targets in declaration order so that the reported cycle is stable.
func (g *Graph) Validate() error {
	for _, name := range g.declared {
		if _, err := g.Resolve(name); err != nil {
			return err
		}
	}
	return nil
}

// sortedPrerequisites orders prerequisite visits by declaration index so
// that independent targets resolve in first-declared order, not the order
// they happen to be listed in dependsOn.
func (g *Graph) sortedPrerequisites(deps []InternedString) []InternedString {
	if len(deps) < 2 {
		return deps
	}
	sorted := make([]InternedString, len(deps))
	copy(sorted, deps)
	slices.SortStableFunc(sorted, func(a, b InternedString) int {
		return cmp.Compare(g.declarationIndex(a), g.declarationIndex(b))
	})
	return sorted
}

// declarationIndex sorts undeclared names last; visiting them fails with
// ErrUnknownTarget either way.
func (g *Graph) declarationIndex(name InternedString) int {
	if i, ok := g.index[name]; ok {
		return i
	}
	return len(g.declared)
}

// cycleError constructs an error carrying the cycle path as metadata,
// e.g. "A -> B -> C -> A".
func cycleError(path []InternedString, dep InternedString) error {
	start := 0
	for i, node := range path {
		if node == dep {
			start = i
			break
		}
	}

	cycle := ""
	for i := start; i < len(path); i++ {
		cycle += path[i].String() + " -> "
	}
	cycle += dep.String()
	return zerr.With(ErrCycleDetected, "cycle", cycle)
}
