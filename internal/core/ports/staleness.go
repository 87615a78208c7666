package ports

import "go.trai.ch/pali/internal/core/domain"

// StalenessOracle decides whether a target must be (re)built.
//
//go:generate go run go.uber.org/mock/mockgen -source=staleness.go -destination=mocks/mock_staleness.go -package=mocks
type StalenessOracle interface {
	// IsStale reports whether target must be rebuilt given its prerequisite
	// targets and whether any of them was rebuilt during this invocation.
	//
	// A freshly rebuilt prerequisite always invalidates its dependents
	// regardless of timestamps; the timestamp comparison is the fallback
	// for unchanged dependency chains. Only file existence and modification
	// time are consulted, never contents.
	IsStale(target *domain.Target, prerequisites []domain.Target, prerequisiteRebuilt bool) bool
}
