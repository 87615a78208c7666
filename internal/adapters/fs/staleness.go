// Package fs implements the filesystem-backed staleness oracle.
package fs

import (
	"os"
	"time"

	"go.trai.ch/pali/internal/core/domain"
)

// Oracle implements ports.StalenessOracle by comparing output modification
// times. It reads only existence and mtime metadata, never file contents.
type Oracle struct{}

// NewOracle creates a new Oracle.
func NewOracle() *Oracle {
	return &Oracle{}
}

// IsStale reports whether the target must be rebuilt.
//
// The decision is two-tier: a prerequisite rebuilt during this invocation
// invalidates the target outright, which avoids races where prerequisite and
// dependent land within the same filesystem timestamp resolution. Only when
// the dependency chain is unchanged does the mtime comparison apply: the
// target is fresh only if the newest prerequisite output is strictly older
// than the oldest of the target's own outputs.
func (o *Oracle) IsStale(target *domain.Target, prerequisites []domain.Target, prerequisiteRebuilt bool) bool {
	// Phony targets and targets with no declared outputs are pure actions.
	if target.Phony || len(target.Outputs) == 0 {
		return true
	}

	if prerequisiteRebuilt {
		return true
	}

	oldestOwn, ok := oldestModTime(target.Outputs)
	if !ok {
		return true
	}

	var newestPrereq time.Time
	sawPrereqOutput := false
	for _, prereq := range prerequisites {
		for _, out := range prereq.Outputs {
			mt, ok := modTime(out.String())
			if !ok {
				// A missing or unreadable prerequisite output means the
				// chain cannot be proven fresh.
				return true
			}
			if !sawPrereqOutput || mt.After(newestPrereq) {
				newestPrereq = mt
				sawPrereqOutput = true
			}
		}
	}

	if !sawPrereqOutput {
		// No tracked prerequisite outputs and our own outputs exist.
		return false
	}

	return !newestPrereq.Before(oldestOwn)
}

// oldestModTime returns the oldest modification time among paths.
// ok is false if any path is missing or unreadable.
func oldestModTime(paths []domain.InternedString) (time.Time, bool) {
	var oldest time.Time
	for i, p := range paths {
		mt, ok := modTime(p.String())
		if !ok {
			return time.Time{}, false
		}
		if i == 0 || mt.Before(oldest) {
			oldest = mt
		}
	}
	return oldest, true
}

func modTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
