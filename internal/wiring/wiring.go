// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/pali/internal/adapters/config"
	_ "go.trai.ch/pali/internal/adapters/fs"
	_ "go.trai.ch/pali/internal/adapters/logger"
	_ "go.trai.ch/pali/internal/adapters/shell"
	_ "go.trai.ch/pali/internal/adapters/telemetry"
	// Register app, engine and ui nodes.
	_ "go.trai.ch/pali/internal/app"
	_ "go.trai.ch/pali/internal/engine/scheduler"
	_ "go.trai.ch/pali/internal/ui"
)
