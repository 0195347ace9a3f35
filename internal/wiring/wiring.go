// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vigil/internal/adapters/analysis"
	_ "go.trai.ch/vigil/internal/adapters/config"
	_ "go.trai.ch/vigil/internal/adapters/credentials"
	_ "go.trai.ch/vigil/internal/adapters/fs"
	_ "go.trai.ch/vigil/internal/adapters/logger"
	_ "go.trai.ch/vigil/internal/adapters/telemetry"
	_ "go.trai.ch/vigil/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/vigil/internal/app"
	_ "go.trai.ch/vigil/internal/engine/availability"
	_ "go.trai.ch/vigil/internal/engine/cache"
	_ "go.trai.ch/vigil/internal/engine/jobs"
)
