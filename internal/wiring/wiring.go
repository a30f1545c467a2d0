// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/shed/internal/adapters/config"
	_ "go.trai.ch/shed/internal/adapters/lockfile"
	_ "go.trai.ch/shed/internal/adapters/logger"
	_ "go.trai.ch/shed/internal/adapters/nix"
	_ "go.trai.ch/shed/internal/adapters/shell"
	_ "go.trai.ch/shed/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/shed/internal/app"
)
