// Package wiring registers all Graft nodes and task plugins for the
// application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/rig/internal/adapters/config"
	_ "go.trai.ch/rig/internal/adapters/logger"
	_ "go.trai.ch/rig/internal/adapters/report"
	_ "go.trai.ch/rig/internal/adapters/shell"
	_ "go.trai.ch/rig/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/rig/internal/app"
	// Register built-in task plugins.
	_ "go.trai.ch/rig/internal/tasks/checksum"
	_ "go.trai.ch/rig/internal/tasks/sysinfo"
	_ "go.trai.ch/rig/internal/tasks/timing"
)
