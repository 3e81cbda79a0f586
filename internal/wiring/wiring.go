// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/strata/internal/adapters/artifacts"
	_ "go.trai.ch/strata/internal/adapters/constraints"
	_ "go.trai.ch/strata/internal/adapters/logger"
	_ "go.trai.ch/strata/internal/adapters/manifest"
	_ "go.trai.ch/strata/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.trai.ch/strata/internal/app"
	_ "go.trai.ch/strata/internal/engine/builder"
	_ "go.trai.ch/strata/internal/engine/planner"
	_ "go.trai.ch/strata/internal/engine/resolver"
)
