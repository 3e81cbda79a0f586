package app

import "go.trai.ch/strata/internal/core/ports"

// Components contains the initialized application components exposed to
// the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
