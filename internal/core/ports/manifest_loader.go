// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/strata/internal/core/domain"

// ManifestLoader defines the interface for loading the build manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads the manifest starting from the given working directory
	// and returns the declared variants.
	Load(cwd string) (*domain.Manifest, error)
}
