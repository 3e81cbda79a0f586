package ports

import "go.trai.ch/strata/internal/core/domain"

// ArtifactStore defines the interface for storing and retrieving built
// environment artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact_store.go -destination=mocks/mock_artifact_store.go -package=mocks
type ArtifactStore interface {
	// Get retrieves the artifact for a given variant ID.
	// Returns nil, nil if not found.
	Get(root, variantID string) (*domain.Artifact, error)

	// Put stores the artifact.
	Put(root string, artifact domain.Artifact) error
}
