package ports

import "go.trai.ch/strata/internal/core/domain"

// ConstraintLoader defines the interface for loading pinned version
// constraints from a constraints file.
//
//go:generate go run go.uber.org/mock/mockgen -source=constraint_loader.go -destination=mocks/mock_constraint_loader.go -package=mocks
type ConstraintLoader interface {
	// Load parses the constraints file at path into an immutable set.
	// Returns domain.ErrMalformedConstraint if any line cannot be parsed.
	Load(path string) (domain.ConstraintSet, error)
}
