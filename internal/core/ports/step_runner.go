package ports

import (
	"context"

	"go.trai.ch/strata/internal/core/domain"
)

// StepRunner defines the interface for executing a single install step.
//
// The env parameter contains the variant's environment exports in
// "KEY=VALUE" format, and root is the project root the install tool
// runs in. Steps within one variant run strictly sequentially; a step
// either completes or the variant build fails.
//
//go:generate go run go.uber.org/mock/mockgen -source=step_runner.go -destination=mocks/mock_step_runner.go -package=mocks
type StepRunner interface {
	// Run executes one install step for the named variant.
	Run(ctx context.Context, variantID, root string, step *domain.InstallStep, env []string) error
}
