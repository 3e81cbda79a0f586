package builder

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/strata/internal/core/domain"
)

// DefaultParallelism bounds how many variant builds run concurrently
// when the caller does not say otherwise.
const DefaultParallelism = 4

// Orchestrator fans variant builds out across a bounded worker group.
// Variants are independent: a failure in one never cancels another, and
// every variant reports its own outcome.
type Orchestrator struct {
	builder     *Builder
	parallelism int
}

// NewOrchestrator creates an Orchestrator running at most parallelism
// variant builds at once. Values below one fall back to the default.
func NewOrchestrator(b *Builder, parallelism int) *Orchestrator {
	if parallelism < 1 {
		parallelism = DefaultParallelism
	}
	return &Orchestrator{builder: b, parallelism: parallelism}
}

// BuildAll builds every given variant and returns the per variant
// outcome keyed by variant ID. A nil map value means that variant
// built successfully.
func (o *Orchestrator) BuildAll(
	ctx context.Context,
	variants []*domain.BuildVariant,
	root string,
	noCache bool,
) map[string]error {
	results := make(map[string]error, len(variants))

	var mu sync.Mutex
	var group errgroup.Group
	group.SetLimit(o.parallelism)

	for _, variant := range variants {
		group.Go(func() error {
			err := o.builder.Build(ctx, variant, root, noCache)

			mu.Lock()
			results[variant.ID.String()] = err
			mu.Unlock()

			// Outcomes are collected per variant; never abort the group.
			return nil
		})
	}

	_ = group.Wait()
	return results
}
