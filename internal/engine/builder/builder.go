// Package builder drives single variant builds and the multi variant
// orchestration on top of the resolver and planner.
package builder

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/planner"
	"go.trai.ch/strata/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// Builder computes the install plan for a variant and executes it step
// by step. Steps run strictly in plan order; the first failure aborts
// the variant and nothing is published. A successful run publishes one
// artifact carrying the plan fingerprint, which later runs use to skip
// work when nothing changed.
type Builder struct {
	constraints ports.ConstraintLoader
	runner      ports.StepRunner
	store       ports.ArtifactStore
	logger      ports.Logger
	resolver    *resolver.Resolver
	planner     *planner.Planner
}

// NewBuilder creates a Builder with the given dependencies.
func NewBuilder(
	constraints ports.ConstraintLoader,
	runner ports.StepRunner,
	store ports.ArtifactStore,
	logger ports.Logger,
	res *resolver.Resolver,
	pln *planner.Planner,
) *Builder {
	return &Builder{
		constraints: constraints,
		runner:      runner,
		store:       store,
		logger:      logger,
		resolver:    res,
		planner:     pln,
	}
}

// Plan computes the install plan for a variant without executing it.
// Constraint files are loaded and merged in declaration order, later
// files overriding earlier ones, before the requirements are resolved.
func (b *Builder) Plan(variant *domain.BuildVariant, root string) (*domain.InstallPlan, error) {
	constraints := domain.NewConstraintSet(nil)

	for _, path := range variant.ConstraintFiles {
		loaded, err := b.constraints.Load(path)
		if err != nil {
			return nil, zerr.With(err, "variant", variant.ID.String())
		}
		constraints = constraints.Merge(loaded)
	}

	resolved, err := b.resolver.Resolve(variant.Requirements, constraints, root)
	if err != nil {
		return nil, zerr.With(err, "variant", variant.ID.String())
	}

	return b.planner.Plan(variant.ID, resolved), nil
}

// Build plans and executes one variant build. When noCache is false and
// the stored artifact's fingerprint matches the freshly computed plan,
// the build is skipped entirely.
func (b *Builder) Build(ctx context.Context, variant *domain.BuildVariant, root string, noCache bool) error {
	plan, err := b.Plan(variant, root)
	if err != nil {
		return err
	}

	fingerprint := plan.Fingerprint()
	variantID := variant.ID.String()

	if !noCache {
		existing, err := b.store.Get(root, variantID)
		if err != nil {
			// A corrupt cache entry is not fatal, the build just runs.
			b.logger.Warn(fmt.Sprintf("[%s] could not read cached artifact, rebuilding", variantID))
		} else if existing != nil && existing.Fingerprint == fingerprint {
			b.logger.Info(fmt.Sprintf("[%s] up to date (fingerprint %s)", variantID, fingerprint))
			return nil
		}
	}

	b.logger.Info(fmt.Sprintf(
		"[%s] building %d requirements in %d steps",
		variantID, plan.RequirementCount(), len(plan.Steps),
	))

	env := environList(variant.Env)

	for i := range plan.Steps {
		step := &plan.Steps[i]
		if err := b.runner.Run(ctx, variantID, root, step, env); err != nil {
			err = zerr.Wrap(err, domain.ErrStepFailed.Error())
			err = zerr.With(err, "variant", variantID)
			err = zerr.With(err, "step", fmt.Sprintf("%d/%d", i+1, len(plan.Steps)))
			return zerr.With(err, "tier", step.Tier.String())
		}
	}

	artifact := domain.Artifact{
		VariantID:   variantID,
		Base:        variant.Base,
		Fingerprint: fingerprint,
		Steps:       len(plan.Steps),
		Env:         variant.Env,
		Timestamp:   time.Now().UTC(),
	}

	if err := b.store.Put(root, artifact); err != nil {
		return zerr.With(err, "variant", variantID)
	}

	b.logger.Info(fmt.Sprintf("[%s] built (fingerprint %s)", variantID, fingerprint))
	return nil
}

// environList flattens a variant's env map into sorted KEY=VALUE pairs.
func environList(env map[string]string) []string {
	if len(env) == 0 {
		return nil
	}

	pairs := make([]string, 0, len(env))
	for key, value := range env {
		pairs = append(pairs, key+"="+value)
	}
	slices.Sort(pairs)
	return pairs
}
