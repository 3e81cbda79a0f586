// Package planner partitions resolved requirements into cache-friendly
// install steps.
package planner

import (
	"slices"
	"strings"

	"go.trai.ch/strata/internal/core/domain"
)

// Planner orders requirements into install steps by stability tier:
// system-level requirements first, constraint-pinned ecosystem
// requirements next, project-local and VCS requirements last. This
// ordering is what keeps layered builds fast to iterate on: changing a
// frequently edited requirement must not invalidate the cached layers
// of rarely changing ones.
type Planner struct{}

// NewPlanner creates a new Planner.
func NewPlanner() *Planner {
	return &Planner{}
}

// Plan partitions the requirements into at most one step per tier,
// skipping empty tiers. Within a step, requirements are ordered
// lexicographically by package name to keep plans deterministic.
func (p *Planner) Plan(variantID domain.InternedString, reqs []domain.PackageRequirement) *domain.InstallPlan {
	byTier := make(map[domain.Tier][]domain.PackageRequirement)
	for _, req := range reqs {
		byTier[req.Tier] = append(byTier[req.Tier], req)
	}

	plan := &domain.InstallPlan{VariantID: variantID}

	for _, tier := range []domain.Tier{domain.TierSystem, domain.TierEcosystem, domain.TierProject} {
		batch := byTier[tier]
		if len(batch) == 0 {
			continue
		}

		slices.SortFunc(batch, func(a, b domain.PackageRequirement) int {
			return strings.Compare(a.Name.String(), b.Name.String())
		})

		plan.Steps = append(plan.Steps, domain.InstallStep{
			Tier:         tier,
			Requirements: batch,
		})
	}

	return plan
}
