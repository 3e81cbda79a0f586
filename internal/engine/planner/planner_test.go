package planner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/engine/planner"
)

func req(name string, tier domain.Tier) domain.PackageRequirement {
	return domain.PackageRequirement{
		Name:   domain.NewInternedString(name),
		Source: domain.SourceRegistry,
		Tier:   tier,
	}
}

func TestPlanner_Plan(t *testing.T) {
	p := planner.NewPlanner()
	variantID := domain.NewInternedString("stable")

	t.Run("partitions by tier in order", func(t *testing.T) {
		plan := p.Plan(variantID, []domain.PackageRequirement{
			req("mylib", domain.TierProject),
			req("numpy", domain.TierEcosystem),
			req("libssl3", domain.TierSystem),
			req("scipy", domain.TierEcosystem),
		})

		require.Len(t, plan.Steps, 3)
		assert.Equal(t, domain.TierSystem, plan.Steps[0].Tier)
		assert.Equal(t, domain.TierEcosystem, plan.Steps[1].Tier)
		assert.Equal(t, domain.TierProject, plan.Steps[2].Tier)
		assert.Equal(t, 4, plan.RequirementCount())
	})

	t.Run("skips empty tiers", func(t *testing.T) {
		plan := p.Plan(variantID, []domain.PackageRequirement{
			req("numpy", domain.TierEcosystem),
		})

		require.Len(t, plan.Steps, 1)
		assert.Equal(t, domain.TierEcosystem, plan.Steps[0].Tier)
	})

	t.Run("orders requirements lexicographically within a step", func(t *testing.T) {
		plan := p.Plan(variantID, []domain.PackageRequirement{
			req("scipy", domain.TierEcosystem),
			req("dask", domain.TierEcosystem),
			req("numpy", domain.TierEcosystem),
		})

		require.Len(t, plan.Steps, 1)
		names := make([]string, 0, 3)
		for _, r := range plan.Steps[0].Requirements {
			names = append(names, r.Name.String())
		}
		assert.Equal(t, []string{"dask", "numpy", "scipy"}, names)
	})

	t.Run("empty input yields empty plan", func(t *testing.T) {
		plan := p.Plan(variantID, nil)
		assert.Empty(t, plan.Steps)
		assert.Equal(t, "stable", plan.VariantID.String())
	})

	t.Run("identical inputs produce identical fingerprints", func(t *testing.T) {
		reqs := []domain.PackageRequirement{
			req("numpy", domain.TierEcosystem),
			req("libssl3", domain.TierSystem),
		}
		a := p.Plan(variantID, reqs).Fingerprint()
		b := p.Plan(variantID, reqs).Fingerprint()
		assert.Equal(t, a, b)
	})
}
