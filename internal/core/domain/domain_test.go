package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/core/domain"
)

func TestPackageRequirement_Pinned(t *testing.T) {
	tests := []struct {
		name        string
		spec        string
		wantPinned  bool
		wantVersion string
	}{
		{name: "exact pin", spec: "==1.24.3", wantPinned: true, wantVersion: "1.24.3"},
		{name: "lower bound", spec: ">=1.0", wantPinned: false},
		{name: "range", spec: ">=1.0,<2.0", wantPinned: false},
		{name: "empty means latest", spec: "", wantPinned: false},
		{name: "bare equals is not a pin", spec: "=1.0", wantPinned: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := domain.PackageRequirement{
				Name: domain.NewInternedString("pkg"),
				Spec: tt.spec,
			}
			assert.Equal(t, tt.wantPinned, req.Pinned())
			assert.Equal(t, tt.wantVersion, req.PinnedVersion())
		})
	}
}

func TestPackageRequirement_DisplayName(t *testing.T) {
	registry := domain.PackageRequirement{
		Name:   domain.NewInternedString("numpy"),
		Spec:   "==1.24.3",
		Source: domain.SourceRegistry,
	}
	assert.Equal(t, "numpy==1.24.3", registry.DisplayName())

	local := domain.PackageRequirement{
		Name:   domain.NewInternedString("mylib"),
		Source: domain.SourceLocal,
		Ref:    "./libs/mylib",
	}
	assert.Equal(t, "./libs/mylib", local.DisplayName())
}

func TestTier_Ordering(t *testing.T) {
	// The planner relies on the numeric ordering: earlier tiers build
	// earlier layers.
	assert.Less(t, int(domain.TierSystem), int(domain.TierEcosystem))
	assert.Less(t, int(domain.TierEcosystem), int(domain.TierProject))

	assert.Equal(t, "system", domain.TierSystem.String())
	assert.Equal(t, "ecosystem", domain.TierEcosystem.String())
	assert.Equal(t, "project", domain.TierProject.String())
}

func TestConstraintSet_Merge(t *testing.T) {
	base := domain.NewConstraintSet(map[string]string{
		"numpy": "==1.24.3",
		"scipy": "==1.10.0",
	})
	override := domain.NewConstraintSet(map[string]string{
		"numpy": "==1.26.0",
		"dask":  ">=2023.1",
	})

	merged := base.Merge(override)

	spec, ok := merged.Lookup(domain.NewInternedString("numpy"))
	require.True(t, ok)
	assert.Equal(t, "==1.26.0", spec, "override must win on collision")

	spec, ok = merged.Lookup(domain.NewInternedString("scipy"))
	require.True(t, ok)
	assert.Equal(t, "==1.10.0", spec)

	_, ok = merged.Lookup(domain.NewInternedString("dask"))
	assert.True(t, ok)
	assert.Equal(t, 3, merged.Len())

	// Neither input changed.
	spec, _ = base.Lookup(domain.NewInternedString("numpy"))
	assert.Equal(t, "==1.24.3", spec)
	assert.Equal(t, 2, base.Len())
}

func TestConstraintSet_CopiesInput(t *testing.T) {
	pins := map[string]string{"numpy": "==1.0"}
	cs := domain.NewConstraintSet(pins)

	pins["numpy"] = "==9.9"

	spec, ok := cs.Lookup(domain.NewInternedString("numpy"))
	require.True(t, ok)
	assert.Equal(t, "==1.0", spec)
}

func TestInstallPlan_Fingerprint(t *testing.T) {
	plan := func() *domain.InstallPlan {
		return &domain.InstallPlan{
			VariantID: domain.NewInternedString("stable"),
			Steps: []domain.InstallStep{
				{
					Tier: domain.TierSystem,
					Requirements: []domain.PackageRequirement{
						{Name: domain.NewInternedString("libssl"), Source: domain.SourceRegistry, Tier: domain.TierSystem},
					},
				},
				{
					Tier: domain.TierEcosystem,
					Requirements: []domain.PackageRequirement{
						{Name: domain.NewInternedString("numpy"), Spec: "==1.24.3", Source: domain.SourceRegistry, Tier: domain.TierEcosystem},
					},
				},
			},
		}
	}

	t.Run("deterministic", func(t *testing.T) {
		a := plan().Fingerprint()
		b := plan().Fingerprint()
		assert.Equal(t, a, b)
		assert.Len(t, a, 16)
	})

	t.Run("sensitive to spec change", func(t *testing.T) {
		changed := plan()
		changed.Steps[1].Requirements[0].Spec = "==1.26.0"
		assert.NotEqual(t, plan().Fingerprint(), changed.Fingerprint())
	})

	t.Run("sensitive to variant", func(t *testing.T) {
		changed := plan()
		changed.VariantID = domain.NewInternedString("legacy")
		assert.NotEqual(t, plan().Fingerprint(), changed.Fingerprint())
	})

	t.Run("sensitive to step ordering", func(t *testing.T) {
		changed := plan()
		changed.Steps[0], changed.Steps[1] = changed.Steps[1], changed.Steps[0]
		assert.NotEqual(t, plan().Fingerprint(), changed.Fingerprint())
	})
}

func TestInstallPlan_RequirementCount(t *testing.T) {
	plan := &domain.InstallPlan{
		Steps: []domain.InstallStep{
			{Requirements: make([]domain.PackageRequirement, 2)},
			{Requirements: make([]domain.PackageRequirement, 3)},
		},
	}
	assert.Equal(t, 5, plan.RequirementCount())
}

func TestManifest_Variant(t *testing.T) {
	m := &domain.Manifest{
		Variants: []*domain.BuildVariant{
			{ID: domain.NewInternedString("legacy")},
			{ID: domain.NewInternedString("stable")},
		},
	}

	v, ok := m.Variant("stable")
	require.True(t, ok)
	assert.Equal(t, "stable", v.ID.String())

	_, ok = m.Variant("nightly")
	assert.False(t, ok)
}

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("numpy")
	b := domain.NewInternedString("numpy")
	c := domain.NewInternedString("scipy")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, "numpy", a.String())
}
