package app_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/app"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports/mocks"
	"go.trai.ch/strata/internal/engine/builder"
	"go.trai.ch/strata/internal/engine/planner"
	"go.trai.ch/strata/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	manifests   *mocks.MockManifestLoader
	constraints *mocks.MockConstraintLoader
	runner      *mocks.MockStepRunner
	store       *mocks.MockArtifactStore
	logger      *mocks.MockLogger
	app         *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		manifests:   mocks.NewMockManifestLoader(ctrl),
		constraints: mocks.NewMockConstraintLoader(ctrl),
		runner:      mocks.NewMockStepRunner(ctrl),
		store:       mocks.NewMockArtifactStore(ctrl),
		logger:      mocks.NewMockLogger(ctrl),
	}
	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	b := builder.NewBuilder(
		f.constraints,
		f.runner,
		f.store,
		f.logger,
		resolver.NewResolver(),
		planner.NewPlanner(),
	)
	f.app = app.New(f.manifests, b, f.logger)
	return f
}

func testManifest() *domain.Manifest {
	variant := func(id string) *domain.BuildVariant {
		return &domain.BuildVariant{
			ID: domain.NewInternedString(id),
			Requirements: []domain.PackageRequirement{
				{Name: domain.NewInternedString("numpy"), Spec: "==1.24.3", Source: domain.SourceRegistry, Tier: domain.TierEcosystem},
			},
		}
	}
	return &domain.Manifest{
		Root:     "/proj",
		Variants: []*domain.BuildVariant{variant("legacy"), variant("stable")},
	}
}

func TestApp_Build(t *testing.T) {
	t.Run("builds all variants by default", func(t *testing.T) {
		f := newFixture(t)

		f.manifests.EXPECT().Load("/cwd").Return(testManifest(), nil)
		f.store.EXPECT().Get("/proj", gomock.Any()).Return(nil, nil).Times(2)
		f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), "/proj", gomock.Any(), gomock.Any()).Return(nil).Times(2)
		f.store.EXPECT().Put("/proj", gomock.Any()).Return(nil).Times(2)

		err := f.app.Build(context.Background(), "/cwd", app.BuildOptions{})
		require.NoError(t, err)
	})

	t.Run("builds only the selected variant", func(t *testing.T) {
		f := newFixture(t)

		f.manifests.EXPECT().Load("/cwd").Return(testManifest(), nil)
		f.store.EXPECT().Get("/proj", "stable").Return(nil, nil)
		f.runner.EXPECT().Run(gomock.Any(), "stable", "/proj", gomock.Any(), gomock.Any()).Return(nil)
		f.store.EXPECT().Put("/proj", gomock.Any()).Return(nil)

		err := f.app.Build(context.Background(), "/cwd", app.BuildOptions{Variants: []string{"stable"}})
		require.NoError(t, err)
	})

	t.Run("unknown variant", func(t *testing.T) {
		f := newFixture(t)

		f.manifests.EXPECT().Load("/cwd").Return(testManifest(), nil)

		err := f.app.Build(context.Background(), "/cwd", app.BuildOptions{Variants: []string{"nightly"}})
		require.ErrorIs(t, err, domain.ErrVariantNotFound)
	})

	t.Run("one failing variant fails the build but not its siblings", func(t *testing.T) {
		f := newFixture(t)

		f.manifests.EXPECT().Load("/cwd").Return(testManifest(), nil)
		f.store.EXPECT().Get("/proj", gomock.Any()).Return(nil, nil).Times(2)

		f.runner.EXPECT().Run(gomock.Any(), "stable", "/proj", gomock.Any(), gomock.Any()).Return(nil)
		f.runner.EXPECT().Run(gomock.Any(), "legacy", "/proj", gomock.Any(), gomock.Any()).Return(assert.AnError)

		// Only the successful variant publishes an artifact.
		f.store.EXPECT().Put("/proj", gomock.Any()).DoAndReturn(func(_ string, artifact domain.Artifact) error {
			assert.Equal(t, "stable", artifact.VariantID)
			return nil
		})

		err := f.app.Build(context.Background(), "/cwd", app.BuildOptions{})
		require.ErrorIs(t, err, domain.ErrBuildFailed)
	})

	t.Run("manifest load failure", func(t *testing.T) {
		f := newFixture(t)

		f.manifests.EXPECT().Load("/cwd").Return(nil, assert.AnError)

		err := f.app.Build(context.Background(), "/cwd", app.BuildOptions{})
		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestApp_Plan(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	f := newFixture(t)
	buf := new(bytes.Buffer)
	f.app.WithOutput(buf)

	f.manifests.EXPECT().Load("/cwd").Return(testManifest(), nil)

	err := f.app.Plan("/cwd", []string{"stable"})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "stable")
	assert.Contains(t, out, "fingerprint")
	assert.Contains(t, out, "numpy==1.24.3")
	assert.Contains(t, out, "ecosystem")
	assert.NotContains(t, out, "legacy")
}
