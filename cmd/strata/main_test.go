package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/strata/internal/app"
	"go.trai.ch/strata/internal/core/ports/mocks"
	"go.trai.ch/strata/internal/engine/builder"
	"go.trai.ch/strata/internal/engine/planner"
	"go.trai.ch/strata/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func testComponents(t *testing.T) *app.Components {
	t.Helper()
	ctrl := gomock.NewController(t)

	mockManifests := mocks.NewMockManifestLoader(ctrl)
	mockConstraints := mocks.NewMockConstraintLoader(ctrl)
	mockRunner := mocks.NewMockStepRunner(ctrl)
	mockStore := mocks.NewMockArtifactStore(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	b := builder.NewBuilder(
		mockConstraints,
		mockRunner,
		mockStore,
		mockLogger,
		resolver.NewResolver(),
		planner.NewPlanner(),
	)

	return &app.Components{
		App:    app.New(mockManifests, b, mockLogger),
		Logger: mockLogger,
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	components := testComponents(t)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitFailure verifies the exit code and stderr output when
// component initialization fails.
func TestRun_InitFailure(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), nil, stderr, provider)
	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "wiring failed")
}

// TestRun_UnknownCommand verifies that an unknown command fails with a
// non-zero exit code.
func TestRun_UnknownCommand(t *testing.T) {
	components := testComponents(t)

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return components, func() {}, nil
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"frobnicate"}, stderr, provider)
	assert.Equal(t, 1, exitCode)
}
