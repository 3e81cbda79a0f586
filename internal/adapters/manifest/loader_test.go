package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/manifest"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *manifest.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return manifest.NewLoader(log)
}

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	return root
}

func TestLoader_Load(t *testing.T) {
	t.Run("full manifest", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"strata.yaml": `
version: "1"
shared: constraints/shared.txt
variants:
  stable:
    base: python:3.11-slim
    constraints: constraints/stable.txt
    system:
      - libgl1
      - libssl3==3.0.2
    requirements: requirements/stable.txt
    packages:
      - pandas>=2.0,<3.0
    local:
      - ./libs/mylib
    vcs:
      - git+https://example.com/org/tool.git@v1.2.0
    env:
      PIP_INDEX_URL: https://pypi.internal/simple
  legacy:
    base: python:3.8-slim
`,
			"requirements/stable.txt": `
# core stack
numpy==1.24.3
scipy
`,
		})

		m, err := newLoader(t).Load(root)
		require.NoError(t, err)
		assert.Equal(t, root, m.Root)
		require.Len(t, m.Variants, 2)

		// Sorted by ID.
		assert.Equal(t, "legacy", m.Variants[0].ID.String())
		assert.Equal(t, "stable", m.Variants[1].ID.String())

		stable := m.Variants[1]
		assert.Equal(t, "python:3.11-slim", stable.Base)
		assert.Equal(t, map[string]string{"PIP_INDEX_URL": "https://pypi.internal/simple"}, stable.Env)

		// Shared constraints come before the variant's own file.
		require.Len(t, stable.ConstraintFiles, 2)
		assert.Equal(t, filepath.Join(root, "constraints/shared.txt"), stable.ConstraintFiles[0])
		assert.Equal(t, filepath.Join(root, "constraints/stable.txt"), stable.ConstraintFiles[1])

		// System + requirements file + packages + local + vcs.
		require.Len(t, stable.Requirements, 7)

		byName := map[string]domain.PackageRequirement{}
		for _, req := range stable.Requirements {
			byName[req.Name.String()] = req
		}

		assert.Equal(t, domain.TierSystem, byName["libgl1"].Tier)
		assert.Equal(t, "==3.0.2", byName["libssl3"].Spec)

		assert.Equal(t, domain.TierEcosystem, byName["numpy"].Tier)
		assert.Equal(t, "==1.24.3", byName["numpy"].Spec)
		assert.Equal(t, "", byName["scipy"].Spec)
		assert.Equal(t, ">=2.0,<3.0", byName["pandas"].Spec)

		mylib := byName["mylib"]
		assert.Equal(t, domain.SourceLocal, mylib.Source)
		assert.Equal(t, "./libs/mylib", mylib.Ref)
		assert.Equal(t, domain.TierProject, mylib.Tier)

		tool := byName["tool"]
		assert.Equal(t, domain.SourceVCS, tool.Source)
		assert.Equal(t, "git+https://example.com/org/tool.git@v1.2.0", tool.Ref)
		assert.Equal(t, domain.TierProject, tool.Tier)

		// Legacy declared nothing beyond a base and has no shared file
		// duplication issues.
		legacy := m.Variants[0]
		assert.Empty(t, legacy.Requirements)
		require.Len(t, legacy.ConstraintFiles, 1)
	})

	t.Run("discovered from subdirectory", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"strata.yaml":       "variants:\n  stable: {}\n",
			"src/pkg/keep.file": "",
		})

		m, err := newLoader(t).Load(filepath.Join(root, "src", "pkg"))
		require.NoError(t, err)
		assert.Equal(t, root, m.Root)
	})

	t.Run("missing manifest", func(t *testing.T) {
		_, err := newLoader(t).Load(t.TempDir())
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrManifestNotFound.Error())
	})

	t.Run("no variants", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"strata.yaml": "version: \"1\"\n",
		})

		_, err := newLoader(t).Load(root)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrNoVariantsDefined.Error())
	})

	t.Run("invalid variant id", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"strata.yaml": "variants:\n  \"bad id!\": {}\n",
		})

		_, err := newLoader(t).Load(root)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidVariantID.Error())
	})

	t.Run("malformed yaml", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"strata.yaml": "variants: [not a map\n",
		})

		_, err := newLoader(t).Load(root)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrManifestParseFailed.Error())
	})

	t.Run("floating vcs reference rejected", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"strata.yaml": `
variants:
  stable:
    vcs:
      - git+https://example.com/org/tool.git
`,
		})

		_, err := newLoader(t).Load(root)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidRequirement.Error())
	})

	t.Run("missing requirements file", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"strata.yaml": `
variants:
  stable:
    requirements: requirements/missing.txt
`,
		})

		_, err := newLoader(t).Load(root)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrRequirementsReadFailed.Error())
	})

	t.Run("bad requirement line", func(t *testing.T) {
		root := writeTree(t, map[string]string{
			"strata.yaml":      "variants:\n  stable:\n    requirements: reqs.txt\n",
			"reqs.txt":         "numpy==1.24.3\n==broken\n",
			"unused/keep.file": "",
		})

		_, err := newLoader(t).Load(root)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidRequirement.Error())
	})
}
