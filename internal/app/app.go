// Package app implements the application layer for strata.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/engine/builder"
	"go.trai.ch/strata/internal/ui/style"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	manifestLoader ports.ManifestLoader
	builder        *builder.Builder
	logger         ports.Logger
	out            io.Writer
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, b *builder.Builder, log ports.Logger) *App {
	return &App{
		manifestLoader: loader,
		builder:        b,
		logger:         log,
		out:            os.Stdout,
	}
}

// WithOutput redirects plan rendering, primarily for tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// BuildOptions carries the per invocation build settings.
type BuildOptions struct {
	// Variants selects which variants to build. Empty means all.
	Variants []string

	// NoCache forces a rebuild even when the stored artifact matches.
	NoCache bool

	// Parallelism bounds concurrent variant builds. Values below one
	// fall back to the orchestrator default.
	Parallelism int
}

// Build loads the manifest from cwd and builds the selected variants.
// Variants build independently: every selected variant runs to its own
// outcome, and Build reports failure if any of them failed.
func (a *App) Build(ctx context.Context, cwd string, opts BuildOptions) error {
	manifest, err := a.manifestLoader.Load(cwd)
	if err != nil {
		return err
	}

	variants, err := selectVariants(manifest, opts.Variants)
	if err != nil {
		return err
	}

	orchestrator := builder.NewOrchestrator(a.builder, opts.Parallelism)
	results := orchestrator.BuildAll(ctx, variants, manifest.Root, opts.NoCache)

	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	failed := 0
	for _, id := range ids {
		if buildErr := results[id]; buildErr != nil {
			failed++
			a.logger.Info(style.FailStyle.Render(style.Cross) + " " + id)
			a.logger.Error(buildErr)
		} else {
			a.logger.Info(style.OKStyle.Render(style.Check) + " " + id)
		}
	}

	if failed > 0 {
		err := zerr.With(domain.ErrBuildFailed, "failed", fmt.Sprintf("%d/%d", failed, len(results)))
		return err
	}

	return nil
}

// Plan loads the manifest from cwd and renders the install plan for the
// selected variants without executing anything.
func (a *App) Plan(cwd string, variantIDs []string) error {
	manifest, err := a.manifestLoader.Load(cwd)
	if err != nil {
		return err
	}

	variants, err := selectVariants(manifest, variantIDs)
	if err != nil {
		return err
	}

	for _, variant := range variants {
		plan, err := a.builder.Plan(variant, manifest.Root)
		if err != nil {
			return err
		}
		a.renderPlan(variant, plan)
	}

	return nil
}

func (a *App) renderPlan(variant *domain.BuildVariant, plan *domain.InstallPlan) {
	header := plan.VariantID.String()
	if variant.Base != "" {
		header += "  " + style.Muted.Render("base: "+variant.Base)
	}
	fmt.Fprintln(a.out, style.Header.Render(header))
	fmt.Fprintln(a.out, style.Muted.Render("  fingerprint "+plan.Fingerprint()))

	for i, step := range plan.Steps {
		fmt.Fprintf(a.out, "  step %d/%d  %s\n", i+1, len(plan.Steps), step.Tier)
		for _, req := range step.Requirements {
			fmt.Fprintf(a.out, "    %s %s\n", style.Muted.Render(style.Dot), req.DisplayName())
		}
	}
	fmt.Fprintln(a.out)
}

// selectVariants resolves the requested variant IDs against the
// manifest. An empty selection means every declared variant.
func selectVariants(manifest *domain.Manifest, ids []string) ([]*domain.BuildVariant, error) {
	if len(ids) == 0 {
		return manifest.Variants, nil
	}

	selected := make([]*domain.BuildVariant, 0, len(ids))
	seen := make(map[string]bool, len(ids))

	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		variant, ok := manifest.Variant(id)
		if !ok {
			return nil, zerr.With(domain.ErrVariantNotFound, "variant", id)
		}
		selected = append(selected, variant)
	}

	return selected, nil
}
