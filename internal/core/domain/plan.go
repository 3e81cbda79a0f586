package domain

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// InstallStep is a batch of requirements installed together. One step
// corresponds to one cache layer: its validity depends only on its own
// inputs, never on later steps.
type InstallStep struct {
	// Tier is the stability tier shared by every requirement in the batch.
	Tier Tier

	// Requirements are sorted lexicographically by package name so that
	// identical inputs always produce an identical step.
	Requirements []PackageRequirement
}

// InstallPlan is the ordered sequence of install steps computed for one
// variant build. Plans are computed fresh per invocation and never
// persisted; only the resulting artifact is.
type InstallPlan struct {
	VariantID InternedString
	Steps     []InstallStep
}

// Fingerprint returns a deterministic hash of the plan's step ordering
// and contents. Two builds with identical inputs produce identical
// fingerprints, which is what makes cache hits predictable.
func (p *InstallPlan) Fingerprint() string {
	digest := xxhash.New()

	_, _ = digest.WriteString(p.VariantID.String())
	_, _ = digest.Write([]byte{0})

	for _, step := range p.Steps {
		_, _ = digest.WriteString(step.Tier.String())
		_, _ = digest.Write([]byte{0})
		for _, req := range step.Requirements {
			_, _ = digest.WriteString(req.Name.String())
			_, _ = digest.WriteString(req.Spec)
			_, _ = digest.WriteString(string(req.Source))
			_, _ = digest.WriteString(req.Ref)
			_, _ = digest.Write([]byte{0})
		}
		// Step separator
		_, _ = digest.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", digest.Sum64())
}

// RequirementCount returns the total number of requirements across all steps.
func (p *InstallPlan) RequirementCount() int {
	n := 0
	for _, step := range p.Steps {
		n += len(step.Requirements)
	}
	return n
}
