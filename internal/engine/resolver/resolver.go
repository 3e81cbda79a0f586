// Package resolver computes concrete requirement sets from declared
// requirements and a constraint set.
package resolver

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver narrows requirements against a constraint set and verifies
// that every external source reference can be resolved. Resolution is
// deterministic: identical inputs always produce an identical result,
// which keeps plans reproducible and cache hits predictable.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve merges duplicate requirements, narrows unpinned ones via the
// constraint set, verifies local sources under root, and returns the
// requirements sorted by tier then name.
func (r *Resolver) Resolve(
	reqs []domain.PackageRequirement,
	cs domain.ConstraintSet,
	root string,
) ([]domain.PackageRequirement, error) {
	merged := make(map[domain.InternedString]domain.PackageRequirement, len(reqs))

	for _, req := range reqs {
		existing, ok := merged[req.Name]
		if !ok {
			merged[req.Name] = req
			continue
		}

		combined, err := combine(existing, req)
		if err != nil {
			return nil, err
		}
		merged[req.Name] = combined
	}

	resolved := make([]domain.PackageRequirement, 0, len(merged))
	for _, req := range merged {
		// The constraint set only narrows; it never introduces
		// packages and never touches non-registry sources.
		if pin, ok := cs.Lookup(req.Name); ok && req.Source == domain.SourceRegistry {
			narrowed, err := narrow(req, pin)
			if err != nil {
				return nil, err
			}
			req = narrowed
		}

		if err := verifySource(req, root); err != nil {
			return nil, err
		}

		resolved = append(resolved, req)
	}

	slices.SortFunc(resolved, func(a, b domain.PackageRequirement) int {
		if a.Tier != b.Tier {
			return int(a.Tier) - int(b.Tier)
		}
		return strings.Compare(a.Name.String(), b.Name.String())
	})

	return resolved, nil
}

// combine merges two requirements for the same package, or reports a
// conflict if they cannot both hold.
func combine(a, b domain.PackageRequirement) (domain.PackageRequirement, error) {
	if a.Source != b.Source {
		return domain.PackageRequirement{}, conflictErr(a.Name, string(a.Source)+" source", string(b.Source)+" source")
	}

	switch {
	case a.Pinned() && b.Pinned():
		if a.PinnedVersion() != b.PinnedVersion() {
			return domain.PackageRequirement{}, conflictErr(a.Name, a.Spec, b.Spec)
		}
	case a.Pinned() && b.Spec != "":
		if err := checkPinSatisfies(a.Name, a.PinnedVersion(), b.Spec); err != nil {
			return domain.PackageRequirement{}, err
		}
	case b.Pinned() && a.Spec != "":
		if err := checkPinSatisfies(a.Name, b.PinnedVersion(), a.Spec); err != nil {
			return domain.PackageRequirement{}, err
		}
		a.Spec = b.Spec
	case b.Pinned():
		a.Spec = b.Spec
	case a.Spec == "":
		a.Spec = b.Spec
	case b.Spec != "" && b.Spec != a.Spec:
		// Two ranges: keep both clauses. The install tool enforces the
		// intersection; an empty intersection surfaces as a step failure.
		a.Spec = a.Spec + "," + b.Spec
	}

	// The earlier tier wins so a package never migrates to a later
	// layer when it is also named in an earlier one.
	if b.Tier < a.Tier {
		a.Tier = b.Tier
	}

	return a, nil
}

// narrow applies a constraints file entry to a requirement.
func narrow(req domain.PackageRequirement, pin string) (domain.PackageRequirement, error) {
	pinned := domain.PackageRequirement{Spec: pin}

	if !pinned.Pinned() {
		// The constraints entry is itself a range: tighten, don't pin.
		if req.Spec == "" {
			req.Spec = pin
		} else if req.Spec != pin {
			req.Spec = req.Spec + "," + pin
		}
		return req, nil
	}

	pinVersion := pinned.PinnedVersion()

	if req.Pinned() {
		if req.PinnedVersion() != pinVersion {
			return domain.PackageRequirement{}, conflictErr(req.Name, req.Spec, pin)
		}
		return req, nil
	}

	if req.Spec != "" {
		if err := checkPinSatisfies(req.Name, pinVersion, req.Spec); err != nil {
			return domain.PackageRequirement{}, err
		}
	}

	req.Spec = pin
	return req, nil
}

// verifySource checks that a requirement's external source exists.
func verifySource(req domain.PackageRequirement, root string) error {
	if req.Source != domain.SourceLocal {
		return nil
	}

	path := req.Ref
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	if _, err := os.Stat(path); err != nil {
		err = zerr.Wrap(err, domain.ErrMissingSource.Error())
		err = zerr.With(err, "package", req.Name.String())
		return zerr.With(err, "path", path)
	}

	return nil
}

func conflictErr(name domain.InternedString, constraintA, constraintB string) error {
	err := zerr.With(domain.ErrConstraintConflict, "package", name.String())
	err = zerr.With(err, "constraint_a", displaySpec(constraintA))
	return zerr.With(err, "constraint_b", displaySpec(constraintB))
}

func displaySpec(spec string) string {
	if spec == "" {
		return "latest"
	}
	return spec
}
