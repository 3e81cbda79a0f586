package domain

// SourceKind identifies where a requirement is fetched from.
type SourceKind string

const (
	// SourceRegistry is a package pulled from a registry index.
	SourceRegistry SourceKind = "registry"
	// SourceLocal is a project-local path installed as an editable.
	SourceLocal SourceKind = "local"
	// SourceVCS is a package checked out from a pinned VCS revision.
	SourceVCS SourceKind = "vcs"
)

// Tier classifies a requirement by how often it changes. Lower tiers
// change less often and must be installed in earlier layers so that
// editing a project-local requirement never invalidates the cached
// system or ecosystem layers.
type Tier int

const (
	// TierSystem covers native libraries and system-level packages.
	TierSystem Tier = iota
	// TierEcosystem covers registry packages pinned by a constraints file.
	TierEcosystem
	// TierProject covers local editables and VCS checkouts.
	TierProject
)

// String returns the human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierSystem:
		return "system"
	case TierEcosystem:
		return "ecosystem"
	case TierProject:
		return "project"
	default:
		return "unknown"
	}
}

// PackageRequirement represents a single declared package before resolution.
// It uses InternedString for the name since the same package names repeat
// across variants sharing a requirement set.
type PackageRequirement struct {
	// Name is the canonical package name. Unique within one resolution pass.
	Name InternedString

	// Spec is the version constraint, e.g. "==1.2.3" or ">=1.0,<2.0".
	// Empty means "latest".
	Spec string

	// Source identifies the requirement's origin.
	Source SourceKind

	// Ref holds the local path or VCS reference for non-registry sources.
	Ref string

	// Tier is the stability classification used by the layer planner.
	Tier Tier
}

// Pinned reports whether the requirement carries an exact version pin.
func (r PackageRequirement) Pinned() bool {
	return len(r.Spec) > 2 && r.Spec[0] == '=' && r.Spec[1] == '='
}

// PinnedVersion returns the exact version for a pinned requirement,
// or the empty string if the requirement is not pinned.
func (r PackageRequirement) PinnedVersion() string {
	if !r.Pinned() {
		return ""
	}
	return r.Spec[2:]
}

// DisplayName returns the requirement as it would appear on an install
// line: the name with its constraint, or the source ref for local and
// VCS requirements.
func (r PackageRequirement) DisplayName() string {
	if r.Source != SourceRegistry && r.Ref != "" {
		return r.Ref
	}
	return r.Name.String() + r.Spec
}
