package domain

// BuildVariant is one independently buildable environment configuration,
// e.g. a "stable" and a "legacy" base image sharing the same pipeline.
// A variant carries everything its build needs; failure in one variant
// must never corrupt the artifacts of another.
type BuildVariant struct {
	// ID is the variant identifier used on the command line.
	ID InternedString

	// Base is the base image tag the environment is layered onto.
	// Opaque to the core; recorded on the artifact.
	Base string

	// ConstraintFiles are the constraint file paths applied to this
	// variant, in merge order: earlier files are overridden by later
	// ones (shared constraints first, the variant's own file last).
	ConstraintFiles []string

	// Requirements are the declared packages across all tiers,
	// in manifest order. The planner batches them into layers.
	Requirements []PackageRequirement

	// Env is the variant's environment exports. Opaque pass-through
	// strings applied to install steps and recorded on the artifact.
	Env map[string]string
}
