package manifest

// File represents the structure of the strata.yaml manifest.
type File struct {
	Version  string                 `yaml:"version"`
	Root     string                 `yaml:"root"`
	Shared   string                 `yaml:"shared"`
	Variants map[string]*VariantDTO `yaml:"variants"`
}

// VariantDTO represents one variant definition in the manifest.
type VariantDTO struct {
	// Base is the base image tag for the variant.
	Base string `yaml:"base"`

	// Constraints is the path to the variant's constraints file,
	// relative to the manifest.
	Constraints string `yaml:"constraints"`

	// System lists native/system-level packages (earliest layer).
	System []string `yaml:"system"`

	// Requirements is the path to a requirements file, relative to
	// the manifest.
	Requirements string `yaml:"requirements"`

	// Packages lists registry requirements inline, same grammar as a
	// requirements file line.
	Packages []string `yaml:"packages"`

	// Local lists project-local paths installed as editables.
	Local []string `yaml:"local"`

	// VCS lists pinned version-control references ("git+<url>@<rev>").
	VCS []string `yaml:"vcs"`

	// Env is the variant's environment exports.
	Env map[string]string `yaml:"env"`
}
