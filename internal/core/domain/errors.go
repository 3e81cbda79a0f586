package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedConstraint is returned when a constraints file line cannot be parsed.
	ErrMalformedConstraint = zerr.New("malformed constraint line")

	// ErrConstraintConflict is returned when two constraints for the same package cannot both hold.
	ErrConstraintConflict = zerr.New("conflicting version constraints")

	// ErrMissingSource is returned when a local or VCS requirement references a source that does not exist.
	ErrMissingSource = zerr.New("requirement source not found")

	// ErrStepFailed is returned when the install tool reports a failure for an install step.
	ErrStepFailed = zerr.New("install step failed")

	// ErrBuildFailed is returned when one or more variant builds fail.
	ErrBuildFailed = zerr.New("build failed")

	// ErrManifestNotFound is returned when no manifest file can be found.
	ErrManifestNotFound = zerr.New("could not find " + ManifestFileName)

	// ErrManifestReadFailed is returned when the manifest file cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest file")

	// ErrManifestParseFailed is returned when the manifest file cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse manifest file")

	// ErrNoVariantsDefined is returned when the manifest declares no variants.
	ErrNoVariantsDefined = zerr.New("no variants defined")

	// ErrInvalidVariantID is returned when a variant identifier contains invalid characters.
	ErrInvalidVariantID = zerr.New("variant id can only contain alphanumeric characters, hyphens and underscores")

	// ErrVariantNotFound is returned when a requested variant is not declared in the manifest.
	ErrVariantNotFound = zerr.New("variant not found")

	// ErrConstraintsReadFailed is returned when a constraints file cannot be read.
	ErrConstraintsReadFailed = zerr.New("failed to read constraints file")

	// ErrRequirementsReadFailed is returned when a requirements file cannot be read.
	ErrRequirementsReadFailed = zerr.New("failed to read requirements file")

	// ErrInvalidRequirement is returned when a requirement line cannot be parsed.
	ErrInvalidRequirement = zerr.New("invalid requirement")

	// ErrEmptyStep is returned when an install step with no requirements reaches the runner.
	ErrEmptyStep = zerr.New("install step has no requirements")

	// ErrStoreCreateFailed is returned when the artifact store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create artifact store directory")

	// ErrStoreReadFailed is returned when an artifact cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read artifact")

	// ErrStoreUnmarshalFailed is returned when an artifact cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal artifact")

	// ErrStoreMarshalFailed is returned when an artifact cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal artifact")

	// ErrStoreWriteFailed is returned when an artifact cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write artifact")
)
