package domain

import "path/filepath"

const (
	// StrataDirName is the name of the internal metadata directory.
	StrataDirName = ".strata"

	// ArtifactsDirName is the name of the artifact store directory.
	ArtifactsDirName = "artifacts"

	// ManifestFileName is the name of the build manifest file.
	ManifestFileName = "strata.yaml"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultArtifactsPath returns the default path for the artifact store,
// relative to the project root.
func DefaultArtifactsPath() string {
	return filepath.Join(StrataDirName, ArtifactsDirName)
}
