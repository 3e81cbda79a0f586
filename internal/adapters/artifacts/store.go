// Package artifacts implements the on-disk artifact store.
package artifacts

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.ArtifactStore using a file-per-variant strategy
// under <root>/.strata/artifacts. Each variant writes only its own file,
// so a failed build can never corrupt another variant's artifact.
type Store struct{}

// NewStore creates a new artifact Store.
func NewStore() (*Store, error) {
	return &Store{}, nil
}

// Get retrieves the artifact for a given variant ID.
func (s *Store) Get(root, variantID string) (*domain.Artifact, error) {
	filename := s.getFilename(root, variantID)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var artifact domain.Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error())
	}

	return &artifact, nil
}

// Put stores the artifact.
func (s *Store) Put(root string, artifact domain.Artifact) error {
	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	filename := s.getFilename(root, artifact.VariantID)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	return nil
}

func (s *Store) getFilename(root, variantID string) string {
	hash := sha256.Sum256([]byte(variantID))
	hexHash := hex.EncodeToString(hash[:])
	storeDir := filepath.Join(root, domain.DefaultArtifactsPath())
	return filepath.Join(storeDir, hexHash+".json")
}
