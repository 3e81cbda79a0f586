// Package manifest provides the build manifest loader for strata.
package manifest

import (
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ManifestLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

var validVariantIDRegex = regexp.MustCompile("^[a-zA-Z0-9_-]+$")

// Load reads the manifest by walking up from cwd and returns the
// declared variants.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	manifestPath, err := l.findManifest(cwd)
	if err != nil {
		return nil, err
	}

	var file File
	if err := readAndUnmarshalYAML(manifestPath, &file); err != nil {
		return nil, err
	}

	if len(file.Variants) == 0 {
		return nil, zerr.With(domain.ErrNoVariantsDefined, "path", manifestPath)
	}

	l.Logger.Info("using manifest " + manifestPath)

	root := resolveRoot(manifestPath, file.Root)

	m := &domain.Manifest{Root: root}
	for id := range file.Variants {
		variant, err := l.buildVariant(id, file.Variants[id], file.Shared, root)
		if err != nil {
			return nil, zerr.With(err, "variant", id)
		}
		m.Variants = append(m.Variants, variant)
	}

	// Map iteration order is random; sort so builds are deterministic.
	slices.SortFunc(m.Variants, func(a, b *domain.BuildVariant) int {
		return strings.Compare(a.ID.String(), b.ID.String())
	})

	return m, nil
}

func (l *Loader) findManifest(cwd string) (string, error) {
	currentDir := cwd
	for {
		manifestPath := filepath.Join(currentDir, domain.ManifestFileName)
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrManifestNotFound, "cwd", cwd)
}

func (l *Loader) buildVariant(
	id string,
	dto *VariantDTO,
	shared string,
	root string,
) (*domain.BuildVariant, error) {
	if !validVariantIDRegex.MatchString(id) {
		return nil, zerr.With(domain.ErrInvalidVariantID, "variant_id", id)
	}

	if dto == nil {
		dto = &VariantDTO{}
	}

	variant := &domain.BuildVariant{
		ID:   domain.NewInternedString(id),
		Base: dto.Base,
		Env:  dto.Env,
	}

	// Shared constraints sit beneath the variant's own file so the
	// variant wins on collision.
	if shared != "" {
		variant.ConstraintFiles = append(variant.ConstraintFiles, resolvePath(root, shared))
	}
	if dto.Constraints != "" {
		variant.ConstraintFiles = append(variant.ConstraintFiles, resolvePath(root, dto.Constraints))
	}

	reqs, err := l.collectRequirements(dto, root)
	if err != nil {
		return nil, err
	}
	variant.Requirements = reqs

	return variant, nil
}

func (l *Loader) collectRequirements(dto *VariantDTO, root string) ([]domain.PackageRequirement, error) {
	var reqs []domain.PackageRequirement

	for _, entry := range dto.System {
		req, err := parseSystemEntry(entry)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}

	if dto.Requirements != "" {
		fileReqs, err := l.loadRequirementsFile(resolvePath(root, dto.Requirements))
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, fileReqs...)
	}

	for _, entry := range dto.Packages {
		req, err := parseRequirementLine(entry)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}

	for _, localPath := range dto.Local {
		req, err := parseEditable(localPath)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}

	for _, ref := range dto.VCS {
		req, err := parseVCSRef(ref)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}

	return reqs, nil
}

// loadRequirementsFile parses a line-oriented requirements file.
// Comments and blank lines are ignored.
func (l *Loader) loadRequirementsFile(path string) ([]domain.PackageRequirement, error) {
	// #nosec G304 -- path comes from the validated manifest
	data, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrRequirementsReadFailed.Error())
		return nil, zerr.With(err, "path", path)
	}

	var reqs []domain.PackageRequirement
	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		req, err := parseRequirementLine(line)
		if err != nil {
			err = zerr.With(err, "path", path)
			return nil, zerr.With(err, "line", i+1)
		}
		reqs = append(reqs, req)
	}

	return reqs, nil
}

func resolveRoot(manifestPath, configuredRoot string) string {
	manifestDir := filepath.Dir(manifestPath)
	if configuredRoot == "" {
		return filepath.Clean(manifestDir)
	}
	if filepath.IsAbs(configuredRoot) {
		return filepath.Clean(configuredRoot)
	}
	return filepath.Clean(filepath.Join(manifestDir, configuredRoot))
}

func resolvePath(root, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(root, p))
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is validated by caller
	data, err := os.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrManifestParseFailed.Error())
	}

	return nil
}
