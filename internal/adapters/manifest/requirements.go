package manifest

import (
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// requirementRe matches a registry requirement: a package name followed
// by an optional constraint ("name", "name==1.2", "name>=1.0,<2.0").
var requirementRe = regexp.MustCompile(
	`^([A-Za-z0-9][A-Za-z0-9._-]*)\s*((?:==|>=|<=|!=|>|<)\s*[^,\s]+(?:\s*,\s*(?:==|>=|<=|!=|>|<)\s*[^,\s]+)*)?$`,
)

// parseRequirementLine parses one requirements file line into a
// domain.PackageRequirement. The caller strips comments and blanks.
//
// Supported forms mirror the recipes this replaces:
//
//	name[<op>version[,<op>version]]   registry package
//	-e <path>                         local editable install
//	git+<url>@<rev>                   pinned VCS checkout
func parseRequirementLine(line string) (domain.PackageRequirement, error) {
	switch {
	case strings.HasPrefix(line, "-e"):
		return parseEditable(strings.TrimSpace(strings.TrimPrefix(line, "-e")))
	case strings.HasPrefix(line, "git+"):
		return parseVCSRef(line)
	default:
		return parseRegistry(line)
	}
}

func parseRegistry(line string) (domain.PackageRequirement, error) {
	m := requirementRe.FindStringSubmatch(line)
	if m == nil {
		return domain.PackageRequirement{}, zerr.With(domain.ErrInvalidRequirement, "text", line)
	}

	spec := strings.Join(strings.Fields(m[2]), "")

	return domain.PackageRequirement{
		Name:   domain.NewInternedString(m[1]),
		Spec:   spec,
		Source: domain.SourceRegistry,
		Tier:   domain.TierEcosystem,
	}, nil
}

// parseEditable builds a local requirement from an editable path entry.
// The package name is derived from the path's last element.
func parseEditable(pathArg string) (domain.PackageRequirement, error) {
	if pathArg == "" {
		err := zerr.Wrap(domain.ErrInvalidRequirement, "editable entry missing path")
		return domain.PackageRequirement{}, err
	}

	name := filepath.Base(filepath.Clean(pathArg))

	return domain.PackageRequirement{
		Name:   domain.NewInternedString(name),
		Source: domain.SourceLocal,
		Ref:    pathArg,
		Tier:   domain.TierProject,
	}, nil
}

// parseVCSRef builds a VCS requirement from a "git+<url>@<rev>" entry.
// The revision must be pinned explicitly so resolution stays
// reproducible; a floating reference is rejected.
func parseVCSRef(ref string) (domain.PackageRequirement, error) {
	url := strings.TrimPrefix(ref, "git+")

	at := strings.LastIndex(url, "@")
	if at <= 0 || at == len(url)-1 {
		err := zerr.Wrap(domain.ErrInvalidRequirement, "vcs reference must pin a revision with @<rev>")
		return domain.PackageRequirement{}, zerr.With(err, "ref", ref)
	}

	name := path.Base(url[:at])
	name = strings.TrimSuffix(name, ".git")
	if name == "" || name == "." || name == "/" {
		err := zerr.Wrap(domain.ErrInvalidRequirement, "cannot derive package name from vcs url")
		return domain.PackageRequirement{}, zerr.With(err, "ref", ref)
	}

	return domain.PackageRequirement{
		Name:   domain.NewInternedString(name),
		Source: domain.SourceVCS,
		Ref:    ref,
		Tier:   domain.TierProject,
	}, nil
}

// parseSystemEntry parses a system package entry. Same grammar as a
// registry requirement but placed in the earliest layer.
func parseSystemEntry(entry string) (domain.PackageRequirement, error) {
	req, err := parseRegistry(entry)
	if err != nil {
		return domain.PackageRequirement{}, err
	}
	req.Tier = domain.TierSystem
	return req, nil
}
