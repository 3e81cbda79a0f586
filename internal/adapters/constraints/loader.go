// Package constraints implements the constraints file loader.
//
// A constraints file is line oriented: each line is
// "name<op>version[,<op>version]" (e.g. "numpy==1.24.3" or
// "dask>=2023.1,<2024"), comments beginning with '#' and blank lines
// are ignored. Any other line fails the load.
package constraints

import (
	"os"
	"regexp"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// nameRe matches a package name at the start of a constraint line.
var nameRe = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*`)

// clauseRe matches a single "<op>version" clause.
var clauseRe = regexp.MustCompile(`^(==|>=|<=|!=|>|<)\s*(\S+)$`)

// Loader implements ports.ConstraintLoader for line-oriented
// constraints files.
type Loader struct{}

// NewLoader creates a new constraints file Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the constraints file at path. The returned set is
// immutable; a failed load returns the zero set and an error carrying
// the offending file and line.
func (l *Loader) Load(path string) (domain.ConstraintSet, error) {
	// #nosec G304 -- path comes from the validated manifest
	data, err := os.ReadFile(path)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConstraintsReadFailed.Error())
		return domain.ConstraintSet{}, zerr.With(err, "path", path)
	}

	pins := make(map[string]string)

	for i, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, spec, err := parseLine(line)
		if err != nil {
			err = zerr.With(err, "path", path)
			err = zerr.With(err, "line", i+1)
			return domain.ConstraintSet{}, zerr.With(err, "text", line)
		}

		pins[name] = spec
	}

	return domain.NewConstraintSet(pins), nil
}

// parseLine splits a constraint line into the package name and its
// normalized constraint spec (whitespace stripped).
func parseLine(line string) (name, spec string, err error) {
	name = nameRe.FindString(line)
	if name == "" {
		return "", "", domain.ErrMalformedConstraint
	}

	rest := strings.TrimSpace(line[len(name):])
	if rest == "" {
		return "", "", zerr.Wrap(domain.ErrMalformedConstraint, "missing version constraint")
	}

	clauses := strings.Split(rest, ",")
	normalized := make([]string, 0, len(clauses))

	for _, clause := range clauses {
		clause = strings.TrimSpace(clause)
		m := clauseRe.FindStringSubmatch(clause)
		if m == nil {
			return "", "", zerr.Wrap(domain.ErrMalformedConstraint, "invalid constraint clause")
		}
		if _, verr := goversion.NewVersion(m[2]); verr != nil {
			return "", "", zerr.Wrap(domain.ErrMalformedConstraint, "invalid version "+m[2])
		}
		normalized = append(normalized, m[1]+m[2])
	}

	return name, strings.Join(normalized, ","), nil
}
