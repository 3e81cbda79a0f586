package resolver

import (
	"strings"

	goversion "github.com/hashicorp/go-version"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/zerr"
)

// checkPinSatisfies verifies that an exact version pin is admitted by a
// constraint spec, reporting a conflict naming both sides otherwise.
func checkPinSatisfies(name domain.InternedString, pinVersion, spec string) error {
	v, err := goversion.NewVersion(pinVersion)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConstraintConflict.Error())
		return zerr.With(err, "package", name.String())
	}

	constraint, err := parseConstraint(spec)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrConstraintConflict.Error())
		return zerr.With(err, "package", name.String())
	}

	if !constraint.Check(v) {
		return conflictErr(name, "=="+pinVersion, spec)
	}

	return nil
}

// parseConstraint converts a requirement spec into go-version
// constraints. The spec grammar uses "==" for exact pins where
// go-version expects "=".
func parseConstraint(spec string) (goversion.Constraints, error) {
	clauses := strings.Split(spec, ",")
	for i, clause := range clauses {
		clauses[i] = strings.Replace(strings.TrimSpace(clause), "==", "=", 1)
	}
	return goversion.NewConstraint(strings.Join(clauses, ","))
}
