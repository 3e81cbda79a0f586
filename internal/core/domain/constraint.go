package domain

// ConstraintSet maps package names to the version constraints pinned by
// a constraints file. It is immutable after construction and is only
// ever used to narrow ambiguous requirements, never to introduce new
// packages into a resolution pass. Safe to share across variant builds.
type ConstraintSet struct {
	pins map[InternedString]string
}

// NewConstraintSet creates a ConstraintSet from a name to constraint
// mapping. The input map is copied so later mutation of it cannot leak
// into the set.
func NewConstraintSet(pins map[string]string) ConstraintSet {
	copied := make(map[InternedString]string, len(pins))
	for name, spec := range pins {
		copied[NewInternedString(name)] = spec
	}
	return ConstraintSet{pins: copied}
}

// Lookup returns the pinned constraint for a package name, and whether
// the package is declared in the set.
func (c ConstraintSet) Lookup(name InternedString) (string, bool) {
	spec, ok := c.pins[name]
	return spec, ok
}

// Len returns the number of declared pins.
func (c ConstraintSet) Len() int {
	return len(c.pins)
}

// Merge returns a new ConstraintSet containing the receiver's pins with
// the override set's pins taking precedence on collision. Neither input
// is modified. Used to layer a variant's own constraints on top of the
// shared constraints file.
func (c ConstraintSet) Merge(override ConstraintSet) ConstraintSet {
	merged := make(map[InternedString]string, len(c.pins)+len(override.pins))
	for name, spec := range c.pins {
		merged[name] = spec
	}
	for name, spec := range override.pins {
		merged[name] = spec
	}
	return ConstraintSet{pins: merged}
}
