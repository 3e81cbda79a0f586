package domain

// Manifest is the loaded build configuration: the project root and the
// set of declared variants. Read-only for the duration of a build.
type Manifest struct {
	// Root is the directory containing the manifest file. All relative
	// paths in the manifest are resolved against it.
	Root string

	// Variants are the declared build variants, sorted by ID for
	// deterministic iteration.
	Variants []*BuildVariant
}

// Variant returns the variant with the given ID, if declared.
func (m *Manifest) Variant(id string) (*BuildVariant, bool) {
	name := NewInternedString(id)
	for _, v := range m.Variants {
		if v.ID == name {
			return v, true
		}
	}
	return nil, false
}
