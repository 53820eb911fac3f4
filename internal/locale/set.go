package locale

import (
	"bennypowers.dev/ngl10n/internal/collections"
)

// DefaultDataModule is the module that per-locale data files are imported from
const DefaultDataModule = "@angular/common/locales"

// Set is an ordered, read-only snapshot of the locale ids that have data files.
// Order is the enumeration order and decides ties during normalized matching.
type Set struct {
	ids *collections.OrderedSet[string]
}

// NewSet builds a Set from locale ids, dropping duplicates and empty strings
func NewSet(ids ...string) *Set {
	s := collections.NewOrderedSet[string]()
	for _, id := range ids {
		if id != "" {
			s.Add(id)
		}
	}
	return &Set{ids: s}
}

// Has reports whether id is available verbatim
func (s *Set) Has(id string) bool {
	return s != nil && s.ids.Has(id)
}

// IDs returns the locale ids in enumeration order
func (s *Set) IDs() []string {
	if s == nil {
		return nil
	}
	return s.ids.Members()
}

// Len returns the number of available locales
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return s.ids.Len()
}
