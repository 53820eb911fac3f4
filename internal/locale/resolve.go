package locale

import (
	"strings"

	"bennypowers.dev/ngl10n/internal/log"
)

// Stage names the resolution step that produced a locale
type Stage int

const (
	// StageExact means the requested id was available verbatim
	StageExact Stage = iota + 1
	// StageNormalized means a case- and separator-insensitive match was found
	StageNormalized
	// StageParent means the language subtag was available
	StageParent
)

func (s Stage) String() string {
	switch s {
	case StageExact:
		return "exact"
	case StageNormalized:
		return "normalized"
	case StageParent:
		return "parent"
	default:
		return "none"
	}
}

// Resolution is a resolved locale id and how it was found
type Resolution struct {
	Requested string
	Locale    string
	Stage     Stage
}

// Resolve maps a requested locale id onto an available one.
// See ResolveDetailed for the matching rules.
func Resolve(requested string, available *Set) (string, error) {
	r, err := ResolveDetailed(requested, available, DefaultDataModule)
	if err != nil {
		return "", err
	}
	return r.Locale, nil
}

// ResolveDetailed maps a requested locale id onto an available one, trying
// in order:
//
//  1. the id verbatim;
//  2. the first available id equal to it after lower-casing both and
//     replacing '_' with '-', returned in the available set's spelling;
//  3. the normalized language subtag (text before the first '-'), if
//     available verbatim.
//
// Anything else fails with an *UnknownLocaleError. dataModule only shapes
// the error message.
func ResolveDetailed(requested string, available *Set, dataModule string) (Resolution, error) {
	res := Resolution{Requested: requested}

	if available.Has(requested) {
		res.Locale, res.Stage = requested, StageExact
		return res, nil
	}

	normalized := Normalize(requested)
	for _, id := range available.IDs() {
		if strings.ToLower(id) == normalized {
			log.Debug("locale %q matched available locale %q", requested, id)
			res.Locale, res.Stage = id, StageNormalized
			return res, nil
		}
	}

	parent, _, _ := strings.Cut(normalized, "-")
	if parent != "" && available.Has(parent) {
		log.Info("no locale data for %q, falling back to parent locale %q", requested, parent)
		res.Locale, res.Stage = parent, StageParent
		return res, nil
	}

	return res, NewUnknownLocaleError(requested, dataModule)
}

// Normalize lower-cases a locale id and uses '-' as the only separator
func Normalize(id string) string {
	return strings.ReplaceAll(strings.ToLower(id), "_", "-")
}
