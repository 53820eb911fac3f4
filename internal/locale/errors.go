package locale

import (
	"errors"
	"fmt"
)

// Sentinel errors for error type checking
var (
	// ErrUnknownLocale indicates no exact, normalized or parent match exists for a locale id
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrLocaleDataUnavailable indicates the available locale ids could not be enumerated
	ErrLocaleDataUnavailable = errors.New("locale data unavailable")
)

// UnknownLocaleError reports a locale id that has no locale data file
type UnknownLocaleError struct {
	// Requested is the locale id exactly as it was supplied
	Requested string
	// DataModule is the module prefix locale data files are imported from
	DataModule string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("unable to load the locale data file %q\nSuggestion: check that %q is a valid locale id with a matching file in %s/",
		e.DataModule+"/"+e.Requested, e.Requested, e.DataModule)
}

func (e *UnknownLocaleError) Unwrap() error {
	return ErrUnknownLocale
}

// NewUnknownLocaleError creates a new unknown locale error
func NewUnknownLocaleError(requested, dataModule string) error {
	if dataModule == "" {
		dataModule = DefaultDataModule
	}
	return &UnknownLocaleError{
		Requested:  requested,
		DataModule: dataModule,
	}
}

// LocaleDataUnavailableError reports a locale data source that could not be listed
type LocaleDataUnavailableError struct {
	Source string
	Err    error
}

func (e *LocaleDataUnavailableError) Error() string {
	return fmt.Sprintf("failed to list locale data in %s: %v\nSuggestion: install @angular/common or set locales_dir", e.Source, e.Err)
}

// Is lets errors.Is match both the sentinel and the underlying cause
func (e *LocaleDataUnavailableError) Is(target error) bool {
	return target == ErrLocaleDataUnavailable
}

func (e *LocaleDataUnavailableError) Unwrap() error {
	return e.Err
}

// NewLocaleDataUnavailableError creates a new locale data unavailable error
func NewLocaleDataUnavailableError(source string, err error) error {
	return &LocaleDataUnavailableError{
		Source: source,
		Err:    err,
	}
}
