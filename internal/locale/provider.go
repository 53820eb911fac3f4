package locale

import (
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches locale data files directly inside a locales directory.
// Older packages ship .js files, newer ones .mjs.
const DefaultPattern = "*.{js,mjs}"

// Provider enumerates the locale ids that currently have data files.
// Implementations must not cache between calls.
type Provider interface {
	AvailableLocales() (*Set, error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func() (*Set, error)

// AvailableLocales calls f
func (f ProviderFunc) AvailableLocales() (*Set, error) {
	return f()
}

// Static returns a Provider that always reports ids
func Static(ids ...string) Provider {
	return ProviderFunc(func() (*Set, error) {
		return NewSet(ids...), nil
	})
}

// DirProvider lists locale data files in a directory. Artifact names map
// one-to-one onto locale ids once the extension is stripped.
type DirProvider struct {
	// FS is the locales directory
	FS fs.FS
	// Name describes FS in error messages
	Name string
	// Pattern is a doublestar glob relative to FS; DefaultPattern when empty
	Pattern string
}

// NewDirProvider creates a DirProvider for a directory on disk
func NewDirProvider(dir string) *DirProvider {
	return &DirProvider{FS: os.DirFS(dir), Name: dir}
}

// AvailableLocales re-reads the directory and returns its locale ids sorted lexically
func (p *DirProvider) AvailableLocales() (*Set, error) {
	pattern := p.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}

	if _, err := fs.Stat(p.FS, "."); err != nil {
		return nil, NewLocaleDataUnavailableError(p.Name, err)
	}

	matches, err := doublestar.Glob(p.FS, pattern, doublestar.WithFilesOnly(), doublestar.WithFailOnIOErrors())
	if err != nil {
		return nil, NewLocaleDataUnavailableError(p.Name, err)
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, localeIDFromFile(m))
	}
	slices.Sort(ids)
	return NewSet(ids...), nil
}

// localeIDFromFile strips directories and the extension from a data file path
func localeIDFromFile(name string) string {
	base := path.Base(name)
	return strings.TrimSuffix(base, path.Ext(base))
}
