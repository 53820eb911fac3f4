// Package transform registers locale data in modules that bootstrap an
// application's root module. It ties together bootstrap call detection,
// locale resolution and edit construction, and applies the resulting
// edits for callers that want rewritten source rather than edit lists.
package transform

import (
	"fmt"

	"bennypowers.dev/ngl10n/internal/bootstrap"
	"bennypowers.dev/ngl10n/internal/edits"
	"bennypowers.dev/ngl10n/internal/locale"
	"bennypowers.dev/ngl10n/internal/log"
	"bennypowers.dev/ngl10n/internal/parser/js"
)

// EntryModule identifies the application's root module
type EntryModule struct {
	// Path is the module path declaring the class, e.g. "./app/app.module"
	Path string
	// ClassName is the exported class passed to bootstrapModule
	ClassName string
}

// Pass holds the collaborators of one locale registration pass.
// A Pass has no per-invocation state and may be reused concurrently.
type Pass struct {
	// Provider lists the available locale ids; it is consulted on every run
	Provider locale.Provider
	// Edits configures the synthesized imports and call
	Edits edits.Options
}

// Result describes one run of the pass
type Result struct {
	// Sites is the number of bootstrap calls found
	Sites int
	// Resolution is the resolved locale; zero when no site matched
	Resolution locale.Resolution
	// Edits are the insertions to apply, in order
	Edits []edits.InsertionEdit
}

// RegisterLocaleData returns the edits that register requested locale data
// ahead of the entry module's bootstrap call in m. It returns no edits when
// m does not bootstrap the entry module, and an *locale.UnknownLocaleError
// when it does but the locale cannot be resolved.
func RegisterLocaleData(m *js.Module, entry EntryModule, requested string, provider locale.Provider) ([]edits.InsertionEdit, error) {
	p := &Pass{Provider: provider}
	res, err := p.Run(m, entry, requested)
	if err != nil {
		return nil, err
	}
	return res.Edits, nil
}

// Run executes the pass over m. The locale is resolved at most once, and
// only when a bootstrap call was found; on failure no edits are returned.
func (p *Pass) Run(m *js.Module, entry EntryModule, requested string) (*Result, error) {
	sites := bootstrap.FindBootstrapCalls(m, entry.ClassName)
	if len(sites) == 0 {
		log.Debug("%s does not bootstrap %s from %q", m.Path, entry.ClassName, entry.Path)
		return &Result{}, nil
	}
	if p.Provider == nil {
		return nil, fmt.Errorf("no locale provider configured for %s", m.Path)
	}

	available, err := p.Provider.AvailableLocales()
	if err != nil {
		return nil, err
	}

	opts := p.Edits
	if opts.DataModule == "" {
		opts.DataModule = edits.DefaultDataModule
	}

	resolution, err := locale.ResolveDetailed(requested, available, opts.DataModule)
	if err != nil {
		return nil, err
	}

	anchor := edits.AnchorFor(m)
	result := &Result{Sites: len(sites), Resolution: resolution}
	for _, site := range sites {
		for _, e := range edits.Build(site, resolution.Locale, anchor, opts) {
			e.Order = len(result.Edits)
			result.Edits = append(result.Edits, e)
		}
	}

	log.Info("%s: registering locale %q (%s match) for %d bootstrap call(s)",
		m.Path, resolution.Locale, resolution.Stage, len(sites))
	return result, nil
}

// Rewrite parses source, runs the pass and applies its edits. When the
// module does not bootstrap the entry module the source is returned as-is.
func (p *Pass) Rewrite(path string, source []byte, entry EntryModule, requested string) ([]byte, *Result, error) {
	m, err := js.Parse(path, source)
	if err != nil {
		return nil, nil, err
	}
	defer m.Close()

	res, err := p.Run(m, entry, requested)
	if err != nil {
		return nil, nil, err
	}

	out, err := edits.Apply(source, res.Edits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to apply edits to %s: %w", path, err)
	}
	return out, res, nil
}
