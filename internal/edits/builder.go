package edits

import (
	"strings"

	"bennypowers.dev/ngl10n/internal/bootstrap"
	"bennypowers.dev/ngl10n/internal/locale"
	"bennypowers.dev/ngl10n/internal/log"
	"bennypowers.dev/ngl10n/internal/parser/js"
)

// Defaults for the modules and function the synthesized code refers to
const (
	DefaultDataModule     = locale.DefaultDataModule
	DefaultRegistryModule = "@angular/common"
	DefaultRegisterFunc   = "registerLocaleData"
)

// Anchor is the position synthesized statements are inserted before
type Anchor struct {
	// Offset is the byte offset in the original source
	Offset uint
	// Kind is the kind of the anchor node, empty at end of file
	Kind string
}

// AnchorFor returns the module's first statement as an anchor, or the end
// of the source when the module has no statements.
func AnchorFor(m *js.Module) Anchor {
	if first := m.FirstStatement(); first != nil {
		return Anchor{Offset: first.StartByte(), Kind: first.Kind()}
	}
	return Anchor{Offset: uint(len(m.Source))}
}

// InsertionEdit inserts Node before Anchor. Edits sharing an anchor are
// applied in ascending Order.
type InsertionEdit struct {
	Anchor Anchor
	Node   Statement
	Order  int
}

// String renders the synthesized node
func (e InsertionEdit) String() string {
	return Print(e.Node)
}

// Options names the modules and registration function used by Build
type Options struct {
	DataModule     string
	RegistryModule string
	RegisterFunc   string
}

func (o Options) withDefaults() Options {
	if o.DataModule == "" {
		o.DataModule = DefaultDataModule
	}
	if o.RegistryModule == "" {
		o.RegistryModule = DefaultRegistryModule
	}
	if o.RegisterFunc == "" {
		o.RegisterFunc = DefaultRegisterFunc
	}
	return o
}

// Build returns the three edits registering resolvedLocale before anchor:
// the locale data import, the registration function import, and the
// registration call. Orders are 0, 1 and 2. resolvedLocale is trusted to
// name an available data file.
func Build(site bootstrap.MatchSite, resolvedLocale string, anchor Anchor, opts Options) []InsertionEdit {
	opts = opts.withDefaults()

	localeID := &Identifier{Name: LocaleIdentifier(resolvedLocale)}
	regID := &Identifier{Name: opts.RegisterFunc}

	if site.Call != nil {
		log.Debug("registering %q for bootstrap call at byte %d", resolvedLocale, site.Call.StartByte())
	}

	return []InsertionEdit{
		{
			Anchor: anchor,
			Order:  0,
			Node: &ImportDeclaration{
				Default: localeID,
				Source:  StringLiteral{Value: opts.DataModule + "/" + resolvedLocale},
			},
		},
		{
			Anchor: anchor,
			Order:  1,
			Node: &ImportDeclaration{
				Named:  []ImportSpecifier{{Name: opts.RegisterFunc}},
				Source: StringLiteral{Value: opts.RegistryModule},
			},
		},
		{
			Anchor: anchor,
			Order:  2,
			Node: &ExpressionStatement{
				Expression: &CallExpression{
					Callee:    regID,
					Arguments: []Expression{localeID},
				},
			},
		},
	}
}

// LocaleIdentifier derives the binding name for a locale's data import.
// Characters that cannot appear in an identifier are dropped, so
// "en-US" becomes __locale_enUS__.
func LocaleIdentifier(localeID string) string {
	var b strings.Builder
	b.WriteString("__locale_")
	for _, r := range localeID {
		if isIdentifierRune(r) {
			b.WriteRune(r)
		}
	}
	b.WriteString("__")
	return b.String()
}

func isIdentifierRune(r rune) bool {
	return r == '_' || r == '$' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}
