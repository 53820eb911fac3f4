package edits_test

import (
	"testing"

	"bennypowers.dev/ngl10n/internal/bootstrap"
	"bennypowers.dev/ngl10n/internal/edits"
	"bennypowers.dev/ngl10n/internal/parser/js"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, path, source string) *js.Module {
	t.Helper()
	m, err := js.Parse(path, []byte(source))
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func TestBuild(t *testing.T) {
	m := parse(t, "main.ts", "import { AppModule } from './app';\nplatformBrowserDynamic().bootstrapModule(AppModule);\n")
	sites := bootstrap.FindBootstrapCalls(m, "AppModule")
	require.Len(t, sites, 1)

	anchor := edits.AnchorFor(m)
	got := edits.Build(sites[0], "de", anchor, edits.Options{})

	require.Len(t, got, 3)
	assert.Equal(t, `import __locale_de__ from "@angular/common/locales/de";`, got[0].String())
	assert.Equal(t, `import { registerLocaleData } from "@angular/common";`, got[1].String())
	assert.Equal(t, `registerLocaleData(__locale_de__);`, got[2].String())

	for i, e := range got {
		assert.Equal(t, i, e.Order)
		assert.Equal(t, anchor, e.Anchor, "every edit targets the module's first node")
	}
	assert.Equal(t, edits.Anchor{Offset: 0, Kind: "import_statement"}, anchor)

	assert.Equal(t, "import_statement", got[0].Node.Kind())
	assert.Equal(t, "import_statement", got[1].Node.Kind())
	assert.Equal(t, "expression_statement", got[2].Node.Kind())
}

func TestBuildOptions(t *testing.T) {
	got := edits.Build(bootstrap.MatchSite{}, "fr-CA", edits.Anchor{}, edits.Options{
		DataModule:     "@acme/i18n/locales",
		RegistryModule: "@acme/i18n",
		RegisterFunc:   "registerLocale",
	})

	require.Len(t, got, 3)
	assert.Equal(t, `import __locale_frCA__ from "@acme/i18n/locales/fr-CA";`, got[0].String())
	assert.Equal(t, `import { registerLocale } from "@acme/i18n";`, got[1].String())
	assert.Equal(t, `registerLocale(__locale_frCA__);`, got[2].String())
}

func TestLocaleIdentifier(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{locale: "de", want: "__locale_de__"},
		{locale: "en-US", want: "__locale_enUS__"},
		{locale: "zh-Hant-HK", want: "__locale_zhHantHK__"},
		{locale: "es-419", want: "__locale_es419__"},
		{locale: "en_GB", want: "__locale_en_GB__"},
		{locale: "x.y@z", want: "__locale_xyz__"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, edits.LocaleIdentifier(tt.locale))
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	first := edits.Build(bootstrap.MatchSite{}, "en-US", edits.Anchor{}, edits.Options{})
	second := edits.Build(bootstrap.MatchSite{}, "en-US", edits.Anchor{}, edits.Options{})

	require.Len(t, first, 3)
	require.Len(t, second, 3)
	for i := range first {
		assert.Equal(t, first[i].String(), second[i].String())
	}
}

func TestAnchorFor(t *testing.T) {
	t.Run("skips leading comments", func(t *testing.T) {
		source := "/* license */\nimport { A } from './a';\n"
		m := parse(t, "main.ts", source)
		anchor := edits.AnchorFor(m)
		assert.Equal(t, uint(len("/* license */\n")), anchor.Offset)
		assert.Equal(t, "import_statement", anchor.Kind)
	})

	t.Run("empty module anchors at end", func(t *testing.T) {
		source := "// empty\n"
		m := parse(t, "main.ts", source)
		assert.Equal(t, edits.Anchor{Offset: uint(len(source))}, edits.AnchorFor(m))
	})
}
