package js_test

import (
	"testing"

	"bennypowers.dev/ngl10n/internal/parser/js"
	sitter "github.com/tree-sitter/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialectForPath(t *testing.T) {
	tests := []struct {
		path string
		want js.Dialect
	}{
		{path: "src/main.ts", want: js.DialectTypeScript},
		{path: "src/main.MTS", want: js.DialectTypeScript},
		{path: "src/main.cts", want: js.DialectTypeScript},
		{path: "src/main.tsx", want: js.DialectTSX},
		{path: "src/main.js", want: js.DialectJavaScript},
		{path: "src/main.jsx", want: js.DialectJavaScript},
		{path: "main", want: js.DialectJavaScript},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, js.DialectForPath(tt.path))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		source string
	}{
		{
			name:   "javascript",
			path:   "main.js",
			source: "platformBrowserDynamic().bootstrapModule(AppModule);\n",
		},
		{
			name:   "typescript with annotations",
			path:   "main.ts",
			source: "const x: number = 1;\nplatformBrowserDynamic().bootstrapModule(AppModule).catch((err: unknown) => console.error(err));\n",
		},
		{
			name:   "tsx",
			path:   "main.tsx",
			source: "const el = <div />;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := js.Parse(tt.path, []byte(tt.source))
			require.NoError(t, err)
			defer m.Close()

			assert.Equal(t, js.KindProgram, m.Root().Kind())
			assert.False(t, m.HasErrors(), "source should parse cleanly")
			assert.Equal(t, js.DialectForPath(tt.path), m.Dialect)
		})
	}
}

func TestParseRecoversFromSyntaxErrors(t *testing.T) {
	m, err := js.Parse("broken.js", []byte("platformBrowserDynamic().bootstrapModule(AppModule;\n"))
	require.NoError(t, err)
	defer m.Close()

	assert.True(t, m.HasErrors())
}

func TestFirstStatement(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		source   string
		wantText string
	}{
		{
			name:     "first import",
			path:     "main.ts",
			source:   "import { A } from './a';\nfoo();\n",
			wantText: "import { A } from './a';",
		},
		{
			name:     "skips comments",
			path:     "main.ts",
			source:   "// license\n/* block */\nfoo();\n",
			wantText: "foo();",
		},
		{
			name:     "skips hashbang",
			path:     "main.js",
			source:   "#!/usr/bin/env node\nfoo();\n",
			wantText: "foo();",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := js.Parse(tt.path, []byte(tt.source))
			require.NoError(t, err)
			defer m.Close()

			first := m.FirstStatement()
			require.NotNil(t, first)
			assert.Equal(t, tt.wantText, m.Text(first))
		})
	}

	t.Run("empty module", func(t *testing.T) {
		m, err := js.Parse("empty.ts", []byte("// nothing here\n"))
		require.NoError(t, err)
		defer m.Close()

		assert.Nil(t, m.FirstStatement())
	})
}

func TestWalkVisitsIdentifiersInSourceOrder(t *testing.T) {
	m, err := js.Parse("main.js", []byte("a(b, c.d(e));\n"))
	require.NoError(t, err)
	defer m.Close()

	var ids []string
	m.Walk(func(n *sitter.Node) bool {
		if n.Kind() == js.KindIdentifier {
			ids = append(ids, m.Text(n))
		}
		return true
	})
	assert.Equal(t, []string{"a", "b", "c", "e"}, ids)
}

func TestParserPoolReuse(t *testing.T) {
	for range 3 {
		p := js.AcquireParser(js.DialectTypeScript)
		m, err := p.Parse("main.ts", []byte("let a: string = 'x';\n"))
		require.NoError(t, err)
		assert.False(t, m.HasErrors())
		m.Close()
		js.ReleaseParser(p)
	}
}
