package transform

import (
	"fmt"
	"strings"

	"bennypowers.dev/ngl10n/internal/parser/js"
	"github.com/evanw/esbuild/pkg/api"
)

// Verify checks that source is syntactically valid for its dialect by
// running it through esbuild. Types are stripped, not checked.
func Verify(path string, source []byte) error {
	loader := api.LoaderJS
	switch js.DialectForPath(path) {
	case js.DialectTypeScript:
		loader = api.LoaderTS
	case js.DialectTSX:
		loader = api.LoaderTSX
	}
	if strings.HasSuffix(strings.ToLower(path), ".jsx") {
		loader = api.LoaderJSX
	}

	result := api.Transform(string(source), api.TransformOptions{
		Loader:     loader,
		Sourcefile: path,
		Format:     api.FormatESModule,
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return nil
	}

	var msgs []string
	for _, e := range result.Errors {
		if e.Location != nil {
			msgs = append(msgs, fmt.Sprintf("%s:%d:%d: %s", e.Location.File, e.Location.Line, e.Location.Column, e.Text))
		} else {
			msgs = append(msgs, e.Text)
		}
	}
	return fmt.Errorf("rewritten %s is not valid %s:\n%s", path, js.DialectForPath(path), strings.Join(msgs, "\n"))
}
