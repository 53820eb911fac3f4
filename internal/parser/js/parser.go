package js

import (
	"fmt"
	"sync"

	"bennypowers.dev/ngl10n/internal/log"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

var languages = map[Dialect]*sitter.Language{
	DialectJavaScript: sitter.NewLanguage(tree_sitter_javascript.Language()),
	DialectTypeScript: sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()),
	DialectTSX:        sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()),
}

// Parser wraps a tree-sitter parser bound to one dialect
type Parser struct {
	parser  *sitter.Parser
	dialect Dialect
}

// parserPools holds one pool of reusable parsers per dialect
var parserPools = map[Dialect]*sync.Pool{
	DialectJavaScript: newPool(DialectJavaScript),
	DialectTypeScript: newPool(DialectTypeScript),
	DialectTSX:        newPool(DialectTSX),
}

func newPool(dialect Dialect) *sync.Pool {
	return &sync.Pool{
		New: func() any {
			parser := sitter.NewParser()
			if err := parser.SetLanguage(languages[dialect]); err != nil {
				panic(fmt.Sprintf("failed to set %s language: %v", dialect, err))
			}
			return &Parser{parser: parser, dialect: dialect}
		},
	}
}

// AcquireParser gets a parser for the dialect from the pool
func AcquireParser(dialect Dialect) *Parser {
	pool, ok := parserPools[dialect]
	if !ok {
		pool = parserPools[DialectJavaScript]
	}
	p := pool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to its pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPools[p.dialect].Put(p)
	}
}

// Close releases the underlying tree-sitter parser
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// Parse parses source into a Module. The caller must Close the module.
// Syntax errors do not fail the parse: tree-sitter recovers and the
// module reports them through HasErrors.
func (p *Parser) Parse(path string, source []byte) (*Module, error) {
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("failed to parse %s as %s", path, p.dialect)
	}

	m := &Module{
		Path:    path,
		Source:  source,
		Dialect: p.dialect,
		tree:    tree,
	}
	if m.HasErrors() {
		log.Warn("%s contains syntax errors; matching on the recovered tree", path)
	}
	return m, nil
}

// Parse acquires a pooled parser for the path's dialect and parses source with it
func Parse(path string, source []byte) (*Module, error) {
	p := AcquireParser(DialectForPath(path))
	defer ReleaseParser(p)
	return p.Parse(path, source)
}
