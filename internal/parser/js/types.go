package js

import (
	"path/filepath"
	"strings"
)

// Dialect selects the tree-sitter grammar used for a module
type Dialect int

const (
	// DialectJavaScript covers .js, .mjs, .cjs and .jsx sources
	DialectJavaScript Dialect = iota
	// DialectTypeScript covers .ts, .mts and .cts sources
	DialectTypeScript
	// DialectTSX covers .tsx sources
	DialectTSX
)

func (d Dialect) String() string {
	switch d {
	case DialectTypeScript:
		return "typescript"
	case DialectTSX:
		return "tsx"
	default:
		return "javascript"
	}
}

// DialectForPath picks a dialect from the file extension.
// Unknown extensions are parsed as JavaScript.
func DialectForPath(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return DialectTypeScript
	case ".tsx":
		return DialectTSX
	default:
		return DialectJavaScript
	}
}

// Node kinds shared by the JavaScript and TypeScript grammars
const (
	KindProgram          = "program"
	KindIdentifier       = "identifier"
	KindCallExpression   = "call_expression"
	KindMemberExpression = "member_expression"
	KindArguments        = "arguments"
	KindComment          = "comment"
	KindHashBangLine     = "hash_bang_line"
)
