package edits

import (
	"strconv"
	"strings"
)

// Node is a synthesized syntax node. Kinds use the tree-sitter names of
// the nodes they print as, so printed output re-parses to the same kinds.
type Node interface {
	Kind() string
	print(b *strings.Builder)
}

// Expression is a synthesized expression node
type Expression interface {
	Node
	expressionNode()
}

// Statement is a synthesized top-level statement
type Statement interface {
	Node
	statementNode()
}

// Identifier is a bare name
type Identifier struct {
	Name string
}

// StringLiteral is a double-quoted string
type StringLiteral struct {
	Value string
}

// CallExpression calls Callee with Arguments
type CallExpression struct {
	Callee    Expression
	Arguments []Expression
}

// ImportSpecifier is one entry of a named import list
type ImportSpecifier struct {
	Name  string
	Alias string // optional local name
}

// ImportDeclaration imports a default binding, named bindings, or both
type ImportDeclaration struct {
	Default *Identifier
	Named   []ImportSpecifier
	Source  StringLiteral
}

// ExpressionStatement is an expression terminated by a semicolon
type ExpressionStatement struct {
	Expression Expression
}

func (*Identifier) Kind() string          { return "identifier" }
func (*StringLiteral) Kind() string       { return "string" }
func (*CallExpression) Kind() string      { return "call_expression" }
func (*ImportDeclaration) Kind() string   { return "import_statement" }
func (*ExpressionStatement) Kind() string { return "expression_statement" }

func (*Identifier) expressionNode()     {}
func (*StringLiteral) expressionNode()  {}
func (*CallExpression) expressionNode() {}

func (*ImportDeclaration) statementNode()   {}
func (*ExpressionStatement) statementNode() {}

func (n *Identifier) print(b *strings.Builder) {
	b.WriteString(n.Name)
}

func (n *StringLiteral) print(b *strings.Builder) {
	b.WriteString(strconv.Quote(n.Value))
}

func (n *CallExpression) print(b *strings.Builder) {
	n.Callee.print(b)
	b.WriteByte('(')
	for i, arg := range n.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		arg.print(b)
	}
	b.WriteByte(')')
}

func (n *ImportDeclaration) print(b *strings.Builder) {
	b.WriteString("import ")
	if n.Default != nil {
		n.Default.print(b)
		if len(n.Named) > 0 {
			b.WriteString(", ")
		}
	}
	if len(n.Named) > 0 {
		b.WriteString("{ ")
		for i, spec := range n.Named {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(spec.Name)
			if spec.Alias != "" && spec.Alias != spec.Name {
				b.WriteString(" as ")
				b.WriteString(spec.Alias)
			}
		}
		b.WriteString(" }")
	}
	if n.Default != nil || len(n.Named) > 0 {
		b.WriteString(" from ")
	}
	n.Source.print(b)
	b.WriteByte(';')
}

func (n *ExpressionStatement) print(b *strings.Builder) {
	n.Expression.print(b)
	b.WriteByte(';')
}

// Print renders a node as source text
func Print(n Node) string {
	var b strings.Builder
	n.print(&b)
	return b.String()
}
