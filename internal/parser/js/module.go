package js

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// Module is a parsed JavaScript or TypeScript source file.
// Nodes obtained from a Module are only valid until Close is called.
type Module struct {
	// Path is the file path the source was read from, used in messages
	Path string
	// Source is the exact bytes that were parsed
	Source []byte
	// Dialect is the grammar the source was parsed with
	Dialect Dialect

	tree *sitter.Tree
}

// Root returns the program node
func (m *Module) Root() *sitter.Node {
	return m.tree.RootNode()
}

// Text returns the source text spanned by n
func (m *Module) Text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return string(m.Source[n.StartByte():n.EndByte()])
}

// HasErrors reports whether tree-sitter had to recover from syntax errors
func (m *Module) HasErrors() bool {
	return m.Root().HasError()
}

// FirstStatement returns the first top-level statement, skipping comments
// and a leading hashbang. It returns nil for a module with no statements.
func (m *Module) FirstStatement() *sitter.Node {
	root := m.Root()
	for i := uint(0); i < root.NamedChildCount(); i++ {
		child := root.NamedChild(i)
		switch child.Kind() {
		case KindComment, KindHashBangLine:
			continue
		}
		return child
	}
	return nil
}

// Walk visits every node in pre-order, in source order.
// Returning false from visit skips the node's children.
func (m *Module) Walk(visit func(n *sitter.Node) bool) {
	walkTree(m.Root(), visit)
}

func walkTree(node *sitter.Node, visit func(n *sitter.Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), visit)
	}
}

// Close frees the syntax tree
func (m *Module) Close() {
	if m.tree != nil {
		m.tree.Close()
		m.tree = nil
	}
}
