// Package bootstrap finds the calls that bootstrap an application's root
// module, i.e. expressions shaped like
//
//	platformBrowserDynamic().bootstrapModule(AppModule)
//
// Matching is purely structural: any call expression may obtain the
// platform, and only the method name and argument position are fixed.
package bootstrap

import (
	"bennypowers.dev/ngl10n/internal/log"
	"bennypowers.dev/ngl10n/internal/parser/js"
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// MethodName is the member called on the platform to bootstrap a module
const MethodName = "bootstrapModule"

// MatchSite is a located bootstrap call. Its nodes belong to the module's
// tree and are only valid until the module is closed.
type MatchSite struct {
	// Call is the `….bootstrapModule(…)` call expression
	Call *sitter.Node
	// Identifier is the class reference passed to the call
	Identifier *sitter.Node
}

// FindBootstrapCalls returns every bootstrap call in m that passes className
// as an argument, in source order. A module without such a call yields nil.
func FindBootstrapCalls(m *js.Module, className string) []MatchSite {
	if m == nil || className == "" {
		return nil
	}

	var sites []MatchSite
	for _, id := range findIdentifiers(m, className) {
		call := bootstrapCallFor(m, id)
		if call == nil {
			continue
		}
		log.Debug("%s: %s bootstrapped at %d:%d", m.Path, className,
			call.StartPosition().Row+1, call.StartPosition().Column+1)
		sites = append(sites, MatchSite{Call: call, Identifier: id})
	}
	return sites
}

// findIdentifiers collects identifier nodes whose text is name, in pre-order
func findIdentifiers(m *js.Module, name string) []*sitter.Node {
	var ids []*sitter.Node
	m.Walk(func(n *sitter.Node) bool {
		if n.Kind() == js.KindIdentifier && m.Text(n) == name {
			ids = append(ids, n)
		}
		return true
	})
	return ids
}

// bootstrapCallFor returns the call expression when id is an argument of
// `<call>.bootstrapModule(…)`, or nil for any other shape.
func bootstrapCallFor(m *js.Module, id *sitter.Node) *sitter.Node {
	args := id.Parent()
	if args == nil || args.Kind() != js.KindArguments {
		return nil
	}

	call := args.Parent()
	if call == nil || call.Kind() != js.KindCallExpression {
		return nil
	}
	// Type arguments and template strings can also hang off a call;
	// the identifier must sit in the argument list itself.
	callArgs := call.ChildByFieldName("arguments")
	if callArgs == nil || callArgs.Id() != args.Id() {
		return nil
	}

	callee := call.ChildByFieldName("function")
	if callee == nil || callee.Kind() != js.KindMemberExpression {
		return nil
	}

	property := callee.ChildByFieldName("property")
	if property == nil || m.Text(property) != MethodName {
		return nil
	}

	object := callee.ChildByFieldName("object")
	if object == nil || object.Kind() != js.KindCallExpression {
		return nil
	}

	return call
}
