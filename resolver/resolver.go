// Package resolver computes the closure list of function-like nodes: the
// identifiers a function reads or writes that are not bound inside it.
package resolver

import (
	"golang.org/x/exp/slices"

	"github.com/t14raptor/go-neo/ast"
)

// Resolver walks one function-like node, tracking the lexical scope of each
// position it visits.
type Resolver struct {
	current *ast.Scope
	closure []*ast.Identifier
}

// ResolveFunction fills fn's closure list. Nested function-like nodes must
// already be resolved: their closures are folded into fn's instead of
// walking their bodies again. The parser calls this as each function-like
// node is completed, innermost first.
func ResolveFunction(fn ast.FunctionLike) {
	env := fn.Environment()
	r := &Resolver{current: env.Scope}

	switch n := fn.(type) {
	case *ast.FunctionLiteral:
		r.Visit(n.Params)
		r.Visit(n.Body)
	case *ast.ArrowFunction:
		r.Visit(n.Params)
		if n.Body != nil {
			r.Visit(n.Body)
		} else {
			r.Visit(n.Expression)
		}
	case *ast.ClassLiteral:
		// Heritage and class decorators are evaluated outside the class
		// body; the enclosing function picks them up.
		for _, el := range n.Body {
			r.visitClassElement(el)
		}
	case *ast.ClassStaticBlock:
		for _, s := range n.Body {
			r.Visit(s)
		}
	}
	env.Closure = r.closure
}

// ResolveProgram resolves every function-like node under p, innermost
// first. Trees produced by the parser are already resolved; this is for
// trees built or rewritten by hand.
func ResolveProgram(p *ast.Program) {
	var post ast.VisitorFunc
	post = func(n ast.Node) {
		n.VisitChildrenWith(post)
		if fn, ok := n.(ast.FunctionLike); ok {
			ResolveFunction(fn)
		}
	}
	p.VisitChildrenWith(post)
}

// Visit implements ast.Visitor.
func (r *Resolver) Visit(n ast.Node) {
	switch n := n.(type) {
	case *ast.Identifier:
		r.reference(n)

	case *ast.FunctionLiteral, *ast.ArrowFunction, *ast.ClassStaticBlock:
		r.capture(n.(ast.FunctionLike))
	case *ast.ClassLiteral:
		r.visitClassHead(n)
		r.capture(n)

	case *ast.MemberExpression:
		r.Visit(n.Object)
		if n.Computed {
			r.Visit(n.Property)
		}
	case *ast.PropertyKeyed:
		if n.Computed {
			r.Visit(n.Key)
		}
		r.Visit(n.Value)
	case *ast.PatternProperty:
		if n.Computed {
			r.Visit(n.Key)
		}
		r.Visit(n.Value)
		if n.Default != nil {
			r.Visit(n.Default)
		}
	case *ast.MetaProperty:

	case *ast.LabelledStatement:
		r.Visit(n.Body)
	case *ast.BreakStatement, *ast.ContinueStatement:

	case *ast.FunctionDeclaration:
		r.capture(n.Function)
	case *ast.ClassDeclaration:
		r.Visit(n.Class)

	case *ast.SwitchStatement:
		r.Visit(n.Discriminant)
		prev := r.current
		r.current = n.Scope
		for _, c := range n.Cases {
			r.Visit(c)
		}
		r.current = prev

	case *ast.ImportDeclaration:
	case *ast.ExportSpecifier:
		r.Visit(n.Local)
	case *ast.ExportAllDeclaration:

	case ast.ScopeOwner:
		prev := r.current
		if s := n.LexicalScope(); s != nil {
			r.current = s
		}
		n.VisitChildrenWith(r)
		r.current = prev

	default:
		n.VisitChildrenWith(r)
	}
}

// visitClassHead walks the parts of a class evaluated in the enclosing
// scope. A class name, when present, is already visible to the heritage.
func (r *Resolver) visitClassHead(n *ast.ClassLiteral) {
	prev := r.current
	if n.NameScope != nil {
		r.current = n.NameScope
	}
	for _, d := range n.Decorators {
		r.Visit(d)
	}
	if n.SuperClass != nil {
		r.Visit(n.SuperClass)
	}
	r.current = prev
}

func (r *Resolver) visitClassElement(el ast.ClassElement) {
	switch el := el.(type) {
	case *ast.MethodDefinition:
		for _, d := range el.Decorators {
			r.Visit(d)
		}
		if el.Computed {
			r.Visit(el.Key)
		}
		r.capture(el.Function)
	case *ast.FieldDefinition:
		for _, d := range el.Decorators {
			r.Visit(d)
		}
		if el.Computed {
			r.Visit(el.Key)
		}
		if el.Initializer != nil {
			r.Visit(el.Initializer)
		}
	case *ast.ClassStaticBlock:
		r.capture(el)
	}
}

// capture folds the closure of a nested function-like node into the
// current one. Each captured name is looked up from the scope the nested
// node was created in.
func (r *Resolver) capture(fn ast.FunctionLike) {
	env := fn.Environment()
	prev := r.current
	switch {
	case env.NameScope != nil:
		r.current = env.NameScope
	case env.Scope != nil:
		r.current = env.Scope.Parent
	}
	for _, id := range env.Closure {
		r.reference(id)
	}
	r.current = prev
}

// reference records id as captured unless it is bound between the current
// scope and the nearest function scope, inclusive.
func (r *Resolver) reference(id *ast.Identifier) {
	if id.Name == "arguments" {
		return
	}
	for s := r.current; s != nil; s = s.Parent {
		if s.Lookup(id.Name) != nil {
			return
		}
		if s.Kind == ast.ScopeFunction {
			break
		}
	}
	if slices.IndexFunc(r.closure, func(c *ast.Identifier) bool { return c.Name == id.Name }) >= 0 {
		return
	}
	r.closure = append(r.closure, id)
}
