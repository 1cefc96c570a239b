// Package ast declares the syntax tree produced by the parser.
//
// Every node records the half-open byte range [Idx0, Idx1) of the source
// text it was parsed from. Nodes that open a lexical region carry the Scope
// built for them while parsing, and function-like nodes carry the list of
// identifiers they capture from enclosing functions.
package ast

// Idx is a byte offset into the source text.
type Idx int

type Node interface {
	// Idx0 returns the index of the first character belonging to the node.
	Idx0() Idx
	// Idx1 returns the index of the first character immediately after the node.
	Idx1() Idx
	// VisitChildrenWith calls v.Visit for each direct child in source order.
	VisitChildrenWith(v Visitor)
}

type (
	// All expression nodes implement the Expr interface.
	Expr interface {
		Node
		_expr()
	}

	// All statement and declaration nodes implement the Stmt interface.
	Stmt interface {
		Node
		_stmt()
	}

	// Pattern is anything that can appear on the receiving side of an
	// assignment or binding: identifiers, array and object patterns, and in
	// assignments also member expressions.
	Pattern interface {
		Node
		_pattern()
	}

	// Property is an element of an object literal.
	Property interface {
		Node
		_property()
	}

	// ClassElement is a member of a class body.
	ClassElement interface {
		Node
		_classElement()
	}
)

// Span is embedded by every node.
type Span struct {
	Start Idx
	End   Idx
}

func (s Span) Idx0() Idx { return s.Start }
func (s Span) Idx1() Idx { return s.End }

// Env holds the lexical state of a function-like node.
type Env struct {
	// Scope is the function scope holding parameters and body declarations.
	Scope *Scope
	// NameScope wraps Scope when the node binds its own name, as a named
	// function expression or a class does.
	NameScope *Scope
	// Closure lists the free identifiers captured from enclosing functions,
	// one entry per distinct name.
	Closure []*Identifier
}

func (e *Env) Environment() *Env { return e }

// FunctionLike is implemented by nodes that produce a closure at run time.
type FunctionLike interface {
	Node
	Environment() *Env
}

// ScopeOwner is implemented by nodes that open a lexical region.
type ScopeOwner interface {
	Node
	LexicalScope() *Scope
}

// ClosureNames returns the captured names in capture order.
func ClosureNames(fn FunctionLike) []string {
	env := fn.Environment()
	names := make([]string, len(env.Closure))
	for i, id := range env.Closure {
		names[i] = id.Name
	}
	return names
}
