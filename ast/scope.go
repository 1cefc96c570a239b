package ast

import "golang.org/x/exp/slices"

type ScopeKind int

const (
	ScopeBlock ScopeKind = iota
	ScopeFunction
)

func (k ScopeKind) String() string {
	if k == ScopeFunction {
		return "function"
	}
	return "block"
}

// DeclKind is the declaration form that introduced a binding.
type DeclKind int

const (
	DeclVar DeclKind = iota
	DeclLet
	DeclConst
	DeclUsing
	DeclAwaitUsing
	DeclFunction
	DeclParam
	DeclClass
	DeclImport
)

var declKindNames = [...]string{
	DeclVar:        "var",
	DeclLet:        "let",
	DeclConst:      "const",
	DeclUsing:      "using",
	DeclAwaitUsing: "await using",
	DeclFunction:   "function",
	DeclParam:      "param",
	DeclClass:      "class",
	DeclImport:     "import",
}

func (k DeclKind) String() string {
	if int(k) < len(declKindNames) {
		return declKindNames[k]
	}
	return "unknown"
}

// Lexical reports whether the binding is block scoped and may not be
// redeclared.
func (k DeclKind) Lexical() bool {
	switch k {
	case DeclLet, DeclConst, DeclUsing, DeclAwaitUsing, DeclClass, DeclImport:
		return true
	}
	return false
}

// Variable is one binding declared in a scope. Node is the declaring
// identifier, or the *FunctionDeclaration for hoisted functions.
type Variable struct {
	Name string
	Node Node
	Kind DeclKind
}

type Scope struct {
	Kind      ScopeKind
	Generator bool
	Async     bool
	Variables []*Variable
	Parent    *Scope
}

// Lookup finds name among the variables declared directly in s.
func (s *Scope) Lookup(name string) *Variable {
	i := slices.IndexFunc(s.Variables, func(v *Variable) bool { return v.Name == name })
	if i < 0 {
		return nil
	}
	return s.Variables[i]
}

// Function returns the nearest enclosing function scope, s included.
func (s *Scope) Function() *Scope {
	for sc := s; sc != nil; sc = sc.Parent {
		if sc.Kind == ScopeFunction {
			return sc
		}
	}
	return nil
}

// RedeclarationError is returned by ScopeTable.Declare.
type RedeclarationError struct {
	Name string
}

func (e *RedeclarationError) Error() string {
	return "Identifier '" + e.Name + "' has already been declared"
}

// ScopeTable is the stack of scopes live during one parse. It must not be
// shared between parses.
type ScopeTable struct {
	current *Scope
}

// Push opens a child of the current scope and makes it current.
func (t *ScopeTable) Push(kind ScopeKind, generator, async bool) *Scope {
	s := &Scope{
		Kind:      kind,
		Generator: generator,
		Async:     async,
		Parent:    t.current,
	}
	t.current = s
	return s
}

// Pop closes s, which must be the current scope, and hands it back for
// attachment to the node that owns it.
func (t *ScopeTable) Pop(s *Scope) *Scope {
	if s != t.current {
		panic("ast: scope popped out of order")
	}
	t.current = s.Parent
	return s
}

// Discard abandons s after a failed speculative parse. Every scope pushed
// after s is dropped with it.
func (t *ScopeTable) Discard(s *Scope) {
	t.current = s.Parent
	s.Variables = nil
	s.Parent = nil
}

// SetCurrent makes s current without pushing and returns the previous
// current scope so the caller can restore it.
func (t *ScopeTable) SetCurrent(s *Scope) *Scope {
	prev := t.current
	t.current = s
	return prev
}

func (t *ScopeTable) Current() *Scope { return t.current }

// IsGenerator reports whether the nearest function scope is a generator.
func (t *ScopeTable) IsGenerator() bool {
	fn := t.current.Function()
	return fn != nil && fn.Generator
}

// IsAsync reports whether the nearest function scope is async.
func (t *ScopeTable) IsAsync() bool {
	fn := t.current.Function()
	return fn != nil && fn.Async
}

// Declare registers name in the current scope. Var declarations are hoisted
// to the nearest function scope and parameters always land there; all other
// kinds stay in the current scope.
func (t *ScopeTable) Declare(name string, node Node, kind DeclKind) error {
	target := t.current
	if kind == DeclVar || kind == DeclParam {
		// A var may not cross a lexical binding of the same name on its
		// way up.
		for sc := t.current; sc != nil; sc = sc.Parent {
			if v := sc.Lookup(name); v != nil && v.Kind.Lexical() {
				return &RedeclarationError{Name: name}
			}
			if sc.Kind == ScopeFunction {
				target = sc
				break
			}
		}
	}
	if target == nil {
		panic("ast: declaration outside of any scope")
	}

	existing := target.Lookup(name)
	if existing == nil {
		target.Variables = append(target.Variables, &Variable{Name: name, Node: node, Kind: kind})
		return nil
	}
	if kind.Lexical() || existing.Kind.Lexical() {
		return &RedeclarationError{Name: name}
	}
	if kind == DeclFunction {
		existing.Kind = DeclFunction
		existing.Node = node
	}
	return nil
}
