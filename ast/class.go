package ast

type (
	// ClassLiteral is compiled as a function: the class body is its scope
	// and every free name used by members is captured through Closure.
	ClassLiteral struct {
		Span
		Name       *Identifier
		SuperClass Expr
		Body       []ClassElement
		Decorators []*Decorator
		Env
	}

	MethodDefinition struct {
		Span
		Key        Expr
		Computed   bool
		Static     bool
		Kind       PropertyKind
		Function   *FunctionLiteral
		Decorators []*Decorator
	}

	FieldDefinition struct {
		Span
		Key         Expr
		Computed    bool
		Static      bool
		Accessor    bool
		Initializer Expr
		Decorators  []*Decorator
	}

	ClassStaticBlock struct {
		Span
		Body []Stmt
		Env
	}

	Decorator struct {
		Span
		Expression Expr
	}
)

func (*MethodDefinition) _classElement() {}
func (*FieldDefinition) _classElement()  {}
func (*ClassStaticBlock) _classElement() {}

func (c *ClassLiteral) LexicalScope() *Scope     { return c.Scope }
func (c *ClassStaticBlock) LexicalScope() *Scope { return c.Scope }

// Constructor returns the class constructor method, if declared.
func (c *ClassLiteral) Constructor() *MethodDefinition {
	for _, el := range c.Body {
		if m, ok := el.(*MethodDefinition); ok && m.Kind == PropertyConstructor {
			return m
		}
	}
	return nil
}

// KeyName returns the static name of a non-computed member key: the
// identifier or string value, the number literal's source text, or the
// private name with its '#'.
func KeyName(key Expr) (string, bool) {
	switch k := key.(type) {
	case *Identifier:
		return k.Name, true
	case *StringLiteral:
		return k.Value, true
	case *NumberLiteral:
		return k.Raw, true
	case *PrivateName:
		return "#" + k.Name, true
	}
	return "", false
}
