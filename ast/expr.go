package ast

import (
	"math/big"

	"github.com/t14raptor/go-neo/token"
)

type (
	Identifier struct {
		Span
		Name string
	}

	// PrivateName is a #name class member reference. Name excludes the '#'.
	PrivateName struct {
		Span
		Name string
	}

	NullLiteral struct {
		Span
	}

	BooleanLiteral struct {
		Span
		Value bool
	}

	NumberLiteral struct {
		Span
		Raw   string
		Value float64
	}

	BigIntLiteral struct {
		Span
		Raw   string
		Value *big.Int
	}

	StringLiteral struct {
		Span
		Raw   string
		Value string
	}

	RegExpLiteral struct {
		Span
		Raw     string
		Pattern string
		Flags   string
	}

	TemplateLiteral struct {
		Span
		Quasis      []*TemplateElement
		Expressions []Expr
	}

	TemplateElement struct {
		Span
		Raw    string
		Cooked string
	}

	TaggedTemplate struct {
		Span
		Tag   Expr
		Quasi *TemplateLiteral
	}

	ThisExpression struct {
		Span
	}

	SuperExpression struct {
		Span
	}

	// ArrayLiteral elements are nil for holes.
	ArrayLiteral struct {
		Span
		Elements []Expr
	}

	ObjectLiteral struct {
		Span
		Properties []Property
	}

	PropertyKeyed struct {
		Span
		Key      Expr
		Computed bool
		Kind     PropertyKind
		Value    Expr
	}

	PropertyShort struct {
		Span
		Name *Identifier
	}

	SpreadElement struct {
		Span
		Argument Expr
	}

	ParenthesizedExpression struct {
		Span
		Expression Expr
	}

	CallExpression struct {
		Span
		Callee    Expr
		Arguments []Expr
		Optional  bool
	}

	NewExpression struct {
		Span
		Callee    Expr
		Arguments []Expr
	}

	// MemberExpression.Property is an *Identifier or *PrivateName unless
	// Computed is set.
	MemberExpression struct {
		Span
		Object   Expr
		Property Expr
		Computed bool
		Optional bool
	}

	// MetaProperty is new.target or import.meta.
	MetaProperty struct {
		Span
		Meta     *Identifier
		Property *Identifier
	}

	ImportExpression struct {
		Span
		Source  Expr
		Options Expr
	}

	UnaryExpression struct {
		Span
		Operator token.Token
		Operand  Expr
	}

	AwaitExpression struct {
		Span
		Argument Expr
	}

	UpdateExpression struct {
		Span
		Operator token.Token
		Operand  Expr
		Prefix   bool
	}

	// BinaryExpression covers arithmetic, relational, logical and comma
	// operators. Comma sequences nest to the right.
	BinaryExpression struct {
		Span
		Operator token.Token
		Left     Expr
		Right    Expr
	}

	ConditionalExpression struct {
		Span
		Test       Expr
		Consequent Expr
		Alternate  Expr
	}

	AssignExpression struct {
		Span
		Operator token.Token
		Left     Pattern
		Right    Expr
	}

	YieldExpression struct {
		Span
		Argument Expr
		Delegate bool
	}

	FunctionLiteral struct {
		Span
		Name      *Identifier
		Params    *ParameterList
		Body      *FunctionBody
		Async     bool
		Generator bool
		Env
	}

	// ArrowFunction has exactly one of Body and Expression set.
	ArrowFunction struct {
		Span
		Params     *ParameterList
		Body       *FunctionBody
		Expression Expr
		Async      bool
		Env
	}

	FunctionBody struct {
		Span
		Directives []*Directive
		Body       []Stmt
	}

	ParameterList struct {
		Span
		List []*BindingElement
		Rest Pattern
	}

	// BindingElement is a target with an optional default, used for
	// parameters and array pattern elements.
	BindingElement struct {
		Span
		Target  Pattern
		Default Expr
	}

	// ArrayPattern elements are nil for holes.
	ArrayPattern struct {
		Span
		Elements []*BindingElement
		Rest     Pattern
	}

	ObjectPattern struct {
		Span
		Properties []*PatternProperty
		Rest       Pattern
	}

	PatternProperty struct {
		Span
		Key       Expr
		Computed  bool
		Value     Pattern
		Default   Expr
		Shorthand bool
	}
)

// PropertyKind distinguishes data properties from methods and accessors.
type PropertyKind int

const (
	PropertyValue PropertyKind = iota
	PropertyMethod
	PropertyGet
	PropertySet
	PropertyConstructor
)

func (k PropertyKind) String() string {
	switch k {
	case PropertyMethod:
		return "method"
	case PropertyGet:
		return "get"
	case PropertySet:
		return "set"
	case PropertyConstructor:
		return "constructor"
	}
	return "value"
}

func (*Identifier) _expr()              {}
func (*PrivateName) _expr()             {}
func (*NullLiteral) _expr()             {}
func (*BooleanLiteral) _expr()          {}
func (*NumberLiteral) _expr()           {}
func (*BigIntLiteral) _expr()           {}
func (*StringLiteral) _expr()           {}
func (*RegExpLiteral) _expr()           {}
func (*TemplateLiteral) _expr()         {}
func (*TaggedTemplate) _expr()          {}
func (*ThisExpression) _expr()          {}
func (*SuperExpression) _expr()         {}
func (*ArrayLiteral) _expr()            {}
func (*ObjectLiteral) _expr()           {}
func (*SpreadElement) _expr()           {}
func (*ParenthesizedExpression) _expr() {}
func (*CallExpression) _expr()          {}
func (*NewExpression) _expr()           {}
func (*MemberExpression) _expr()        {}
func (*MetaProperty) _expr()            {}
func (*ImportExpression) _expr()        {}
func (*UnaryExpression) _expr()         {}
func (*AwaitExpression) _expr()         {}
func (*UpdateExpression) _expr()        {}
func (*BinaryExpression) _expr()        {}
func (*ConditionalExpression) _expr()   {}
func (*AssignExpression) _expr()        {}
func (*YieldExpression) _expr()         {}
func (*FunctionLiteral) _expr()         {}
func (*ArrowFunction) _expr()           {}
func (*ClassLiteral) _expr()            {}

func (*Identifier) _pattern()       {}
func (*MemberExpression) _pattern() {}
func (*ArrayPattern) _pattern()     {}
func (*ObjectPattern) _pattern()    {}

func (*PropertyKeyed) _property() {}
func (*PropertyShort) _property() {}
func (*SpreadElement) _property() {}

func (f *FunctionLiteral) LexicalScope() *Scope { return f.Scope }
func (a *ArrowFunction) LexicalScope() *Scope   { return a.Scope }

// IsOptionalChain reports whether e is a member or call expression whose
// chain contains a '?.' link.
func IsOptionalChain(e Expr) bool {
	for {
		switch n := e.(type) {
		case *MemberExpression:
			if n.Optional {
				return true
			}
			e = n.Object
		case *CallExpression:
			if n.Optional {
				return true
			}
			e = n.Callee
		default:
			return false
		}
	}
}
