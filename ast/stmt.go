package ast

import "github.com/t14raptor/go-neo/file"

type (
	Program struct {
		Span
		File        *file.File
		Interpreter string
		Directives  []*Directive
		Body        []Stmt
		Module      bool
		Scope       *Scope
	}

	// Directive is a string literal statement at the head of a program or
	// function body, such as "use strict". Value is the unquoted raw text.
	Directive struct {
		Span
		Value string
	}

	ExpressionStatement struct {
		Span
		Expression Expr
	}

	BlockStatement struct {
		Span
		Body  []Stmt
		Scope *Scope
	}

	EmptyStatement struct {
		Span
	}

	DebuggerStatement struct {
		Span
	}

	ReturnStatement struct {
		Span
		Argument Expr
	}

	LabelledStatement struct {
		Span
		Label *Identifier
		Body  Stmt
	}

	BreakStatement struct {
		Span
		Label *Identifier
	}

	ContinueStatement struct {
		Span
		Label *Identifier
	}

	IfStatement struct {
		Span
		Test       Expr
		Consequent Stmt
		Alternate  Stmt
	}

	SwitchStatement struct {
		Span
		Discriminant Expr
		Cases        []*CaseClause
		Scope        *Scope
	}

	// CaseClause.Test is nil for the default clause.
	CaseClause struct {
		Span
		Test       Expr
		Consequent []Stmt
	}

	ThrowStatement struct {
		Span
		Argument Expr
	}

	TryStatement struct {
		Span
		Block     *BlockStatement
		Handler   *CatchClause
		Finalizer *BlockStatement
	}

	// CatchClause.Param is nil for `catch { ... }`.
	CatchClause struct {
		Span
		Param Pattern
		Body  []Stmt
		Scope *Scope
	}

	WhileStatement struct {
		Span
		Test Expr
		Body Stmt
	}

	DoWhileStatement struct {
		Span
		Body Stmt
		Test Expr
	}

	// ForStatement.Init is a *VariableDeclaration, an Expr or nil.
	ForStatement struct {
		Span
		Init   Node
		Test   Expr
		Update Expr
		Body   Stmt
		Scope  *Scope
	}

	// ForInStatement.Left is a *VariableDeclaration with one declarator and
	// no initializer, or a Pattern.
	ForInStatement struct {
		Span
		Left  Node
		Right Expr
		Body  Stmt
		Scope *Scope
	}

	ForOfStatement struct {
		Span
		Left  Node
		Right Expr
		Body  Stmt
		Await bool
		Scope *Scope
	}

	VariableDeclaration struct {
		Span
		Kind DeclKind
		List []*VariableDeclarator
	}

	VariableDeclarator struct {
		Span
		Target      Pattern
		Initializer Expr
	}

	FunctionDeclaration struct {
		Span
		Function *FunctionLiteral
	}

	ClassDeclaration struct {
		Span
		Class *ClassLiteral
	}
)

func (*ExpressionStatement) _stmt() {}
func (*BlockStatement) _stmt()      {}
func (*EmptyStatement) _stmt()      {}
func (*DebuggerStatement) _stmt()   {}
func (*ReturnStatement) _stmt()     {}
func (*LabelledStatement) _stmt()   {}
func (*BreakStatement) _stmt()      {}
func (*ContinueStatement) _stmt()   {}
func (*IfStatement) _stmt()         {}
func (*SwitchStatement) _stmt()     {}
func (*ThrowStatement) _stmt()      {}
func (*TryStatement) _stmt()        {}
func (*WhileStatement) _stmt()      {}
func (*DoWhileStatement) _stmt()    {}
func (*ForStatement) _stmt()        {}
func (*ForInStatement) _stmt()      {}
func (*ForOfStatement) _stmt()      {}
func (*VariableDeclaration) _stmt() {}
func (*FunctionDeclaration) _stmt() {}
func (*ClassDeclaration) _stmt()    {}

func (p *Program) LexicalScope() *Scope         { return p.Scope }
func (b *BlockStatement) LexicalScope() *Scope  { return b.Scope }
func (s *SwitchStatement) LexicalScope() *Scope { return s.Scope }
func (c *CatchClause) LexicalScope() *Scope     { return c.Scope }
func (f *ForStatement) LexicalScope() *Scope    { return f.Scope }
func (f *ForInStatement) LexicalScope() *Scope  { return f.Scope }
func (f *ForOfStatement) LexicalScope() *Scope  { return f.Scope }
