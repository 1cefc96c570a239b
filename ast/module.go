package ast

type (
	ImportDeclaration struct {
		Span
		Specifiers []Node
		Source     *StringLiteral
		Attributes []*ImportAttribute
	}

	// ImportSpecifier is `imported as local` inside braces.
	ImportSpecifier struct {
		Span
		Imported *Identifier
		Local    *Identifier
	}

	ImportDefaultSpecifier struct {
		Span
		Local *Identifier
	}

	ImportNamespaceSpecifier struct {
		Span
		Local *Identifier
	}

	ImportAttribute struct {
		Span
		Key   string
		Value *StringLiteral
	}

	// ExportNamedDeclaration is either `export <declaration>` or
	// `export { a as b } [from "m"]`.
	ExportNamedDeclaration struct {
		Span
		Declaration Stmt
		Specifiers  []*ExportSpecifier
		Source      *StringLiteral
		Attributes  []*ImportAttribute
	}

	ExportSpecifier struct {
		Span
		Local    *Identifier
		Exported *Identifier
	}

	// ExportDefaultDeclaration.Declaration is a *FunctionDeclaration, a
	// *ClassDeclaration or an Expr.
	ExportDefaultDeclaration struct {
		Span
		Declaration Node
	}

	// ExportAllDeclaration.Exported is nil for a plain `export * from`.
	ExportAllDeclaration struct {
		Span
		Exported   *Identifier
		Source     *StringLiteral
		Attributes []*ImportAttribute
	}
)

func (*ImportDeclaration) _stmt()        {}
func (*ExportNamedDeclaration) _stmt()   {}
func (*ExportDefaultDeclaration) _stmt() {}
func (*ExportAllDeclaration) _stmt()     {}
