package compiler

import "github.com/t14raptor/go-neo/ast"

// importSource pushes the namespace of the module named by source.
func (w *writer) importSource(source *ast.StringLiteral, attributes []*ast.ImportAttribute) {
	w.opString(IMPORT, source.Value)
	for _, a := range attributes {
		w.pushString(a.Key)
		w.pushString(a.Value.Value)
		w.op(ASSERT)
	}
}

func (w *writer) importDeclaration(n *ast.ImportDeclaration) {
	w.importSource(n.Source, n.Attributes)
	for _, spec := range n.Specifiers {
		w.pick(1)
		switch s := spec.(type) {
		case *ast.ImportSpecifier:
			w.pushString(s.Imported.Name)
			w.op(GET_FIELD)
			w.opString(STORE, s.Local.Name)
		case *ast.ImportDefaultSpecifier:
			w.pushString("default")
			w.op(GET_FIELD)
			w.opString(STORE, s.Local.Name)
		case *ast.ImportNamespaceSpecifier:
			w.opString(STORE, s.Local.Name)
		default:
			w.errorf(spec, "Unexpected import specifier")
		}
		w.op(POP)
	}
	w.op(POP)
}

func (w *writer) exportNamed(n *ast.ExportNamedDeclaration) {
	if n.Declaration != nil {
		w.statement(n.Declaration)
		for _, name := range declaredNames(n.Declaration) {
			w.opString(LOAD, name)
			w.opString(EXPORT, name)
		}
		return
	}
	if n.Source == nil {
		for _, s := range n.Specifiers {
			w.opString(LOAD, s.Local.Name)
			w.opString(EXPORT, s.Exported.Name)
		}
		return
	}
	// Re-exports read through the imported namespace.
	w.importSource(n.Source, n.Attributes)
	for _, s := range n.Specifiers {
		w.pick(1)
		w.pushString(s.Local.Name)
		w.op(GET_FIELD)
		w.opString(EXPORT, s.Exported.Name)
	}
	w.op(POP)
}

func declaredNames(decl ast.Stmt) []string {
	switch d := decl.(type) {
	case *ast.VariableDeclaration:
		var names []string
		for _, v := range d.List {
			names = append(names, boundNames(v.Target)...)
		}
		return names
	case *ast.FunctionDeclaration:
		if d.Function.Name != nil {
			return []string{d.Function.Name.Name}
		}
	case *ast.ClassDeclaration:
		if d.Class.Name != nil {
			return []string{d.Class.Name.Name}
		}
	}
	return nil
}

func (w *writer) exportDefault(n *ast.ExportDefaultDeclaration) {
	switch d := n.Declaration.(type) {
	case *ast.FunctionDeclaration:
		if d.Function.Name != nil {
			w.opString(LOAD, d.Function.Name.Name)
		} else {
			w.functionLiteral(d.Function, "default")
		}
	case *ast.ClassDeclaration:
		if d.Class.Name != nil {
			w.statement(d)
			w.opString(LOAD, d.Class.Name.Name)
		} else {
			w.class(d.Class, "default")
		}
	case ast.Expr:
		w.namedExpr(d, "default")
	default:
		w.errorf(n, "Unexpected export default declaration")
		return
	}
	w.opString(EXPORT, "default")
}
