package compiler

import "github.com/t14raptor/go-neo/ast"

func (w *writer) program(p *ast.Program) {
	w.prologue(p.Scope)
	w.directives(p.Directives)
	w.statements(p.Body)
	w.op(POP_SCOPE)
	w.op(HLT)
}

func (w *writer) statements(list []ast.Stmt) {
	for _, s := range list {
		w.statement(s)
	}
}

// statement writes s. Statements leave the stack as they found it.
func (w *writer) statement(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.ExpressionStatement:
		w.expr(n.Expression)
		w.op(SAVE)
		w.op(POP)
	case *ast.BlockStatement:
		pushed := w.enterScope(n.Scope)
		w.statements(n.Body)
		w.leaveScope(pushed)
	case *ast.EmptyStatement:
	case *ast.DebuggerStatement:
		w.op(BREAKPOINT)
	case *ast.ReturnStatement:
		if n.Argument != nil {
			w.expr(n.Argument)
		} else {
			w.op(PUSH_UNDEFINED)
		}
		w.op(RET)
	case *ast.LabelledStatement:
		w.labelled(n)
	case *ast.BreakStatement:
		w.opString(BREAK, labelName(n.Label))
	case *ast.ContinueStatement:
		w.opString(CONTINUE, labelName(n.Label))
	case *ast.IfStatement:
		w.ifStatement(n)
	case *ast.SwitchStatement:
		w.switchStatement(n)
	case *ast.ThrowStatement:
		w.expr(n.Argument)
		w.op(THROW)
	case *ast.TryStatement:
		w.try(n)
	case *ast.WhileStatement:
		w.while(n)
	case *ast.DoWhileStatement:
		w.doWhile(n)
	case *ast.ForStatement:
		w.forStatement(n)
	case *ast.ForInStatement:
		w.forEach(n.Left, n.Right, n.Body, n.Scope, true, false)
	case *ast.ForOfStatement:
		w.forEach(n.Left, n.Right, n.Body, n.Scope, false, n.Await)
	case *ast.VariableDeclaration:
		w.variables(n)
	case *ast.FunctionDeclaration:
		// Written by the prologue of the enclosing scope.
	case *ast.ClassDeclaration:
		w.class(n.Class, "")
		w.opString(STORE, n.Class.Name.Name)
		w.op(POP)
	case *ast.ImportDeclaration:
		w.importDeclaration(n)
	case *ast.ExportNamedDeclaration:
		w.exportNamed(n)
	case *ast.ExportDefaultDeclaration:
		w.exportDefault(n)
	case *ast.ExportAllDeclaration:
		w.importSource(n.Source, n.Attributes)
		if n.Exported != nil {
			w.opString(EXPORT, n.Exported.Name)
		} else {
			w.op(EXPORT_ALL)
		}
	default:
		w.errorf(s, "Unsupported statement %T", s)
	}
}

func labelName(id *ast.Identifier) string {
	if id == nil {
		return ""
	}
	return id.Name
}

// labelled collects the labels of a chain of labelled statements. Loops
// and switches own their frames; any other statement gets break frames
// for its labels here.
func (w *writer) labelled(n *ast.LabelledStatement) {
	labels := append(w.takeLabels(), n.Label.Name)
	switch n.Body.(type) {
	case *ast.LabelledStatement, *ast.WhileStatement, *ast.DoWhileStatement, *ast.ForStatement,
		*ast.ForInStatement, *ast.ForOfStatement, *ast.SwitchStatement:
		w.labels = labels
		w.statement(n.Body)
		return
	}
	frames := w.openFrames(PUSH_BREAK_LABEL, labels, false)
	w.statement(n.Body)
	w.closeFrames(frames)
}

func (w *writer) ifStatement(n *ast.IfStatement) {
	w.expr(n.Test)
	alternate := w.jump(JFALSE)
	w.op(POP)
	w.statement(n.Consequent)
	end := w.jump(JMP)
	w.patch(alternate)
	w.op(POP)
	if n.Alternate != nil {
		w.statement(n.Alternate)
	}
	w.patch(end)
}

func (w *writer) while(n *ast.WhileStatement) {
	labels := w.takeLabels()
	breaks := w.openFrames(PUSH_BREAK_LABEL, labels, true)
	begin := w.here()
	w.expr(n.Test)
	exit := w.jump(JFALSE)
	w.op(POP)
	w.loopBody(labels, n.Body)
	w.jumpTo(JMP, begin)
	w.patch(exit)
	w.op(POP)
	w.closeFrames(breaks)
}

func (w *writer) doWhile(n *ast.DoWhileStatement) {
	labels := w.takeLabels()
	breaks := w.openFrames(PUSH_BREAK_LABEL, labels, true)
	begin := w.here()
	w.loopBody(labels, n.Body)
	w.expr(n.Test)
	exit := w.jump(JFALSE)
	w.op(POP)
	w.jumpTo(JMP, begin)
	w.patch(exit)
	w.op(POP)
	w.closeFrames(breaks)
}

// loopBody writes one iteration of body inside fresh continue frames.
func (w *writer) loopBody(labels []string, body ast.Stmt) {
	continues := w.openFrames(PUSH_CONTINUE_LABEL, labels, true)
	w.statement(body)
	w.closeFrames(continues)
}

func (w *writer) forStatement(n *ast.ForStatement) {
	labels := w.takeLabels()
	pushed := w.enterScope(n.Scope)
	switch init := n.Init.(type) {
	case nil:
	case *ast.VariableDeclaration:
		w.variables(init)
	case ast.Expr:
		w.expr(init)
		w.op(POP)
	}

	breaks := w.openFrames(PUSH_BREAK_LABEL, labels, true)
	begin := w.here()
	exit := -1
	if n.Test != nil {
		w.expr(n.Test)
		exit = w.jump(JFALSE)
		w.op(POP)
	}
	w.loopBody(labels, n.Body)
	if n.Update != nil {
		w.expr(n.Update)
		w.op(POP)
	}
	w.jumpTo(JMP, begin)
	if exit >= 0 {
		w.patch(exit)
		w.op(POP)
	}
	w.closeFrames(breaks)
	w.leaveScope(pushed)
}

// forEach writes for-in and for-of loops. Each iteration runs in a fresh
// copy of the loop scope.
func (w *writer) forEach(left ast.Node, right ast.Expr, body ast.Stmt, scope *ast.Scope, keys, async bool) {
	labels := w.takeLabels()
	w.expr(right)
	next := NEXT
	switch {
	case keys:
		w.op(KEYS)
		w.op(ITERATOR)
	case async:
		w.op(ASYNC_ITERATOR)
		next = AWAIT_NEXT
	default:
		w.op(ITERATOR)
	}

	breaks := w.openFrames(PUSH_BREAK_LABEL, labels, true)
	begin := w.here()
	w.op(next)
	exit := w.jump(JTRUE)
	w.op(POP)
	pushed := w.enterScope(scope)
	switch l := left.(type) {
	case *ast.VariableDeclaration:
		if len(l.List) == 1 {
			w.bind(l.List[0].Target)
		} else {
			w.errorf(l, "Invalid left-hand side in for-loop")
			w.op(POP)
		}
	case ast.Pattern:
		w.bind(l)
	default:
		w.errorf(left, "Invalid left-hand side in for-loop")
		w.op(POP)
	}
	w.loopBody(labels, body)
	w.leaveScope(pushed)
	w.jumpTo(JMP, begin)
	w.patch(exit)
	// [iter v done]
	w.op(POP)
	w.op(POP)
	w.closeFrames(breaks)
	w.op(POP)
}

func (w *writer) switchStatement(n *ast.SwitchStatement) {
	labels := w.takeLabels()
	pushed := w.enterScope(n.Scope)
	breaks := w.openFrames(PUSH_BREAK_LABEL, labels, true)
	w.expr(n.Discriminant)

	entries := make([]int, len(n.Cases))
	fallback := -1
	for i, c := range n.Cases {
		if c.Test == nil {
			fallback = i
			continue
		}
		w.pick(1)
		w.expr(c.Test)
		w.op(SEQ)
		next := w.jump(JFALSE)
		w.op(POP)
		entries[i] = w.jump(JMP)
		w.patch(next)
		w.op(POP)
	}
	end := w.jump(JMP)
	if fallback >= 0 {
		entries[fallback] = end
		end = -1
	}

	for i, c := range n.Cases {
		w.patch(entries[i])
		w.statements(c.Consequent)
	}
	if end >= 0 {
		w.patch(end)
	}
	w.op(POP)
	w.closeFrames(breaks)
	w.leaveScope(pushed)
}

// try writes the protected block, the handler and the finalizer. The
// runtime runs the finalizer at the TRY_END closing the block or the
// handler, and the finalizer's own TRY_END resumes from there.
func (w *writer) try(n *ast.TryStatement) {
	w.op(TRY_BEGIN)
	catch, finally := -1, -1
	if n.Handler != nil {
		catch = w.prog.Reserve()
	} else {
		w.prog.AddAddress(0)
	}
	if n.Finalizer != nil {
		finally = w.prog.Reserve()
	} else {
		w.prog.AddAddress(0)
	}

	w.statement(n.Block)
	w.op(TRY_END)
	after := w.jump(JMP)

	if n.Handler != nil {
		h := n.Handler
		w.patch(catch)
		pushed := w.enterScope(h.Scope)
		if h.Param != nil {
			w.bind(h.Param)
		} else {
			w.op(POP)
		}
		w.statements(h.Body)
		w.leaveScope(pushed)
		w.op(TRY_END)
	}
	w.patch(after)

	if n.Finalizer != nil {
		skip := w.jump(JMP)
		w.patch(finally)
		w.statement(n.Finalizer)
		w.op(TRY_END)
		w.patch(skip)
	}
}

func (w *writer) variables(n *ast.VariableDeclaration) {
	for _, d := range n.List {
		switch {
		case d.Initializer != nil:
			if id, ok := d.Target.(*ast.Identifier); ok {
				w.namedExpr(d.Initializer, id.Name)
			} else {
				w.expr(d.Initializer)
			}
		case n.Kind == ast.DeclVar:
			continue
		default:
			w.op(PUSH_UNDEFINED)
		}
		w.bind(d.Target)
	}
}
