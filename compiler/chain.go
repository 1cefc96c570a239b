package compiler

import "github.com/t14raptor/go-neo/ast"

// chain writes a member or call expression. Every '?.' link in the chain
// adds a short-circuit jump to one list, and all of them land after the
// outermost node, so the whole chain yields undefined at once.
func (w *writer) chain(e ast.Expr) {
	var jumps []int
	w.chainValue(e, &jumps)
	for _, j := range jumps {
		w.patch(j)
	}
}

// chainOperand writes the object or callee of a chain link. Member and
// call operands continue the same chain; anything else, parenthesized
// chains included, is an ordinary expression.
func (w *writer) chainOperand(e ast.Expr, jumps *[]int) {
	switch e.(type) {
	case *ast.MemberExpression, *ast.CallExpression:
		w.chainValue(e, jumps)
	default:
		w.expr(e)
	}
}

func (w *writer) chainValue(e ast.Expr, jumps *[]int) {
	switch n := e.(type) {
	case *ast.MemberExpression:
		if _, super := n.Object.(*ast.SuperExpression); super {
			w.memberKey(n)
			w.op(GET_SUPER_FIELD)
			return
		}
		w.chainOperand(n.Object, jumps)
		if n.Optional {
			*jumps = append(*jumps, w.jump(JNULL))
		}
		w.memberKey(n)
		if isPrivate(n) {
			w.op(GET_PRIVATE_FIELD)
		} else {
			w.op(GET_FIELD)
		}
	case *ast.CallExpression:
		w.callValue(n, jumps)
	default:
		w.expr(e)
	}
}

// method returns the member expression a call is made on, looking through
// parentheses that do not end an optional chain.
func method(callee ast.Expr) (*ast.MemberExpression, bool) {
	if p, ok := callee.(*ast.ParenthesizedExpression); ok {
		m, ok := p.Expression.(*ast.MemberExpression)
		if !ok || ast.IsOptionalChain(m) {
			return nil, false
		}
		return m, true
	}
	m, ok := callee.(*ast.MemberExpression)
	return m, ok
}

func (w *writer) callValue(n *ast.CallExpression, jumps *[]int) {
	if _, super := n.Callee.(*ast.SuperExpression); super {
		w.arguments(n.Arguments)
		w.superCall(n)
		return
	}

	m, ok := method(n.Callee)
	if !ok {
		if id, ok := n.Callee.(*ast.Identifier); ok && id.Name == "eval" && !n.Optional {
			w.expr(id)
			w.arguments(n.Arguments)
			w.call(EVAL, n)
			return
		}
		w.chainOperand(n.Callee, jumps)
		if n.Optional {
			*jumps = append(*jumps, w.jump(JNULL))
		}
		w.arguments(n.Arguments)
		w.call(CALL, n)
		return
	}

	if _, super := m.Object.(*ast.SuperExpression); super {
		w.memberKey(m)
		if n.Optional {
			// super.m?.() reads the method first; it is called with
			// SUPER_MEMBER_CALL only when present.
			w.pick(1)
			w.op(GET_SUPER_FIELD)
			present := w.jump(JNOT_NULL)
			w.op(POP)
			w.op(POP)
			w.op(PUSH_UNDEFINED)
			*jumps = append(*jumps, w.jump(JMP))
			w.patch(present)
			w.op(POP)
		}
		w.arguments(n.Arguments)
		w.call(SUPER_MEMBER_CALL, n)
		return
	}

	if m == n.Callee {
		w.chainOperand(m.Object, jumps)
	} else {
		w.expr(m.Object)
	}
	if m.Optional && m == n.Callee {
		*jumps = append(*jumps, w.jump(JNULL))
	}
	if isPrivate(m) && !n.Optional {
		w.memberKey(m)
		w.arguments(n.Arguments)
		w.call(PRIVATE_CALL, n)
		return
	}

	// [obj] -> [obj fn]
	w.pick(1)
	w.memberKey(m)
	if isPrivate(m) {
		w.op(GET_PRIVATE_FIELD)
	} else {
		w.op(GET_FIELD)
	}
	if n.Optional {
		present := w.jump(JNOT_NULL)
		w.op(POP)
		w.op(POP)
		w.op(PUSH_UNDEFINED)
		*jumps = append(*jumps, w.jump(JMP))
		w.patch(present)
	}
	w.arguments(n.Arguments)
	w.call(MEMBER_CALL, n)
}

// superCall writes SUPER_CALL for the argument array on the stack. In a
// derived constructor the instance fields are initialized right after.
func (w *writer) superCall(n ast.Node) {
	w.call(SUPER_CALL, n)
	if w.fieldInit != nil {
		w.fieldInit()
	}
}
