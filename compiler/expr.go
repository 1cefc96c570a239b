package compiler

import (
	"math"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/token"
)

var binaryOpcodes = map[token.Token]Opcode{
	token.Plus:               ADD,
	token.Minus:              SUB,
	token.Multiply:           MUL,
	token.Slash:              DIV,
	token.Remainder:          MOD,
	token.Exponent:           POW,
	token.And:                AND,
	token.Or:                 OR,
	token.ExclusiveOr:        XOR,
	token.ShiftLeft:          SHL,
	token.ShiftRight:         SHR,
	token.UnsignedShiftRight: USHR,
	token.Equal:              EQ,
	token.NotEqual:           NE,
	token.StrictEqual:        SEQ,
	token.StrictNotEqual:     SNE,
	token.Less:               LT,
	token.Greater:            GT,
	token.LessOrEqual:        LE,
	token.GreaterOrEqual:     GE,
	token.In:                 IN,
	token.InstanceOf:         INSTANCE_OF,
}

var unaryOpcodes = map[token.Token]Opcode{
	token.Not:        LOGICAL_NOT,
	token.BitwiseNot: NOT,
	token.Plus:       PLUS,
	token.Minus:      NEG,
	token.Typeof:     TYPEOF,
	token.Void:       VOID,
}

// shortCircuit maps a logical operator to the jump that skips its right
// operand.
var shortCircuit = map[token.Token]Opcode{
	token.LogicalAnd: JFALSE,
	token.LogicalOr:  JTRUE,
	token.Coalesce:   JNOT_NULL,
}

// expr writes e, leaving its value on the stack.
func (w *writer) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Identifier:
		w.opString(LOAD, n.Name)
	case *ast.PrivateName:
		w.pushString("#" + n.Name)
	case *ast.NullLiteral:
		w.op(PUSH_NULL)
	case *ast.BooleanLiteral:
		if n.Value {
			w.op(PUSH_TRUE)
		} else {
			w.op(PUSH_FALSE)
		}
	case *ast.NumberLiteral:
		switch {
		case math.IsNaN(n.Value):
			w.op(PUSH_NAN)
		case math.IsInf(n.Value, 1):
			w.op(PUSH_INFINITY)
		default:
			w.prog.AddCode(PUSH_NUMBER)
			w.prog.AddNumber(n.Value)
		}
	case *ast.BigIntLiteral:
		w.opString(PUSH_BIGINT, n.Value.String())
	case *ast.StringLiteral:
		w.pushString(n.Value)
	case *ast.RegExpLiteral:
		w.prog.AddCode(PUSH_REGEXP)
		w.prog.AddString(n.Pattern)
		w.prog.AddString(n.Flags)
	case *ast.TemplateLiteral:
		w.template(n)
	case *ast.TaggedTemplate:
		w.taggedTemplate(n)
	case *ast.ThisExpression:
		w.op(PUSH_THIS)
	case *ast.ArrayLiteral:
		w.op(PUSH_ARRAY)
		for _, el := range n.Elements {
			w.arrayElement(el)
		}
	case *ast.ObjectLiteral:
		w.object(n)
	case *ast.ParenthesizedExpression:
		w.expr(n.Expression)
	case *ast.MemberExpression, *ast.CallExpression:
		w.chain(e)
	case *ast.NewExpression:
		w.expr(n.Callee)
		w.arguments(n.Arguments)
		w.call(NEW, n)
	case *ast.MetaProperty:
		w.opString(LOAD, n.Meta.Name+"."+n.Property.Name)
	case *ast.ImportExpression:
		w.opString(LOAD, "import")
		w.op(PUSH_ARRAY)
		w.expr(n.Source)
		w.op(APPEND)
		if n.Options != nil {
			w.expr(n.Options)
			w.op(APPEND)
		}
		w.call(CALL, n)
	case *ast.UnaryExpression:
		w.unary(n)
	case *ast.AwaitExpression:
		w.expr(n.Argument)
		w.op(AWAIT)
	case *ast.UpdateExpression:
		w.update(n)
	case *ast.BinaryExpression:
		w.binary(n)
	case *ast.ConditionalExpression:
		w.expr(n.Test)
		alternate := w.jump(JFALSE)
		w.op(POP)
		w.expr(n.Consequent)
		end := w.jump(JMP)
		w.patch(alternate)
		w.op(POP)
		w.expr(n.Alternate)
		w.patch(end)
	case *ast.AssignExpression:
		w.assign(n)
	case *ast.YieldExpression:
		w.yield(n)
	case *ast.FunctionLiteral:
		w.functionLiteral(n, "")
	case *ast.ArrowFunction:
		w.arrow(n, "")
	case *ast.ClassLiteral:
		w.class(n, "")
	case *ast.SuperExpression:
		w.errorf(n, "'super' keyword unexpected here")
		w.op(PUSH_UNDEFINED)
	case *ast.SpreadElement:
		w.errorf(n, "Unexpected token ...")
		w.op(PUSH_UNDEFINED)
	default:
		w.errorf(e, "Unsupported expression %T", e)
		w.op(PUSH_UNDEFINED)
	}
}

// namedExpr writes e, giving an anonymous function or class the name it
// is being bound to.
func (w *writer) namedExpr(e ast.Expr, name string) {
	switch n := e.(type) {
	case *ast.FunctionLiteral:
		w.functionLiteral(n, name)
	case *ast.ArrowFunction:
		w.arrow(n, name)
	case *ast.ClassLiteral:
		w.class(n, name)
	default:
		w.expr(e)
	}
}

func (w *writer) template(n *ast.TemplateLiteral) {
	if len(n.Quasis) == 0 {
		w.pushString("")
		return
	}
	w.pushString(n.Quasis[0].Cooked)
	for i, e := range n.Expressions {
		w.expr(e)
		w.op(CONCAT)
		if i+1 < len(n.Quasis) {
			w.pushString(n.Quasis[i+1].Cooked)
			w.op(CONCAT)
		}
	}
}

// templateParts pushes the cooked strings, the raw strings and the
// substitution values of a tagged template as three arrays.
func (w *writer) templateParts(q *ast.TemplateLiteral) {
	w.op(PUSH_ARRAY)
	for _, el := range q.Quasis {
		w.pushString(el.Cooked)
		w.op(APPEND)
	}
	w.op(PUSH_ARRAY)
	for _, el := range q.Quasis {
		w.pushString(el.Raw)
		w.op(APPEND)
	}
	w.op(PUSH_ARRAY)
	for _, e := range q.Expressions {
		w.expr(e)
		w.op(APPEND)
	}
}

func (w *writer) taggedTemplate(n *ast.TaggedTemplate) {
	tag := n.Tag
	if p, ok := tag.(*ast.ParenthesizedExpression); ok {
		if m, ok := p.Expression.(*ast.MemberExpression); ok && !ast.IsOptionalChain(m) {
			tag = m
		}
	}
	m, ok := tag.(*ast.MemberExpression)
	if !ok {
		w.expr(tag)
		w.templateParts(n.Quasi)
		w.call(TAG, n)
		return
	}
	if _, super := m.Object.(*ast.SuperExpression); super {
		w.memberKey(m)
		w.templateParts(n.Quasi)
		w.call(SUPER_MEMBER_TAG, n)
		return
	}
	w.expr(m.Object)
	if _, private := m.Property.(*ast.PrivateName); private && !m.Computed {
		w.memberKey(m)
		w.templateParts(n.Quasi)
		w.call(PRIVATE_TAG, n)
		return
	}
	w.pick(1)
	w.memberKey(m)
	w.op(GET_FIELD)
	w.templateParts(n.Quasi)
	w.call(MEMBER_TAG, n)
}

// arrayElement appends el to the array on top of the stack.
func (w *writer) arrayElement(el ast.Expr) {
	switch el := el.(type) {
	case nil:
		// A hole only grows the length.
		w.pick(1)
		w.pushString("length")
		w.pick(2)
		w.pushString("length")
		w.op(GET_FIELD)
		w.op(INC)
		w.op(SET_FIELD)
		w.op(POP)
	case *ast.SpreadElement:
		w.expr(el.Argument)
		w.op(SPREAD)
	default:
		w.expr(el)
		w.op(APPEND)
	}
}

// arguments pushes the argument array of a call.
func (w *writer) arguments(args []ast.Expr) {
	w.op(PUSH_ARRAY)
	for _, a := range args {
		w.arrayElement(a)
	}
}

func (w *writer) object(n *ast.ObjectLiteral) {
	w.op(PUSH_OBJECT)
	for _, p := range n.Properties {
		switch p := p.(type) {
		case *ast.PropertyShort:
			w.pushString(p.Name.Name)
			w.opString(LOAD, p.Name.Name)
			w.op(INIT_FIELD)
		case *ast.SpreadElement:
			w.expr(p.Argument)
			w.op(SPREAD)
		case *ast.PropertyKeyed:
			name, _ := ast.KeyName(p.Key)
			if p.Computed {
				name = ""
			}
			w.key(p.Key, p.Computed)
			if p.Kind == ast.PropertyValue {
				w.namedExpr(p.Value, name)
				w.op(INIT_FIELD)
				continue
			}
			w.namedExpr(p.Value, name)
			w.pick(3)
			w.op(SET_CLASS)
			switch p.Kind {
			case ast.PropertyGet:
				w.op(SET_GETTER)
			case ast.PropertySet:
				w.op(SET_SETTER)
			default:
				w.op(SET_METHOD)
			}
		}
	}
}

// key pushes a property key.
func (w *writer) key(key ast.Expr, computed bool) {
	if computed {
		w.expr(key)
		return
	}
	switch k := key.(type) {
	case *ast.NumberLiteral:
		w.expr(k)
	case *ast.BigIntLiteral:
		w.pushString(k.Value.String())
	default:
		name, ok := ast.KeyName(key)
		if !ok {
			w.errorf(key, "Unexpected property key")
		}
		w.pushString(name)
	}
}

// memberKey pushes the property of m: the computed expression, the name,
// or "#name" for a private member.
func (w *writer) memberKey(m *ast.MemberExpression) {
	w.key(m.Property, m.Computed)
}

func isPrivate(m *ast.MemberExpression) bool {
	_, ok := m.Property.(*ast.PrivateName)
	return ok && !m.Computed
}

func (w *writer) unary(n *ast.UnaryExpression) {
	if n.Operator == token.Delete {
		w.delete(n)
		return
	}
	op, ok := unaryOpcodes[n.Operator]
	if !ok {
		w.errorf(n, "Unexpected token %v", n.Operator)
		op = VOID
	}
	w.expr(n.Operand)
	w.op(op)
}

func (w *writer) delete(n *ast.UnaryExpression) {
	operand := n.Operand
	for {
		p, ok := operand.(*ast.ParenthesizedExpression)
		if !ok {
			break
		}
		operand = p.Expression
	}
	switch m := operand.(type) {
	case *ast.Identifier:
		// Declared bindings cannot be deleted.
		w.op(PUSH_FALSE)
	case *ast.MemberExpression:
		if _, super := m.Object.(*ast.SuperExpression); super || isPrivate(m) {
			w.errorf(n, "Delete of an unqualified identifier in strict mode.")
			w.op(PUSH_FALSE)
			return
		}
		var jumps []int
		w.chainOperand(m.Object, &jumps)
		if m.Optional {
			jumps = append(jumps, w.jump(JNULL))
		}
		w.memberKey(m)
		w.op(DEL_FIELD)
		for _, j := range jumps {
			w.patch(j)
		}
	default:
		w.expr(n.Operand)
		w.op(DEL)
	}
}

func (w *writer) binary(n *ast.BinaryExpression) {
	switch n.Operator {
	case token.Comma:
		w.expr(n.Left)
		w.op(POP)
		w.expr(n.Right)
		return
	case token.LogicalAnd, token.LogicalOr, token.Coalesce:
		w.expr(n.Left)
		end := w.jump(shortCircuit[n.Operator])
		w.op(POP)
		w.expr(n.Right)
		w.patch(end)
		return
	}
	op, ok := binaryOpcodes[n.Operator]
	if !ok {
		w.errorf(n, "Unexpected token %v", n.Operator)
		op = ADD
	}
	w.expr(n.Left)
	w.expr(n.Right)
	w.op(op)
}

func (w *writer) yield(n *ast.YieldExpression) {
	if n.Argument != nil {
		w.expr(n.Argument)
	} else {
		w.op(PUSH_UNDEFINED)
	}
	if !n.Delegate {
		w.op(YIELD)
		return
	}
	next := NEXT
	if w.async {
		w.op(ASYNC_ITERATOR)
		next = AWAIT_NEXT
	} else {
		w.op(ITERATOR)
	}
	begin := w.here()
	w.op(next)
	done := w.jump(JTRUE)
	w.op(POP)
	w.op(YIELD)
	w.op(POP)
	w.jumpTo(JMP, begin)
	w.patch(done)
	// [iter result done] -> [result]
	w.op(POP)
	w.opInteger(INSERT, 1)
	w.op(POP)
}

// reference is an assignable place whose object and key, if any, have
// been pushed.
type reference struct {
	name    string // identifier name
	depth   int    // stack slots held: 0, 1 for super members, 2 for members
	private bool
}

func (r reference) get(w *writer) {
	switch r.depth {
	case 0:
		w.opString(LOAD, r.name)
	case 1:
		w.pick(1)
		w.op(GET_SUPER_FIELD)
	default:
		w.pick(2)
		w.pick(2)
		if r.private {
			w.op(GET_PRIVATE_FIELD)
		} else {
			w.op(GET_FIELD)
		}
	}
}

// set stores the top value, consuming the reference slots and leaving
// the value.
func (r reference) set(w *writer) {
	switch r.depth {
	case 0:
		w.opString(STORE, r.name)
	case 1:
		w.op(SET_SUPER_FIELD)
	default:
		if r.private {
			w.op(SET_PRIVATE_FIELD)
		} else {
			w.op(SET_FIELD)
		}
	}
}

// reference pushes the object and key of an assignment target.
func (w *writer) reference(target ast.Node, message string) (reference, bool) {
	switch t := target.(type) {
	case *ast.Identifier:
		return reference{name: t.Name}, true
	case *ast.ParenthesizedExpression:
		return w.reference(t.Expression, message)
	case *ast.MemberExpression:
		if t.Optional || ast.IsOptionalChain(t.Object) {
			break
		}
		if _, super := t.Object.(*ast.SuperExpression); super {
			w.memberKey(t)
			return reference{depth: 1}, true
		}
		w.expr(t.Object)
		w.memberKey(t)
		return reference{depth: 2, private: isPrivate(t)}, true
	}
	w.errorf(target, "%s", message)
	return reference{}, false
}

func (w *writer) update(n *ast.UpdateExpression) {
	message := "Invalid left-hand side expression in postfix operation"
	if n.Prefix {
		message = "Invalid left-hand side expression in prefix operation"
	}
	ref, ok := w.reference(n.Operand, message)
	if !ok {
		w.op(PUSH_UNDEFINED)
		return
	}
	ref.get(w)
	if n.Prefix {
		if n.Operator == token.Increment {
			w.op(INC)
		} else {
			w.op(DEC)
		}
		ref.set(w)
		return
	}
	if n.Operator == token.Increment {
		w.op(DEFER_INC)
	} else {
		w.op(DEFER_DEC)
	}
	// [ref new old] -> [old ref new]
	w.opInteger(INSERT, ref.depth+1)
	ref.set(w)
	w.op(POP)
}

func (w *writer) assign(n *ast.AssignExpression) {
	const message = "Invalid left-hand side in assignment"
	if n.Operator == token.Assign {
		switch n.Left.(type) {
		case *ast.ArrayPattern, *ast.ObjectPattern:
			w.expr(n.Right)
			w.pick(1)
			w.bind(n.Left)
			return
		}
		ref, ok := w.reference(n.Left, message)
		if !ok {
			w.expr(n.Right)
			return
		}
		w.namedExpr(n.Right, ref.name)
		ref.set(w)
		return
	}

	ref, ok := w.reference(n.Left, message)
	if !ok {
		w.expr(n.Right)
		return
	}
	ref.get(w)
	binary := token.BinaryOf(n.Operator)
	if jump, ok := shortCircuit[binary]; ok {
		short := w.jump(jump)
		w.op(POP)
		w.namedExpr(n.Right, ref.name)
		ref.set(w)
		end := w.jump(JMP)
		w.patch(short)
		if ref.depth > 0 {
			// [ref v] -> [v]
			w.opInteger(INSERT, ref.depth)
			for i := 0; i < ref.depth; i++ {
				w.op(POP)
			}
		}
		w.patch(end)
		return
	}
	op, ok := binaryOpcodes[binary]
	if !ok {
		w.errorf(n, "Unexpected token %v", n.Operator)
		op = ADD
	}
	w.expr(n.Right)
	w.op(op)
	ref.set(w)
}
