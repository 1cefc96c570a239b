package compiler

import (
	"fmt"

	"github.com/t14raptor/go-neo/ast"
	"github.com/t14raptor/go-neo/file"
)

// Error is an emission error at a source position.
type Error struct {
	Position file.Position
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: SyntaxError: %s", e.Position, e.Message)
}

type writer struct {
	prog *Program
	file *file.File
	src  string
	opts Options

	// err is the first emission error. Emission keeps going after it is
	// set; the program is discarded.
	err *Error

	// async is set inside async functions.
	async bool
	// labels are the labels naming the loop or switch statement about to
	// be written.
	labels []string
	// fieldInit writes the instance field initializers of the derived
	// class whose constructor is being written. It runs after every
	// super() call.
	fieldInit func()
}

func newWriter(program *ast.Program, opts Options) *writer {
	f := program.File
	if f == nil {
		f = file.NewFile("", "")
	}
	return &writer{
		prog: NewProgram(f.Name()),
		file: f,
		src:  f.Source(),
		opts: opts,
	}
}

func (w *writer) errorf(n ast.Node, format string, args ...any) {
	if w.err != nil {
		return
	}
	w.err = &Error{
		Position: w.file.Position(int(n.Idx0())),
		Message:  fmt.Sprintf(format, args...),
	}
}

func (w *writer) op(op Opcode) { w.prog.AddCode(op) }

func (w *writer) opString(op Opcode, s string) {
	w.prog.AddCode(op)
	w.prog.AddString(s)
}

func (w *writer) opInteger(op Opcode, n int) {
	w.prog.AddCode(op)
	w.prog.AddInteger(int32(n))
}

func (w *writer) pushString(s string) { w.opString(PUSH_STRING, s) }

// pick copies the n-th value from the top of the stack.
func (w *writer) pick(n int) { w.opInteger(PUSH_VALUE, n) }

func (w *writer) here() int { return w.prog.Len() }

// jump emits op with a placeholder target and returns the slot to patch.
func (w *writer) jump(op Opcode) int {
	w.prog.AddCode(op)
	return w.prog.Reserve()
}

// jumpTo emits op targeting an address already written.
func (w *writer) jumpTo(op Opcode, addr int) {
	w.prog.AddCode(op)
	w.prog.AddAddress(uint64(addr))
}

func (w *writer) patch(slot int) { w.prog.Patch(slot) }

// call emits op followed by the line and column of n.
func (w *writer) call(op Opcode, n ast.Node) {
	pos := w.file.Position(int(n.Idx0()))
	w.prog.AddCode(op)
	w.prog.AddInteger(int32(pos.Line))
	w.prog.AddInteger(int32(pos.Column))
}

func (w *writer) source(n ast.Node) string {
	start, end := int(n.Idx0()), int(n.Idx1())
	if start < 0 || end > len(w.src) || start > end {
		return ""
	}
	return w.src[start:end]
}

// enterScope writes the prologue of s. Block scopes without bindings are
// elided; the result tells leaveScope whether a scope was opened.
func (w *writer) enterScope(s *ast.Scope) bool {
	if s == nil || (s.Kind == ast.ScopeBlock && len(s.Variables) == 0) {
		return false
	}
	w.prologue(s)
	return true
}

func (w *writer) leaveScope(pushed bool) {
	if pushed {
		w.op(POP_SCOPE)
	}
}

// prologue opens s and defines each of its bindings. Hoisted functions are
// defined as undefined first and assigned once every binding of the scope
// exists, so they may capture each other and any later let or const.
func (w *writer) prologue(s *ast.Scope) {
	w.op(PUSH_SCOPE)
	var hoisted []*ast.FunctionDeclaration
	for _, v := range s.Variables {
		switch v.Kind {
		case ast.DeclVar, ast.DeclParam:
			w.op(PUSH_UNDEFINED)
		case ast.DeclLet, ast.DeclClass, ast.DeclImport:
			w.op(PUSH_UNINITIALIZED)
		case ast.DeclConst:
			w.op(PUSH_UNINITIALIZED)
			w.op(SET_CONST)
		case ast.DeclUsing:
			w.op(PUSH_UNINITIALIZED)
			w.op(SET_USING)
		case ast.DeclAwaitUsing:
			w.op(PUSH_UNINITIALIZED)
			w.op(SET_AWAIT_USING)
		case ast.DeclFunction:
			w.op(PUSH_UNDEFINED)
			if decl, ok := v.Node.(*ast.FunctionDeclaration); ok {
				hoisted = append(hoisted, decl)
			}
		}
		w.opString(DEF, v.Name)
	}
	for _, decl := range hoisted {
		w.functionLiteral(decl.Function, "")
		w.opString(STORE, decl.Function.Name.Name)
		w.op(POP)
	}
}

// funcState is the writer state saved across a function body.
type funcState struct {
	async     bool
	labels    []string
	fieldInit func()
}

func (w *writer) enterFunction(async, arrow bool) funcState {
	saved := funcState{async: w.async, labels: w.labels, fieldInit: w.fieldInit}
	w.async = async
	w.labels = nil
	if !arrow {
		w.fieldInit = nil
	}
	return saved
}

func (w *writer) leaveFunction(saved funcState) {
	w.async = saved.async
	w.labels = saved.labels
	w.fieldInit = saved.fieldInit
}

// closures emits one SET_CLOSURE per captured name of fn.
func (w *writer) closures(fn ast.FunctionLike) {
	for _, name := range ast.ClosureNames(fn) {
		w.opString(SET_CLOSURE, name)
	}
}

// functionHead finishes a function object whose body starts at begin.
func (w *writer) functionHead(op Opcode, begin int, n ast.Node, name string) {
	w.op(op)
	w.jumpTo(SET_ADDRESS, begin)
	if !w.opts.OmitSource {
		w.opString(SET_SOURCE, w.source(n))
	}
	if name != "" {
		w.pushString(name)
		w.op(SET_NAME)
	}
}

func (w *writer) functionLiteral(fn *ast.FunctionLiteral, name string) {
	if fn.Name != nil {
		name = fn.Name.Name
	}
	if fn.NameScope != nil {
		w.prologue(fn.NameScope)
	}

	skip := w.jump(JMP)
	begin := w.here()
	saved := w.enterFunction(fn.Async, false)
	w.prologue(fn.Scope)
	w.params(fn.Params)
	if fn.Body != nil {
		w.directives(fn.Body.Directives)
		w.statements(fn.Body.Body)
	}
	w.op(PUSH_UNDEFINED)
	w.op(RET)
	w.op(POP_SCOPE)
	w.leaveFunction(saved)
	w.patch(skip)

	op := PUSH_FUNCTION
	switch {
	case fn.Async && fn.Generator:
		op = PUSH_ASYNC_GENERATOR
	case fn.Generator:
		op = PUSH_GENERATOR
	case fn.Async:
		op = PUSH_ASYNC_FUNCTION
	}
	w.functionHead(op, begin, fn, name)
	w.closures(fn)

	if fn.NameScope != nil {
		w.opString(STORE, name)
		w.op(POP_SCOPE)
	}
}

func (w *writer) arrow(fn *ast.ArrowFunction, name string) {
	skip := w.jump(JMP)
	begin := w.here()
	saved := w.enterFunction(fn.Async, true)
	w.prologue(fn.Scope)
	w.params(fn.Params)
	if fn.Body != nil {
		w.directives(fn.Body.Directives)
		w.statements(fn.Body.Body)
		w.op(PUSH_UNDEFINED)
	} else {
		w.expr(fn.Expression)
	}
	w.op(RET)
	w.op(POP_SCOPE)
	w.leaveFunction(saved)
	w.patch(skip)

	op := PUSH_LAMBDA
	if fn.Async {
		op = PUSH_ASYNC_LAMBDA
	}
	w.functionHead(op, begin, fn, name)
	w.closures(fn)
}

// params binds the call arguments to the parameter list.
func (w *writer) params(list *ast.ParameterList) {
	if list == nil || (len(list.List) == 0 && list.Rest == nil) {
		return
	}
	w.opString(LOAD, "arguments")
	w.op(ITERATOR)
	for _, el := range list.List {
		w.op(NEXT)
		w.op(POP)
		w.fallback(el.Default, el.Target)
		w.bind(el.Target)
	}
	if list.Rest != nil {
		w.op(REST)
		w.bind(list.Rest)
	}
	w.op(POP)
}

// fallback replaces an undefined top of stack with def.
func (w *writer) fallback(def ast.Expr, target ast.Pattern) {
	if def == nil {
		return
	}
	skip := w.jump(JNOT_UNDEFINED)
	w.op(POP)
	if id, ok := target.(*ast.Identifier); ok {
		w.namedExpr(def, id.Name)
	} else {
		w.expr(def)
	}
	w.patch(skip)
}

func (w *writer) directives(list []*ast.Directive) {
	for _, d := range list {
		w.opString(DIRECTIVE, d.Value)
	}
}

// takeLabels hands the pending labels to the loop or switch being written.
func (w *writer) takeLabels() []string {
	labels := w.labels
	w.labels = nil
	return labels
}

// openFrames opens one label frame per label, outermost first, then the
// unlabelled frame when unlabelled is set. It returns the address slots.
func (w *writer) openFrames(op Opcode, labels []string, unlabelled bool) []int {
	var slots []int
	for _, label := range labels {
		w.opString(op, label)
		slots = append(slots, w.prog.Reserve())
	}
	if unlabelled {
		w.opString(op, "")
		slots = append(slots, w.prog.Reserve())
	}
	return slots
}

// closeFrames lands each frame opened by openFrames, innermost first. A
// jump to a frame pops the frames above it; the POP_LABEL after each
// landing pops the frame itself.
func (w *writer) closeFrames(slots []int) {
	for i := len(slots) - 1; i >= 0; i-- {
		w.patch(slots[i])
		w.op(POP_LABEL)
	}
}
