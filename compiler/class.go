package compiler

import "github.com/t14raptor/go-neo/ast"

// class writes a class value. The class object is the constructor: its
// body initializes instance fields and runs the declared constructor, if
// any. Methods are attached once the class exists, and static fields and
// blocks run in a separate initializer called with the class as this.
func (w *writer) class(c *ast.ClassLiteral, name string) {
	if c.Name != nil {
		name = c.Name.Name
	}
	if c.NameScope != nil {
		w.prologue(c.NameScope)
	}

	w.constructor(c, name)
	if c.SuperClass != nil {
		w.expr(c.SuperClass)
		w.op(EXTENDS)
	}
	w.methods(c)
	for i := len(c.Decorators) - 1; i >= 0; i-- {
		// [C] -> [name C dec] -> [name C'] -> [C']
		w.pushString(name)
		w.opInteger(INSERT, 1)
		w.expr(c.Decorators[i].Expression)
		w.opInteger(DECORATOR, int(DecorateClass))
		w.opInteger(INSERT, 1)
		w.op(POP)
	}
	if c.NameScope != nil {
		w.opString(STORE, name)
	}
	w.staticInit(c)

	if c.NameScope != nil {
		w.op(POP_SCOPE)
	}
}

func (w *writer) constructor(c *ast.ClassLiteral, name string) {
	ctor := c.Constructor()
	skip := w.jump(JMP)
	begin := w.here()
	saved := w.enterFunction(false, false)
	w.prologue(c.Scope)
	if ctor != nil {
		w.prologue(ctor.Function.Scope)
		w.params(ctor.Function.Params)
	}

	fields := func() { w.instanceFields(c) }
	if c.SuperClass != nil {
		w.fieldInit = fields
		if ctor == nil {
			w.opString(LOAD, "arguments")
			w.superCall(c)
			w.op(POP)
		}
	} else {
		fields()
	}
	if ctor != nil && ctor.Function.Body != nil {
		w.directives(ctor.Function.Body.Directives)
		w.statements(ctor.Function.Body.Body)
	}
	w.op(PUSH_UNDEFINED)
	w.op(RET)
	if ctor != nil {
		w.op(POP_SCOPE)
	}
	w.op(POP_SCOPE)
	w.leaveFunction(saved)
	w.patch(skip)

	w.functionHead(PUSH_CLASS, begin, c, name)
	w.closures(c)
}

// memberName is the function name given to a method or accessor.
func memberName(key ast.Expr, computed bool) string {
	if computed {
		return ""
	}
	name, _ := ast.KeyName(key)
	return name
}

func methodDecorator(kind ast.PropertyKind) int32 {
	switch kind {
	case ast.PropertyGet:
		return DecorateGetter
	case ast.PropertySet:
		return DecorateSetter
	}
	return DecorateMethod
}

func (w *writer) decorate(list []*ast.Decorator, kind int32) {
	for i := len(list) - 1; i >= 0; i-- {
		w.expr(list[i].Expression)
		w.opInteger(DECORATOR, int(kind))
	}
}

// method writes [target] -> [target] for one method definition. target is
// the object the method is installed on, and the method's home object.
func (w *writer) method(m *ast.MethodDefinition, private bool) {
	w.key(m.Key, m.Computed)
	w.functionLiteral(m.Function, memberName(m.Key, m.Computed))
	w.pick(3)
	w.op(SET_CLASS)
	w.decorate(m.Decorators, methodDecorator(m.Kind))
	switch {
	case private && m.Kind == ast.PropertyGet:
		w.op(DEF_PRIVATE_GETTER)
	case private && m.Kind == ast.PropertySet:
		w.op(DEF_PRIVATE_SETTER)
	case private:
		w.op(DEF_PRIVATE_METHOD)
	case m.Kind == ast.PropertyGet:
		w.op(SET_GETTER)
	case m.Kind == ast.PropertySet:
		w.op(SET_SETTER)
	default:
		w.op(SET_METHOD)
	}
}

func isPrivateKey(key ast.Expr, computed bool) bool {
	_, ok := key.(*ast.PrivateName)
	return ok && !computed
}

// methods installs the public prototype methods and every static method.
// Private instance methods are defined on each instance by the
// constructor.
func (w *writer) methods(c *ast.ClassLiteral) {
	var proto, static []*ast.MethodDefinition
	for _, el := range c.Body {
		m, ok := el.(*ast.MethodDefinition)
		if !ok || m.Kind == ast.PropertyConstructor {
			continue
		}
		switch {
		case m.Static:
			static = append(static, m)
		case !isPrivateKey(m.Key, m.Computed):
			proto = append(proto, m)
		}
	}

	if len(proto) > 0 {
		// [C] -> [C proto]
		w.pick(1)
		w.pushString("prototype")
		w.op(GET_FIELD)
		for _, m := range proto {
			w.method(m, false)
		}
		w.op(POP)
	}
	for _, m := range static {
		w.method(m, isPrivateKey(m.Key, m.Computed))
	}
}

// field writes [obj] -> [obj] for one field definition.
func (w *writer) field(f *ast.FieldDefinition) {
	w.key(f.Key, f.Computed)
	if f.Initializer != nil {
		w.namedExpr(f.Initializer, memberName(f.Key, f.Computed))
	} else {
		w.op(PUSH_UNDEFINED)
	}
	private := isPrivateKey(f.Key, f.Computed)
	if f.Accessor {
		w.decorate(f.Decorators, DecorateAccessor)
		if private {
			w.op(INIT_PRIVATE_ACCESSOR)
		} else {
			w.op(INIT_ACCESSOR)
		}
		return
	}
	w.decorate(f.Decorators, DecorateField)
	if private {
		w.op(INIT_PRIVATE_FIELD)
	} else {
		w.op(INIT_FIELD)
	}
}

// instanceFields defines the private methods and initializes the fields
// of a new instance, in declaration order.
func (w *writer) instanceFields(c *ast.ClassLiteral) {
	var elements []ast.ClassElement
	for _, el := range c.Body {
		switch el := el.(type) {
		case *ast.FieldDefinition:
			if !el.Static {
				elements = append(elements, el)
			}
		case *ast.MethodDefinition:
			if !el.Static && el.Kind != ast.PropertyConstructor && isPrivateKey(el.Key, el.Computed) {
				elements = append(elements, el)
			}
		}
	}
	if len(elements) == 0 {
		return
	}
	w.op(PUSH_THIS)
	for _, el := range elements {
		switch el := el.(type) {
		case *ast.FieldDefinition:
			w.field(el)
		case *ast.MethodDefinition:
			w.method(el, true)
		}
	}
	w.op(POP)
}

// staticInit writes and calls the static initializer of c, if it has
// static fields or blocks.
func (w *writer) staticInit(c *ast.ClassLiteral) {
	var elements []ast.ClassElement
	for _, el := range c.Body {
		switch el := el.(type) {
		case *ast.FieldDefinition:
			if el.Static {
				elements = append(elements, el)
			}
		case *ast.ClassStaticBlock:
			elements = append(elements, el)
		}
	}
	if len(elements) == 0 {
		return
	}

	skip := w.jump(JMP)
	begin := w.here()
	saved := w.enterFunction(false, false)
	w.op(PUSH_THIS)
	for _, el := range elements {
		switch el := el.(type) {
		case *ast.FieldDefinition:
			w.field(el)
		case *ast.ClassStaticBlock:
			pushed := w.enterScope(el.Scope)
			w.statements(el.Body)
			w.leaveScope(pushed)
		}
	}
	w.op(POP)
	w.op(PUSH_UNDEFINED)
	w.op(RET)
	w.leaveFunction(saved)
	w.patch(skip)

	// [C] -> [C init] with this and the home object bound to C.
	w.op(PUSH_FUNCTION)
	w.pick(2)
	w.op(SET_BIND)
	w.pick(2)
	w.op(SET_CLASS)
	w.jumpTo(SET_ADDRESS, begin)
	w.closures(c)
	w.op(PUSH_ARRAY)
	w.call(CALL, c)
	w.op(POP)
}
