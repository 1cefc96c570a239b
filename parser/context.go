package parser

// context holds the grammar flags of the region being parsed. A new
// context is opened for every function body and class.
type context struct {
	outer       *context
	allowIn     bool
	inIteration bool
	inSwitch    bool
	inFunction  bool
	inClass     bool

	// allowSuperCall is set inside constructors of derived classes,
	// allowSuperProperty inside methods, accessors and field initializers.
	allowSuperCall     bool
	allowSuperProperty bool
	allowNewTarget     bool

	labels []label
}

type label struct {
	name string
	// loop is set when the label names an iteration statement, making it
	// a valid continue target.
	loop bool
}

func (p *parser) openContext() *context {
	p.ctx = &context{
		outer:   p.ctx,
		allowIn: true,
	}
	return p.ctx
}

// openFunctionContext opens the context of a function body. Labels and
// loop state do not cross function boundaries; super access follows the
// enclosing method unless the function is an arrow.
func (p *parser) openFunctionContext(arrow bool) *context {
	outer := p.ctx
	ctx := p.openContext()
	ctx.inFunction = true
	ctx.allowNewTarget = true
	if outer != nil {
		ctx.inClass = outer.inClass
		if arrow {
			ctx.inFunction = outer.inFunction
			ctx.allowNewTarget = outer.allowNewTarget
			ctx.allowSuperCall = outer.allowSuperCall
			ctx.allowSuperProperty = outer.allowSuperProperty
		}
	}
	return ctx
}

func (p *parser) closeContext() {
	p.ctx = p.ctx.outer
}

// setAllowIn changes whether the in operator is allowed and returns a
// function that restores the previous state.
func (p *parser) setAllowIn(allow bool) func() {
	prev := p.ctx.allowIn
	p.ctx.allowIn = allow
	return func() { p.ctx.allowIn = prev }
}

func (c *context) hasLabel(name string) (label, bool) {
	for i := len(c.labels) - 1; i >= 0; i-- {
		if c.labels[i].name == name {
			return c.labels[i], true
		}
	}
	return label{}, false
}
