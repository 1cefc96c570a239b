package compiler

import "github.com/t14raptor/go-neo/ast"

// bind stores the top of the stack into target and pops it.
func (w *writer) bind(target ast.Pattern) {
	switch t := target.(type) {
	case *ast.Identifier:
		w.opString(STORE, t.Name)
		w.op(POP)
	case *ast.ArrayPattern:
		w.bindArray(t)
	case *ast.ObjectPattern:
		w.bindObject(t)
	default:
		ref, ok := w.reference(target, "Invalid destructuring assignment target")
		if !ok {
			w.op(POP)
			return
		}
		// [v ref] -> [v ref v] -> [v v]
		w.pick(ref.depth + 1)
		ref.set(w)
		w.op(POP)
		w.op(POP)
	}
}

func (w *writer) bindArray(p *ast.ArrayPattern) {
	w.op(ITERATOR)
	for _, el := range p.Elements {
		// [iter] -> [iter v]
		w.op(NEXT)
		w.op(POP)
		if el == nil {
			w.op(POP)
			continue
		}
		w.fallback(el.Default, el.Target)
		w.bind(el.Target)
	}
	if p.Rest != nil {
		w.op(REST)
		w.bind(p.Rest)
	}
	w.op(POP)
}

// bindObject reads each property off the source. With a rest element the
// keys read so far are collected in an array under the source so that
// REST_OBJECT can skip them.
func (w *writer) bindObject(p *ast.ObjectPattern) {
	if p.Rest == nil {
		for _, prop := range p.Properties {
			// [src] -> [src v]
			w.pick(1)
			w.key(prop.Key, prop.Computed)
			w.op(GET_FIELD)
			w.fallback(prop.Default, prop.Value)
			w.bind(prop.Value)
		}
		w.op(POP)
		return
	}

	w.op(PUSH_ARRAY)
	for _, prop := range p.Properties {
		// [src keys] -> [src keys src k] -> [src keys v]
		w.pick(2)
		w.key(prop.Key, prop.Computed)
		w.pick(3)
		w.pick(2)
		w.op(APPEND)
		w.op(POP)
		w.op(GET_FIELD)
		w.fallback(prop.Default, prop.Value)
		w.bind(prop.Value)
	}
	w.op(REST_OBJECT)
	w.bind(p.Rest)
	w.op(POP)
	w.op(POP)
}

// boundNames lists the identifiers a declaration target binds.
func boundNames(target ast.Pattern) []string {
	switch t := target.(type) {
	case *ast.Identifier:
		return []string{t.Name}
	case *ast.ArrayPattern:
		var names []string
		for _, el := range t.Elements {
			if el != nil {
				names = append(names, boundNames(el.Target)...)
			}
		}
		if t.Rest != nil {
			names = append(names, boundNames(t.Rest)...)
		}
		return names
	case *ast.ObjectPattern:
		var names []string
		for _, prop := range t.Properties {
			names = append(names, boundNames(prop.Value)...)
		}
		if t.Rest != nil {
			names = append(names, boundNames(t.Rest)...)
		}
		return names
	}
	return nil
}
