package ast

import (
	"fmt"
	"math/big"
	"reflect"
	"unicode"
	"unicode/utf8"

	"github.com/t14raptor/go-neo/file"
)

var (
	nodeType     = reflect.TypeOf((*Node)(nil)).Elem()
	scopeType    = reflect.TypeOf((*Scope)(nil))
	spanType     = reflect.TypeOf(Span{})
	envType      = reflect.TypeOf(Env{})
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// Serialize renders n as a tree of maps, slices and scalars suitable for
// JSON or YAML encoding. Each node becomes a map with "type" and
// "location" keys, a "scope" key when the node opens a scope, a "closure"
// key for function-like nodes, and one key per child field. f may be nil,
// in which case locations are reported as byte offsets only.
func Serialize(n Node, f *file.File) map[string]any {
	if isNil(reflect.ValueOf(n)) {
		return nil
	}
	s := serializer{file: f}
	return s.node(reflect.ValueOf(n))
}

type serializer struct {
	file *file.File
}

func (s *serializer) node(v reflect.Value) map[string]any {
	n := v.Interface().(Node)
	elem := v.Elem()
	out := map[string]any{
		"type":     elem.Type().Name(),
		"location": s.location(n),
	}
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Type().Field(i)
		fv := elem.Field(i)
		switch {
		case field.Type == spanType:
			continue
		case field.Type == envType:
			env := fv.Addr().Interface().(*Env)
			out["scope"] = serializeScope(env.Scope)
			if env.NameScope != nil {
				out["nameScope"] = serializeScope(env.NameScope)
			}
			names := make([]string, len(env.Closure))
			for i, id := range env.Closure {
				names[i] = id.Name
			}
			out["closure"] = names
			continue
		case field.Type == scopeType:
			out["scope"] = serializeScope(fv.Interface().(*Scope))
			continue
		case field.Type == reflect.TypeOf((*file.File)(nil)):
			continue
		}
		if val, ok := s.value(fv); ok {
			out[lowerFirst(field.Name)] = val
		}
	}
	return out
}

func (s *serializer) value(v reflect.Value) (any, bool) {
	if v.Type().Implements(nodeType) || v.Kind() == reflect.Interface {
		if isNil(v) {
			return nil, true
		}
		if v.Kind() == reflect.Interface {
			v = v.Elem()
		}
		if v.Type().Implements(nodeType) {
			return s.node(v), true
		}
	}
	if b, ok := v.Interface().(*big.Int); ok {
		if b == nil {
			return nil, true
		}
		return b.String(), true
	}
	if v.Type().Implements(stringerType) && v.Kind() != reflect.Pointer {
		return v.Interface().(fmt.Stringer).String(), true
	}
	switch v.Kind() {
	case reflect.Slice:
		list := make([]any, v.Len())
		for i := range list {
			list[i], _ = s.value(v.Index(i))
		}
		return list, true
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return v.Bool(), true
	case reflect.Float64:
		return v.Float(), true
	case reflect.Int:
		return v.Int(), true
	}
	return nil, false
}

func (s *serializer) location(n Node) map[string]any {
	if s.file == nil {
		return map[string]any{
			"begin": map[string]any{"offset": int(n.Idx0())},
			"end":   map[string]any{"offset": int(n.Idx1())},
		}
	}
	loc := s.file.Location(int(n.Idx0()), int(n.Idx1()))
	return map[string]any{
		"begin": position(loc.Begin),
		"end":   position(loc.End),
	}
}

func position(p file.Position) map[string]any {
	return map[string]any{"line": p.Line, "column": p.Column, "offset": p.Offset}
}

func serializeScope(sc *Scope) map[string]any {
	if sc == nil {
		return nil
	}
	vars := make([]any, len(sc.Variables))
	for i, v := range sc.Variables {
		vars[i] = map[string]any{"name": v.Name, "kind": v.Kind.String()}
	}
	return map[string]any{
		"kind":      sc.Kind.String(),
		"async":     sc.Async,
		"generator": sc.Generator,
		"variables": vars,
	}
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map:
		return v.IsNil()
	}
	return false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}
