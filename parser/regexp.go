package parser

import (
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/t14raptor/go-neo/ast"
)

// validateRegExp compiles the body of a regular expression literal so that
// malformed patterns are reported at parse time. Patterns with the u or v
// flag use syntax regexp2 does not implement and are accepted unchecked.
func (p *parser) validateRegExp(pattern, flags string, offset ast.Idx) {
	if strings.ContainsAny(flags, "uv") {
		return
	}
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if strings.ContainsRune(flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	if strings.ContainsRune(flags, 'm') {
		opts |= regexp2.Multiline
	}
	if _, err := regexp2.Compile(pattern, opts); err != nil {
		p.errorAt(offset, "Invalid regular expression: /%s/%s: %v", pattern, flags, err)
	}
}
