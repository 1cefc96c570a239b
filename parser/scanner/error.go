package scanner

import (
	"fmt"

	"github.com/t14raptor/go-neo/ast"
)

// Error describes a malformed token. It travels inside an Error-kind token
// until the parser consumes it.
type Error struct {
	Message string
	Start   ast.Idx
	End     ast.Idx
}

func (d Error) Error() string {
	return d.Message
}

func invalidCharacter(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Invalid or unexpected token `%c`", c),
		Start:   start,
		End:     end,
	}
}

func unterminatedString(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated string",
		Start:   start,
		End:     end,
	}
}

func unterminatedTemplateLiteral(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated template literal",
		Start:   start,
		End:     end,
	}
}

func unterminatedMultiLineComment(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated multiline comment",
		Start:   start,
		End:     end,
	}
}

func unterminatedRegExp(start, end ast.Idx) Error {
	return Error{
		Message: "Unterminated regular expression",
		Start:   start,
		End:     end,
	}
}

func invalidEscapeSequence(start, end ast.Idx) Error {
	return Error{
		Message: "Invalid escape sequence",
		Start:   start,
		End:     end,
	}
}

func octalEscapeSequence(start, end ast.Idx) Error {
	return Error{
		Message: "Octal escape sequences are not allowed",
		Start:   start,
		End:     end,
	}
}

func invalidNumberEnd(start, end ast.Idx) Error {
	return Error{
		Message: "Invalid characters after number",
		Start:   start,
		End:     end,
	}
}

func invalidNumber(start, end ast.Idx) Error {
	return Error{
		Message: "Invalid number",
		Start:   start,
		End:     end,
	}
}

func invalidDigit(c byte, base int, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Invalid digit `%c` in base %d literal", c, base),
		Start:   start,
		End:     end,
	}
}

func invalidSeparator(start, end ast.Idx) Error {
	return Error{
		Message: "Numeric separators are not allowed here",
		Start:   start,
		End:     end,
	}
}

func legacyOctal(start, end ast.Idx) Error {
	return Error{
		Message: "Legacy octal literals are not allowed",
		Start:   start,
		End:     end,
	}
}

func invalidUnicodeEscapeSequence(start, end ast.Idx) Error {
	return Error{
		Message: "Invalid Unicode escape sequence",
		Start:   start,
		End:     end,
	}
}

func regExpFlag(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Invalid regular expression flag `%c`", c),
		Start:   start,
		End:     end,
	}
}

func regExpFlagTwice(c rune, start, end ast.Idx) Error {
	return Error{
		Message: fmt.Sprintf("Duplicate regular expression flag `%c`", c),
		Start:   start,
		End:     end,
	}
}
