package scanner

import (
	"unicode/utf8"

	"github.com/t14raptor/go-neo/ast"
)

// Source is a read cursor over the source text.
type Source struct {
	str string
	pos int
}

func NewSource(src string) Source {
	return Source{str: src}
}

func (s *Source) EOF() bool {
	return s.pos >= len(s.str)
}

func (s *Source) Offset() ast.Idx {
	return ast.Idx(s.pos)
}

func (s *Source) EndOffset() ast.Idx {
	return ast.Idx(len(s.str))
}

func (s *Source) SetPosition(pos ast.Idx) {
	s.pos = int(pos)
}

func (s *Source) NextRune() (rune, bool) {
	r, size := s.peekRune()
	if size == 0 {
		return 0, false
	}
	s.pos += size
	return r, true
}

func (s *Source) PeekRune() (rune, bool) {
	r, size := s.peekRune()
	return r, size > 0
}

func (s *Source) peekRune() (rune, int) {
	if s.EOF() {
		return 0, 0
	}
	if b := s.str[s.pos]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRuneInString(s.str[s.pos:])
}

func (s *Source) NextByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	b := s.str[s.pos]
	s.pos++
	return b, true
}

func (s *Source) PeekByte() (byte, bool) {
	if s.EOF() {
		return 0, false
	}
	return s.str[s.pos], true
}

// PeekByteAt looks n bytes past the cursor.
func (s *Source) PeekByteAt(n int) (byte, bool) {
	if s.pos+n >= len(s.str) {
		return 0, false
	}
	return s.str[s.pos+n], true
}

func (s *Source) AdvanceIfByteEquals(b byte) bool {
	if !s.EOF() && s.str[s.pos] == b {
		s.pos++
		return true
	}
	return false
}

func (s *Source) HasPrefix(prefix string) bool {
	return len(s.str)-s.pos >= len(prefix) && s.str[s.pos:s.pos+len(prefix)] == prefix
}

func (s *Source) FromPositionToCurrent(pos ast.Idx) string {
	return s.str[pos:s.pos]
}

func (s *Source) Slice(from, to ast.Idx) string {
	return s.str[from:to]
}
