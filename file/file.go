// Package file maps byte offsets in a source unit to human readable
// line/column positions.
package file

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Position describes a location in a source file. Line and Column are
// 1-based; Column counts characters, not bytes.
type Position struct {
	Filename string
	Line     int
	Column   int
	Offset   int
}

// IsValid reports whether the position refers to a line.
func (p Position) IsValid() bool { return p.Line > 0 }

// String renders "file:line:col", dropping the pieces that are unknown.
func (p Position) String() string {
	s := p.Filename
	if p.IsValid() {
		if s != "" {
			s += ":"
		}
		s += fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	if s == "" {
		s = "-"
	}
	return s
}

// Location is a half-open span [Begin, End).
type Location struct {
	Begin Position
	End   Position
}

// File is one source unit. The zero value is not usable; call NewFile.
type File struct {
	name        string
	src         string
	lineOffsets []int
}

func NewFile(filename, src string) *File {
	f := &File{name: filename, src: src, lineOffsets: []int{0}}
	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			i++
			f.lineOffsets = append(f.lineOffsets, i)
			continue
		case c == '\n':
			i++
			f.lineOffsets = append(f.lineOffsets, i)
			continue
		case c >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(src[i:])
			i += size
			if r == '\u2028' || r == '\u2029' {
				f.lineOffsets = append(f.lineOffsets, i)
			}
			continue
		}
		i++
	}
	return f
}

func (f *File) Name() string   { return f.name }
func (f *File) Source() string { return f.src }

// LineCount returns the number of lines in the file.
func (f *File) LineCount() int { return len(f.lineOffsets) }

// Position converts a byte offset into a Position. Offsets past the end are
// clamped to the end of the file.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.src) {
		offset = len(f.src)
	}
	line := sort.Search(len(f.lineOffsets), func(i int) bool {
		return f.lineOffsets[i] > offset
	}) - 1
	start := f.lineOffsets[line]
	return Position{
		Filename: f.name,
		Line:     line + 1,
		Column:   utf8.RuneCountInString(f.src[start:offset]) + 1,
		Offset:   offset,
	}
}

// Location returns the Location of the half-open byte range [start, end).
func (f *File) Location(start, end int) Location {
	return Location{Begin: f.Position(start), End: f.Position(end)}
}

// Line returns the text of the 1-based line n without its terminator.
func (f *File) Line(n int) string {
	if n < 1 || n > len(f.lineOffsets) {
		return ""
	}
	start := f.lineOffsets[n-1]
	end := len(f.src)
	if n < len(f.lineOffsets) {
		end = f.lineOffsets[n]
	}
	line := f.src[start:end]
	for len(line) > 0 {
		switch {
		case line[len(line)-1] == '\n' || line[len(line)-1] == '\r':
			line = line[:len(line)-1]
		case len(line) >= 3 && (line[len(line)-3:] == "\u2028" || line[len(line)-3:] == "\u2029"):
			line = line[:len(line)-3]
		default:
			return line
		}
	}
	return line
}
