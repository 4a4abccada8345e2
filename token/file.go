package token

import (
	"fmt"
	"strings"
)

// Position describes an arbitrary source position including the file, line, and column location.
//
type Position struct {
	Filename string
	Offset   Pos // byte offset in the file
	Line     int // 1-based line number
	Column   int // 1-based column number (byte index)
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A File represents a source text. It handles file offset to line/column
// conversion. Line offsets are registered by the lexer as it reads the input.
//
type File struct {
	name  string
	src   string
	lines []Pos // 0-based line/Pos information
}

// NewFile returns a new File. The first line is automatically added at offset 0.
//
func NewFile(name, src string) *File {
	return &File{
		name:  name,
		src:   src,
		lines: []Pos{0},
	}
}

// Name returns the file name.
//
func (f *File) Name() string {
	return f.name
}

// Source returns the file contents.
//
func (f *File) Source() string {
	return f.src
}

// AddLine adds the offset of a new line. Offsets at or before the last known
// line are ignored.
//
func (f *File) AddLine(pos Pos) {
	if l := len(f.lines); f.lines[l-1] >= pos {
		// line already known
		return
	}
	f.lines = append(f.lines, pos)
}

// LineCount returns the number of lines known so far.
//
func (f *File) LineCount() int {
	return len(f.lines)
}

// Position returns the 1-based line and column for a given pos.
//
func (f *File) Position(pos Pos) Position {
	i, j := 0, len(f.lines)
	for i < j {
		h := int(uint(i+j) >> 1)
		if !(f.lines[h] > pos) {
			i = h + 1
		} else {
			j = h
		}
	}
	return Position{f.name, pos, i, int(pos-f.lines[i-1]) + 1}
}

// Line returns the text of the line containing pos, without its line
// terminator.
//
func (f *File) Line(pos Pos) string {
	start := int(f.lines[f.Position(pos).Line-1])
	if start > len(f.src) {
		return ""
	}
	l := f.src[start:]
	if i := strings.IndexAny(l, "\r\n"); i >= 0 {
		l = l[:i]
	}
	return l
}
