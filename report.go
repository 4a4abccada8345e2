// Copyright 2017-2020 Denis Bernard <db047h@gmail.com>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.

package lexkit

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/db47h/lexkit/token"
	"github.com/fatih/color"
	"golang.org/x/text/width"
)

// A Positioner is an error that knows its location in the source.
//
type Positioner interface {
	error
	Pos() token.Pos
}

var (
	errColor   = color.New(color.FgRed, color.Bold)
	locColor   = color.New(color.Bold)
	caretColor = color.New(color.FgGreen, color.Bold)
)

// Report writes a human readable diagnostic for err to w. If err, or any error
// it wraps, is a Positioner, the diagnostic is of the form:
//
//	name:line:col: error: message
//	source line
//	      ^
//
// Otherwise only the error message is printed. The output is colorized unless
// color.NoColor is set.
//
// f must be the file whose lexing, directly or not, produced err. The line
// table of f must have been filled by lexing up to the error position.
//
func Report(w io.Writer, f *token.File, err error) error {
	var p Positioner
	if f == nil || !errors.As(err, &p) {
		_, werr := fmt.Fprintf(w, "%s %v\n", errColor.Sprint("error:"), err)
		return werr
	}
	pos := f.Position(p.Pos())
	line := f.Line(p.Pos())
	_, werr := fmt.Fprintf(w, "%s %s %v\n%s\n%s%s\n",
		locColor.Sprintf("%s:", pos),
		errColor.Sprint("error:"),
		err,
		line,
		caretPad(line, pos.Column-1),
		caretColor.Sprint("^"))
	return werr
}

// caretPad returns the padding needed to put a caret under byte offset n of
// line in a terminal. Tabs are kept as is and East Asian wide characters count
// for two cells.
//
func caretPad(line string, n int) string {
	var sb strings.Builder
	for i, r := range line {
		if i >= n {
			return sb.String()
		}
		switch r {
		case '\t':
			sb.WriteByte('\t')
		default:
			switch width.LookupRune(r).Kind() {
			case width.EastAsianWide, width.EastAsianFullwidth:
				sb.WriteString("  ")
			default:
				sb.WriteByte(' ')
			}
		}
	}
	// past the end of line
	if n > len(line) {
		sb.WriteString(strings.Repeat(" ", n-len(line)))
	}
	return sb.String()
}
