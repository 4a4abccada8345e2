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

package state

import (
	"unicode/utf8"

	"github.com/db47h/lexkit/lexer"
	"github.com/db47h/lexkit/token"
)

// Escapes lists the escape sequences recognized by String: the rune following
// a backslash and its decoded value.
//
var Escapes = map[rune]rune{
	't':  '\t',
	'n':  '\n',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'"':  '"',
}

// String lexes a double quoted string with the escape sequences in Escapes.
//
var String = QuotedString(Escapes)

// QuotedString returns a StateFn that lexes a quoted string and emits it as a
// token.String lexeme with escape sequences decoded. A backslash followed by a
// rune not in escapes stops the lexer with a *lexer.UnexpectedEscapeError. An
// unterminated string stops the lexer with a *lexer.EndInStringError.
//
// When entering the StateFn, the starting delimiter has already been read and
// will be reused as end-delimiter. Line terminators are allowed in strings.
//
func QuotedString(escapes map[rune]rune) lexer.StateFn {
	return func(s *lexer.State) lexer.StateFn {
		buf := make([]byte, 0, 64)
		quote := s.Current()
		start := s.Offset()
		for {
			r := s.Next()
			switch r {
			case quote:
				s.Emit(token.NewString(token.Span{Start: start, End: s.Offset()}, string(buf)))
				return nil
			case lexer.EOF:
				return s.Fail(&lexer.EndInStringError{Start: start})
			case '\\':
				r = s.Next()
				if r == lexer.EOF {
					return s.Fail(&lexer.EndInStringError{Start: start})
				}
				d, ok := escapes[r]
				if !ok {
					return s.Fail(&lexer.UnexpectedEscapeError{Offset: s.Offset(), Char: r})
				}
				buf = utf8.AppendRune(buf, d)
			default:
				buf = utf8.AppendRune(buf, r)
			}
		}
	}
}
