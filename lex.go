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
	"io"
	"unicode"

	"github.com/db47h/lexkit/lexer"
	"github.com/db47h/lexkit/lexer/state"
	"github.com/db47h/lexkit/token"
)

var defaultLang = DefaultLang()

// DefaultLang returns a new instance of the canonical language. Callers can
// register additional entries on the returned Lang without affecting Lex.
//
func DefaultLang() *lexer.Lang {
	l := lexer.NewLang(state.Punct)
	l.MatchFn(unicode.IsSpace, state.Space)
	l.MatchFn(state.IsDigit, state.Digits)
	l.MatchFn(state.IsIdentStart, state.Identifier)
	l.Match("//", state.LineComment)
	l.Match("/*", state.BlockComment)
	l.Match(`"`, state.String)
	l.MatchAny("(", state.Emit(token.LParen))
	l.MatchAny(")", state.Emit(token.RParen))
	l.MatchAny("<", state.Emit(token.LAngle))
	l.MatchAny(">", state.Emit(token.RAngle))
	l.MatchAny("{", state.Emit(token.LCurl))
	l.MatchAny("}", state.Emit(token.RCurl))
	l.MatchAny("[", state.Emit(token.LSquare))
	l.MatchAny("]", state.Emit(token.RSquare))
	return l
}

// Lex lexes src with the canonical language and returns all its lexemes. On
// error, no lexemes are returned.
//
func Lex(src string) ([]token.Lexeme, error) {
	return LexFile(token.NewFile("", src))
}

// LexFile is like Lex but reads from f. The line table of f is filled as a side
// effect, so that f can be used afterwards to report errors.
//
func LexFile(f *token.File, opts ...lexer.Option) ([]token.Lexeme, error) {
	l := lexer.New(f, defaultLang.Init(), opts...)
	var ls []token.Lexeme
	for {
		lx, err := l.Lex()
		if err == io.EOF {
			return ls, nil
		}
		if err != nil {
			return nil, err
		}
		ls = append(ls, lx)
	}
}
