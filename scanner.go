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

	"github.com/db47h/lexkit/lexer"
	"github.com/db47h/lexkit/token"
)

// A Scanner is a lazy token.Source of lexemes. Lexing only progresses as
// lexemes are pulled with Next. Once Next returns false, Err reports the
// lexical error that stopped the scanner, if any.
//
type Scanner struct {
	l    *lexer.Lexer
	err  error
	done bool
}

// NewScanner returns a new Scanner that lexes f with the canonical language.
//
func NewScanner(f *token.File, opts ...lexer.Option) *Scanner {
	return NewLangScanner(f, defaultLang, opts...)
}

// NewLangScanner returns a new Scanner that lexes f with lang.
//
func NewLangScanner(f *token.File, lang *lexer.Lang, opts ...lexer.Option) *Scanner {
	return &Scanner{l: lexer.New(f, lang.Init(), opts...)}
}

// Next returns the next lexeme. The boolean is false once the input is
// exhausted or a lexical error occurred.
//
func (s *Scanner) Next() (token.Lexeme, bool) {
	if s.done {
		return token.Lexeme{}, false
	}
	l, err := s.l.Lex()
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
		}
		return token.Lexeme{}, false
	}
	return l, true
}

// Err returns the lexical error that stopped the scanner, or nil.
//
func (s *Scanner) Err() error {
	return s.err
}

// File returns the file being scanned.
//
func (s *Scanner) File() *token.File {
	return s.l.File()
}
