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

// Package state provides state functions for lexing comments, digit runs,
// identifiers, quoted strings and single character tokens.
//
// State functions in this package expect that the first character that is
// part of the lexed entity has already been read by State.Next. This is what
// lexer.Lang does before switching to a registered state. For example:
//
//	lang := lexer.NewLang(state.Punct)
//	lang.Match("//", state.LineComment)
//	lang.MatchAny("(", state.Emit(token.LParen))
//	lang.MatchFn(state.IsDigit, state.Run(token.Number, state.IsDigit))
//
// State functions in this package hold no state of their own and can be
// shared between lexers.
//
package state

import (
	"unicode"

	"github.com/db47h/lexkit/lexer"
	"github.com/db47h/lexkit/token"
)

// Emit returns a state function that emits a lexeme of the fixed kind k for
// the current rune.
//
func Emit(k token.Kind) lexer.StateFn {
	return func(s *lexer.State) lexer.StateFn {
		s.Emit(token.New(k, token.Single(s.Offset())))
		return nil
	}
}

// Punct emits the current rune as a Punct lexeme.
//
func Punct(s *lexer.State) lexer.StateFn {
	s.Emit(token.NewPunct(token.Single(s.Offset()), s.Current()))
	return nil
}

// Space skips the current rune and any white space following it.
//
func Space(s *lexer.State) lexer.StateFn {
	for unicode.IsSpace(s.Peek()) {
		s.Next()
	}
	return nil
}

// LineComment skips input up to, but not including, the next line terminator
// or EOF.
//
func LineComment(s *lexer.State) lexer.StateFn {
	for {
		switch s.Peek() {
		case '\n', '\r', lexer.EOF:
			return nil
		}
		s.Next()
	}
}

// NestedComment returns a state function that skips a block comment delimited
// by the two-rune sequences open and close. Comments nest: every open sequence
// met inside the comment must be matched by its own close sequence. When
// entering the StateFn, the opening sequence has already been read.
//
// A comment left open at the end of input is silently discarded.
//
func NestedComment(open, close string) lexer.StateFn {
	o, c := []rune(open), []rune(close)
	if len(o) != 2 || len(c) != 2 {
		panic("comment delimiters must be two runes long")
	}
	return func(s *lexer.State) lexer.StateFn {
		depth := 1
		for {
			switch r := s.Next(); {
			case r == lexer.EOF:
				return nil
			case r == o[0] && s.Peek() == o[1]:
				s.Next()
				depth++
			case r == c[0] && s.Peek() == c[1]:
				s.Next()
				if depth--; depth == 0 {
					return nil
				}
			}
		}
	}
}

// BlockComment skips a C style /* */ comment. Block comments nest.
//
var BlockComment = NestedComment("/*", "*/")
