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
	"unicode"
	"unicode/utf8"

	"github.com/db47h/lexkit/lexer"
	"github.com/db47h/lexkit/token"
)

// IsDigit returns true for decimal digits. Other numeric characters, like
// superscripts or roman numerals, do not start a digit run.
//
func IsDigit(r rune) bool {
	return unicode.IsDigit(r)
}

// IsIdentStart returns true for runes that can start an identifier: alphabetic
// characters, including combining vowel signs and letter numbers, and '_'.
//
func IsIdentStart(r rune) bool {
	return unicode.IsLetter(r) ||
		unicode.Is(unicode.Other_Alphabetic, r) ||
		unicode.Is(unicode.Nl, r) ||
		r == '_'
}

// IsIdentChar returns true for runes that can continue an identifier:
// alphabetic and numeric characters and '_'.
//
func IsIdentChar(r rune) bool {
	return IsIdentStart(r) || unicode.IsNumber(r)
}

// Run returns a state function that lexes the maximal run of runes starting
// with the current rune and continuing while cont returns true for the next
// rune. It then emits a lexeme of kind k with the raw text of the run. k must
// be a text kind (token.Number, token.Symbol or token.String).
//
func Run(k token.Kind, cont func(r rune) bool) lexer.StateFn {
	return func(s *lexer.State) lexer.StateFn {
		buf := make([]byte, 0, 16)
		start := s.Offset()
		buf = utf8.AppendRune(buf, s.Current())
		for cont(s.Peek()) {
			buf = utf8.AppendRune(buf, s.Next())
		}
		s.Emit(token.Lexeme{
			Kind: k,
			Span: token.Span{Start: start, End: s.Offset()},
			Text: string(buf),
		})
		return nil
	}
}

// Digits lexes a run of digits as a token.Number.
//
var Digits = Run(token.Number, IsDigit)

// Identifier lexes an identifier as a token.Symbol. The first rune is not
// checked.
//
var Identifier = Run(token.Symbol, IsIdentChar)

// Decimal lexes a decimal literal as a token.Number: a run of digits optionally
// followed by a fractional part and an exponent, as in 12, 1.5, 2e10 or
// 6.02E+23. A decimal separator or exponent marker that is not followed by a
// digit is left for the next token. Signs are never part of the literal.
//
// Decimal is not used by the canonical language, which lexes digit runs only.
//
func Decimal(s *lexer.State) lexer.StateFn {
	buf := make([]byte, 0, 32)
	start := s.Offset()
	buf = utf8.AppendRune(buf, s.Current())
	buf = appendDigits(s, buf)

	if s.Peek() == '.' {
		s.Next()
		if !IsDigit(s.Peek()) {
			s.Backup()
		} else {
			buf = appendDigits(s, append(buf, '.'))
		}
	}

	if e := s.Peek(); e == 'e' || e == 'E' {
		s.Next()
		n := 1
		sign := s.Peek()
		if sign == '+' || sign == '-' {
			s.Next()
			n++
		}
		if !IsDigit(s.Peek()) {
			for ; n > 0; n-- {
				s.Backup()
			}
		} else {
			buf = append(buf, byte(e))
			if n == 2 {
				buf = append(buf, byte(sign))
			}
			buf = appendDigits(s, buf)
		}
	}

	s.Emit(token.NewNumber(token.Span{Start: start, End: s.Offset()}, string(buf)))
	return nil
}

func appendDigits(s *lexer.State, buf []byte) []byte {
	for IsDigit(s.Peek()) {
		buf = utf8.AppendRune(buf, s.Next())
	}
	return buf
}
