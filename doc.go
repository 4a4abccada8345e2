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

/*
Package lexkit is a toolkit for building lightweight, grammar-agnostic front
ends for textual languages.

The toolkit is organized in layers that feed each other:

	source text
	  -> lexer (package lexer, driven by a Lang)   -> []token.Lexeme
	  -> pattern.Process / pattern.Group (lazy)     -> token.Source[token.Lexeme]
	  -> bracket.Build                              -> []token.Bracket
	  -> rule.Process                               -> []T

This package provides the canonical language used by Lex: whitespace and
nested comments are skipped, brackets ()<>{}[] map to their own lexeme kinds,
digit runs become Numbers, identifiers become Symbols, double quoted strings
are decoded and every other character becomes a Punct lexeme.

Lex fully materializes the lexemes of a source text. NewScanner exposes the
same lexer as a lazy token.Source so that pattern passes can pull lexemes on
demand.

Errors

All errors are values of exported struct types. Errors that locate themselves
in the source implement

	interface{ Pos() token.Pos }

and can be rendered with Report, which prints the offending source line and a
caret under the error position.
*/
package lexkit
