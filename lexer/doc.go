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
Package lexer provides the core of a lexer built as a Deterministic Finite
Automaton whose states and associated actions are implemented as functions.

Clients of the package only need to provide state functions specialized in
lexing the target language, or describe it with a Lang. The lexer reads its
input from a token.File, tracks byte offsets and line starts, and supports up to
15 runes of look-ahead via Backup.

State functions

The implementation is similar to https://golang.org/src/text/template/parse/lex.go.
See also Rob Pike's talk about combining states and actions into state
functions: https://talks.golang.org/2011/lex.slide.

A StateFn is both state and action. It takes a *State argument (to allow it to
read from the input stream and emit lexemes) and returns another state function.
The transition loop is simply:

	state = state(s)

The initial state of the DFA is the state where we expect to read a new token.
From that initial state, the lexer transitions to other states until a token is
successfully matched or an error occurs. The state function that finds a match
emits the corresponding lexeme and returns nil to transition back to the initial
state.

All StateFn are written so that upon entering the function, the first character
relevant to that function has already been read and can be retrieved by a call
to Current.

Implementation details

Emitted lexemes are stored in a FIFO queue rather than sent over a channel. The
caller of Lex dequeues them one at a time; the state machine only runs while the
queue is empty, so a caller that stops calling Lex stops the lexer.

End of input and errors

The initial state function must check for EOF and call Done. A state function
that detects a lexical error calls Fail. Both are terminal: once the queue has
been drained, Lex returns io.EOF after Done, or the error passed to Fail. Errors
are sticky.

Languages

A Lang maps exact rune sequences (longest match wins) and rune predicates to
state functions. Lang.Init returns an initial state function that dispatches on
the input. The state sub-package provides the state functions needed to build
most languages: comments, digit runs, identifiers, quoted strings and single
character tokens.
*/
package lexer
