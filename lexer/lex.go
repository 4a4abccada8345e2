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

package lexer

import (
	"io"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/db47h/lexkit/token"
)

// EOF is the return value from Next() when EOF is reached.
//
const EOF rune = -1

// Undo buffer constants.
//
const (
	BackupBufferSize = 16 // BackupBufferSize is the size of the undo buffer.
	undoMask         = BackupBufferSize - 1
)

// noPos marks undo slots that hold no rune.
const noPos = -1

// queue is a FIFO queue.
//
type queue struct {
	items []token.Lexeme
	head  int
	tail  int
	count int
}

func (q *queue) push(l token.Lexeme) {
	if q.head == q.tail && q.count > 0 {
		items := make([]token.Lexeme, len(q.items)*2)
		copy(items, q.items[q.head:])
		copy(items[len(q.items)-q.head:], q.items[:q.head])
		q.head = 0
		q.tail = len(q.items)
		q.items = items
	}
	q.items[q.tail] = l
	q.tail = (q.tail + 1) % len(q.items)
	q.count++
}

// pop pops the first item from the queue. Callers must check that q.count > 0 beforehand.
//
func (q *queue) pop() token.Lexeme {
	i := q.head
	q.head = (q.head + 1) % len(q.items)
	q.count--
	l := q.items[i]
	q.items[i] = token.Lexeme{}
	return l
}

// Lexer wraps the public methods of a lexer. This interface is intended for
// clients that call New(), then Lex() until an error is returned.
//
type Lexer state

// State holds the internal state of the lexer while processing a given input.
// Its methods should only be called from StateFn functions.
//
type State state

type undo struct {
	p int
	r rune
}

type state struct {
	undo   [BackupBufferSize]undo // undo buffer
	queue                         // Lexeme queue
	f      *token.File
	src    string
	state  StateFn // current state
	init   StateFn // current initial-state function.
	r      int     // read offset in src
	ur, uh int     // undo buffer read pos and head
	ts     token.Pos
	end    bool  // Done or Fail called
	err    error // terminal error, io.EOF after Done
	onErr  func(error)
}

// A StateFn is a state function.
//
// If a StateFn returns nil, the lexer transitions back to its initial state
// function.
//
type StateFn func(s *State) StateFn

// New creates a new lexer associated with the given source file. A new lexer
// must be created for every source file to be lexed.
//
// Sources longer than what a token.Pos can address are rejected: the first
// call to Lex returns a *SourceTooLargeError.
//
func New(f *token.File, init StateFn, opts ...Option) *Lexer {
	o := options{queueSize: 2}
	for _, opt := range opts {
		opt(&o)
	}
	s := &state{
		queue: queue{items: make([]token.Lexeme, o.queueSize)},
		f:     f,
		src:   f.Source(),
		init:  init,
		uh:    1,
		onErr: o.onError,
	}
	for i := range s.undo {
		s.undo[i] = undo{noPos, utf8.RuneSelf}
	}
	if _, err := safecast.Conv[uint32](len(s.src)); err != nil {
		(*State)(s).Fail(&SourceTooLargeError{Len: len(s.src), Err: err})
	}
	return (*Lexer)(s)
}

// Init (re-)sets the initial state function for the lexer. It can be used by
// state functions to implement context switches. This function returns its
// argument.
//
func (s *State) Init(initState StateFn) StateFn {
	s.init = initState
	return initState
}

// Lex returns the next lexeme. Once all lexemes have been returned, Lex returns
// io.EOF if the input was fully consumed, or the lexical error that stopped the
// lexer. Any subsequent call returns the same error.
//
func (l *Lexer) Lex() (token.Lexeme, error) {
	for l.count == 0 {
		if l.end {
			return token.Lexeme{}, l.err
		}
		st := (*State)(l)
		if l.state == nil {
			l.state = l.init(st)
		} else {
			l.state = l.state(st)
		}
	}
	return l.pop(), nil
}

// File returns the File used as input for the lexer.
//
func (l *Lexer) File() *token.File {
	return l.f
}

// Emit queues a lexeme.
//
func (s *State) Emit(l token.Lexeme) {
	s.push(l)
}

// Done marks the end of input. Lexemes already emitted will still be returned
// by Lex, followed by io.EOF. Done returns nil so that it can be used as a
// state function's return value.
//
func (s *State) Done() StateFn {
	if !s.end {
		s.end = true
		s.err = io.EOF
	}
	return nil
}

// Fail stops the lexer with err. Lexemes already emitted will still be returned
// by Lex, followed by err. Fail returns nil so that it can be used as a
// state function's return value.
//
func (s *State) Fail(err error) StateFn {
	if !s.end {
		s.end = true
		s.err = err
		if s.onErr != nil {
			s.onErr(err)
		}
	}
	return nil
}

// Next returns the next rune in the input stream. If the end of the input
// has been reached it will return EOF.
//
// Invalid UTF-8 bytes are returned as utf8.RuneError, one byte at a time.
//
func (s *State) Next() rune {
	// read from undo buffer
	u := (s.ur + 1) & undoMask
	if u != s.uh {
		s.ur = u
		return s.undo[s.ur].r
	}

	pos := s.r
	if pos >= len(s.src) {
		if s.undo[s.ur].r != EOF {
			s.pushUndo(pos, EOF)
		}
		return EOF
	}

	// Common case: ASCII
	if b := s.src[pos]; b < utf8.RuneSelf {
		s.r++
		if b == '\n' {
			s.f.AddLine(token.Pos(s.r))
		}
		s.pushUndo(pos, rune(b))
		return rune(b)
	}

	r, w := utf8.DecodeRuneInString(s.src[pos:])
	s.r += w
	s.pushUndo(pos, r)
	return r
}

func (s *State) pushUndo(p int, r rune) {
	s.ur = s.uh
	s.undo[s.uh] = undo{p, r}
	s.uh = (s.uh + 1) & undoMask
	s.undo[s.uh] = undo{noPos, utf8.RuneSelf}
}

// Backup reverts the last call to Next. Backup can be called at most
// (BackupBufferSize-1) times in a row (i.e. with no calls to Next in between).
// Calling Backup beyond the start of the undo buffer or at the beginning
// of the input stream will fail silently, Pos will return an invalid position
// and Current will return utf8.RuneSelf, a value impossible to get
// by any other means.
//
func (s *State) Backup() {
	if s.undo[s.ur].p == noPos {
		return
	}
	s.ur = (s.ur - 1) & undoMask
}

// Current returns the last rune returned by State.Next.
//
func (s *State) Current() rune {
	return s.undo[s.ur].r
}

// Pos returns the byte offset of the last rune returned by State.Next. The
// boolean is false if no input has been read yet.
//
func (s *State) Pos() (token.Pos, bool) {
	p := s.undo[s.ur].p
	if p == noPos {
		return 0, false
	}
	return token.Pos(p), true
}

// Offset returns the byte offset of the last rune returned by State.Next, or 0
// if no input has been read yet. This is the common case for state functions,
// which always run after at least one call to Next.
//
func (s *State) Offset() token.Pos {
	p, _ := s.Pos()
	return p
}

// Peek returns the next rune in the input stream without consuming it. This
// is equivalent to calling Next followed by Backup. At EOF, it simply returns
// EOF.
//
func (s *State) Peek() rune {
	if s.Current() == EOF {
		return EOF
	}
	r := s.Next()
	s.Backup()
	return r
}

// StartToken sets p as a token start position. This is a utility function that
// when used in conjunction with TokenPos enables tracking of a token start
// position across a StateFn chain without having to manually keep track of it
// via closures or function parameters.
//
func (s *State) StartToken(p token.Pos) {
	s.ts = p
}

// TokenPos returns the position set by StartToken.
//
func (s *State) TokenPos() token.Pos {
	return s.ts
}
