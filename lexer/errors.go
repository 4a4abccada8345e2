package lexer

import (
	"fmt"
	"strconv"

	"github.com/db47h/lexkit/token"
)

// EndInStringError reports a quoted string left unterminated at the end of the
// input. Start is the offset of the opening quote.
//
type EndInStringError struct {
	Start token.Pos
}

func (e *EndInStringError) Error() string {
	return "encountered end of input in string"
}

// Pos returns the offset of the opening quote.
//
func (e *EndInStringError) Pos() token.Pos {
	return e.Start
}

// UnexpectedEscapeError reports an unrecognized escape sequence in a string.
// Offset is the position of the character following the backslash.
//
type UnexpectedEscapeError struct {
	Offset token.Pos
	Char   rune
}

func (e *UnexpectedEscapeError) Error() string {
	return fmt.Sprintf("unexpected escape %s in string", strconv.QuoteRune(e.Char))
}

// Pos returns the offset of the offending character.
//
func (e *UnexpectedEscapeError) Pos() token.Pos {
	return e.Offset
}

// SourceTooLargeError is returned when the source text cannot be addressed
// with a token.Pos.
//
type SourceTooLargeError struct {
	Len int
	Err error
}

func (e *SourceTooLargeError) Error() string {
	return fmt.Sprintf("source too large (%d bytes): %v", e.Len, e.Err)
}

func (e *SourceTooLargeError) Unwrap() error {
	return e.Err
}
