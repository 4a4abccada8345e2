package rule

import (
	"fmt"

	"github.com/db47h/lexkit/token"
)

// BufferExceedsPatternsError is returned when the pending buffer is longer than
// every rule. Buffer holds the pending nodes.
//
type BufferExceedsPatternsError struct {
	Buffer []token.Bracket
}

func (e *BufferExceedsPatternsError) Error() string {
	return fmt.Sprintf("%d pending elements exceed all rule patterns", len(e.Buffer))
}

// Pos returns the start offset of the first pending node.
//
func (e *BufferExceedsPatternsError) Pos() token.Pos {
	return bufferPos(e.Buffer)
}

// BufferUnmatchedError is returned when input ends while some nodes have not
// been matched by any rule. Buffer holds the pending nodes.
//
type BufferUnmatchedError struct {
	Buffer []token.Bracket
}

func (e *BufferUnmatchedError) Error() string {
	return fmt.Sprintf("%d trailing elements cannot be matched against any rule", len(e.Buffer))
}

// Pos returns the start offset of the first pending node.
//
func (e *BufferUnmatchedError) Pos() token.Pos {
	return bufferPos(e.Buffer)
}

func bufferPos(buf []token.Bracket) token.Pos {
	if len(buf) == 0 {
		return 0
	}
	return buf[0].Meta().Start
}
