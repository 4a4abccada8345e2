package bracket

import (
	"fmt"
	"strconv"

	"github.com/db47h/lexkit/token"
)

// MissingEndBracketError is returned when a bracket is closed by a closing
// bracket of another kind.
//
type MissingEndBracketError struct {
	Initial  token.Pos // opening bracket
	Terminal token.Pos // offending closing bracket
	Found    rune
	Expected rune
}

func (e *MissingEndBracketError) Error() string {
	return fmt.Sprintf("expected %s, found %s (bracket opened at offset %d)",
		strconv.QuoteRune(e.Expected), strconv.QuoteRune(e.Found), e.Initial)
}

// Pos returns the offset of the offending closing bracket.
//
func (e *MissingEndBracketError) Pos() token.Pos {
	return e.Terminal
}

// EOFInsteadOfEndBracketError is returned when the input ends while a bracket
// is still open.
//
type EOFInsteadOfEndBracketError struct {
	Initial  token.Pos
	Expected rune
}

func (e *EOFInsteadOfEndBracketError) Error() string {
	return fmt.Sprintf("end of input while looking for %s", strconv.QuoteRune(e.Expected))
}

// Pos returns the offset of the unclosed bracket.
//
func (e *EOFInsteadOfEndBracketError) Pos() token.Pos {
	return e.Initial
}

// NotAllInputConsumedError is returned when a closing bracket has no matching
// opening bracket.
//
type NotAllInputConsumedError struct {
	Offset token.Pos
}

func (e *NotAllInputConsumedError) Error() string {
	return "unexpected closing bracket"
}

// Pos returns the offset of the unmatched closing bracket.
//
func (e *NotAllInputConsumedError) Pos() token.Pos {
	return e.Offset
}
