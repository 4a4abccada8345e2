package token

import (
	"fmt"
	"strings"
)

// BracketKind identifies the variant of a Bracket node.
//
type BracketKind uint8

// Bracket kinds.
//
const (
	Lex    BracketKind = iota // leaf wrapping a non-bracket lexeme
	Paren                     // ( ... )
	Angle                     // < ... >
	Curl                      // { ... }
	Square                    // [ ... ]
)

var bracketNames = [...]string{
	Lex:    "Lex",
	Paren:  "Paren",
	Angle:  "Angle",
	Curl:   "Curl",
	Square: "Square",
}

func (k BracketKind) String() string {
	if int(k) < len(bracketNames) {
		return bracketNames[k]
	}
	return fmt.Sprintf("BracketKind(%d)", k)
}

var bracketChars = [...][2]rune{
	Paren:  {'(', ')'},
	Angle:  {'<', '>'},
	Curl:   {'{', '}'},
	Square: {'[', ']'},
}

// Open returns the opening delimiter of k, or 0 for Lex.
//
func (k BracketKind) Open() rune {
	if k == Lex || int(k) >= len(bracketChars) {
		return 0
	}
	return bracketChars[k][0]
}

// Close returns the closing delimiter of k, or 0 for Lex.
//
func (k BracketKind) Close() rune {
	if k == Lex || int(k) >= len(bracketChars) {
		return 0
	}
	return bracketChars[k][1]
}

// BracketOf returns the bracket kind opened or closed by lexeme kind k. The
// boolean is false if k is not a bracket delimiter.
//
func BracketOf(k Kind) (BracketKind, bool) {
	switch k {
	case LParen, RParen:
		return Paren, true
	case LAngle, RAngle:
		return Angle, true
	case LCurl, RCurl:
		return Curl, true
	case LSquare, RSquare:
		return Square, true
	}
	return Lex, false
}

// Bracket is a node of a bracket tree: either a matched delimiter pair with its
// nested content, or a Lex leaf wrapping one non-bracket lexeme.
//
type Bracket struct {
	Kind     BracketKind
	Span     Span // covers both delimiters; unused for leaves
	Lexeme   Lexeme
	Children []Bracket
}

// Leaf wraps l into a Lex node.
//
func Leaf(l Lexeme) Bracket {
	return Bracket{Kind: Lex, Lexeme: l}
}

// NewBracket returns a delimited node. The children slice is owned by the
// returned node.
//
func NewBracket(k BracketKind, s Span, children []Bracket) Bracket {
	return Bracket{Kind: k, Span: s, Children: children}
}

// Meta returns the node's span. For leaves, this is the span of the wrapped
// lexeme.
//
func (b Bracket) Meta() Span {
	if b.Kind == Lex {
		return b.Lexeme.Span
	}
	return b.Span
}

// Value returns the concatenated values of the node: the delimiters and the
// values of all children for bracket nodes, the lexeme value for leaves.
//
func (b Bracket) Value() string {
	var sb strings.Builder
	b.writeValue(&sb)
	return sb.String()
}

func (b Bracket) writeValue(sb *strings.Builder) {
	if b.Kind == Lex {
		sb.WriteString(b.Lexeme.Value())
		return
	}
	sb.WriteRune(b.Kind.Open())
	for i := range b.Children {
		b.Children[i].writeValue(sb)
	}
	sb.WriteRune(b.Kind.Close())
}

// LMatch reports whether b and o are structurally equal, ignoring spans.
//
func (b Bracket) LMatch(o Bracket) bool {
	if b.Kind != o.Kind {
		return false
	}
	if b.Kind == Lex {
		return b.Lexeme.LMatch(o.Lexeme)
	}
	if len(b.Children) != len(o.Children) {
		return false
	}
	for i := range b.Children {
		if !b.Children[i].LMatch(o.Children[i]) {
			return false
		}
	}
	return true
}

// String returns a representation of the node for debugging purposes.
//
func (b Bracket) String() string {
	if b.Kind == Lex {
		return b.Lexeme.String()
	}
	parts := make([]string, len(b.Children))
	for i := range b.Children {
		parts[i] = b.Children[i].String()
	}
	return fmt.Sprintf("%s [%s] @%s", b.Kind, strings.Join(parts, ", "), b.Span)
}
