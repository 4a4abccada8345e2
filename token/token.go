// Package token defines the position-tagged values produced and consumed by
// the lexkit engines: byte spans, lexemes and bracket trees.
//
// All values are immutable once built. Engines never edit a sequence in place,
// they build new ones.
//
package token

import (
	"fmt"
	"strings"
)

// Pos represents a byte offset within a source text.
//
type Pos uint32

// Span is an inclusive byte range {Start, End} in the original source. For a
// single character token, Start == End. For a multi-character token, End is the
// offset of the first byte of its last character.
//
type Span struct {
	Start Pos
	End   Pos
}

// Single returns the span of a single character at p.
//
func Single(p Pos) Span {
	return Span{p, p}
}

// Cover returns a span starting at first.Start and ending at last.End.
//
func Cover(first, last Span) Span {
	return Span{first.Start, last.End}
}

// Contains returns true if o lies within s.
//
func (s Span) Contains(o Span) bool {
	return s.Start <= o.Start && o.End <= s.End
}

func (s Span) String() string {
	if s.Start == s.End {
		return fmt.Sprintf("%d", s.Start)
	}
	return fmt.Sprintf("%d-%d", s.Start, s.End)
}

// Kind identifies the variant of a Lexeme.
//
type Kind uint8

// Lexeme kinds.
//
const (
	Invalid Kind = iota
	LParen       // (
	RParen       // )
	LAngle       // <
	RAngle       // >
	LCurl        // {
	RCurl        // }
	LSquare      // [
	RSquare      // ]
	Punct        // any other single punctuation character
	String       // quoted string, escapes decoded
	Number       // run of digits
	Symbol       // identifier
	Group        // synthetic run of lexemes, built by the pattern engine
)

var kindNames = [...]string{
	Invalid: "Invalid",
	LParen:  "LParen",
	RParen:  "RParen",
	LAngle:  "LAngle",
	RAngle:  "RAngle",
	LCurl:   "LCurl",
	RCurl:   "RCurl",
	LSquare: "LSquare",
	RSquare: "RSquare",
	Punct:   "Punct",
	String:  "String",
	Number:  "Number",
	Symbol:  "Symbol",
	Group:   "Group",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// delimiters maps the fixed single-character kinds to their text.
var delimiters = [...]string{
	LParen:  "(",
	RParen:  ")",
	LAngle:  "<",
	RAngle:  ">",
	LCurl:   "{",
	RCurl:   "}",
	LSquare: "[",
	RSquare: "]",
}

// IsOpen returns true for opening bracket kinds.
//
func (k Kind) IsOpen() bool {
	return k == LParen || k == LAngle || k == LCurl || k == LSquare
}

// IsClose returns true for closing bracket kinds.
//
func (k Kind) IsClose() bool {
	return k == RParen || k == RAngle || k == RCurl || k == RSquare
}

// Lexeme is a single classified token. Which fields are meaningful depends on
// Kind:
//
//	Punct:                  Char
//	String, Number, Symbol: Text
//	Group:                  Text (the label) and Children
//
// Use the New* constructors rather than building Lexemes by hand.
//
type Lexeme struct {
	Kind     Kind
	Span     Span
	Char     rune
	Text     string
	Children []Lexeme
}

// New returns a lexeme of one of the fixed bracket kinds.
//
func New(k Kind, s Span) Lexeme {
	return Lexeme{Kind: k, Span: s}
}

// NewPunct returns a Punct lexeme for character c.
//
func NewPunct(s Span, c rune) Lexeme {
	return Lexeme{Kind: Punct, Span: s, Char: c}
}

// NewString returns a String lexeme. text is the decoded string contents.
//
func NewString(s Span, text string) Lexeme {
	return Lexeme{Kind: String, Span: s, Text: text}
}

// NewNumber returns a Number lexeme with the literal text.
//
func NewNumber(s Span, text string) Lexeme {
	return Lexeme{Kind: Number, Span: s, Text: text}
}

// NewSymbol returns a Symbol lexeme.
//
func NewSymbol(s Span, text string) Lexeme {
	return Lexeme{Kind: Symbol, Span: s, Text: text}
}

// NewGroup wraps children into a Group labeled label. The group span covers the
// first and last child. The children slice is owned by the returned lexeme.
//
func NewGroup(label string, children []Lexeme) Lexeme {
	l := Lexeme{Kind: Group, Text: label, Children: children}
	if n := len(children); n > 0 {
		l.Span = Cover(children[0].Span, children[n-1].Span)
	}
	return l
}

// Meta returns the lexeme's span.
//
func (l Lexeme) Meta() Span {
	return l.Span
}

// Value returns the canonical text of the lexeme: the delimiter for brackets,
// the character for Punct, the decoded text for String, the raw text for
// Number and Symbol, and the concatenation of the children values for Group.
//
func (l Lexeme) Value() string {
	switch l.Kind {
	case Punct:
		return string(l.Char)
	case String, Number, Symbol:
		return l.Text
	case Group:
		var b strings.Builder
		l.writeValue(&b)
		return b.String()
	default:
		if int(l.Kind) < len(delimiters) {
			return delimiters[l.Kind]
		}
		return ""
	}
}

func (l Lexeme) writeValue(b *strings.Builder) {
	if l.Kind != Group {
		b.WriteString(l.Value())
		return
	}
	for i := range l.Children {
		l.Children[i].writeValue(b)
	}
}

// LMatch reports whether l and o are structurally equal, ignoring spans.
//
func (l Lexeme) LMatch(o Lexeme) bool {
	if l.Kind != o.Kind {
		return false
	}
	switch l.Kind {
	case Punct:
		return l.Char == o.Char
	case String, Number, Symbol:
		return l.Text == o.Text
	case Group:
		if l.Text != o.Text || len(l.Children) != len(o.Children) {
			return false
		}
		for i := range l.Children {
			if !l.Children[i].LMatch(o.Children[i]) {
				return false
			}
		}
	}
	return true
}

// String returns a representation of the lexeme for debugging purposes. The
// output format is not guaranteed to be stable.
//
func (l Lexeme) String() string {
	switch l.Kind {
	case Punct:
		return fmt.Sprintf("Punct %q @%s", l.Char, l.Span)
	case String, Number, Symbol:
		return fmt.Sprintf("%s %q @%s", l.Kind, l.Text, l.Span)
	case Group:
		parts := make([]string, len(l.Children))
		for i := range l.Children {
			parts[i] = l.Children[i].String()
		}
		return fmt.Sprintf("Group %q [%s] @%s", l.Text, strings.Join(parts, ", "), l.Span)
	default:
		return fmt.Sprintf("%s @%s", l.Kind, l.Span)
	}
}
