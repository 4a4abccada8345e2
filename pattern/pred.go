package pattern

import "github.com/db47h/lexkit/token"

// IsKind returns a predicate matching lexemes of kind k.
//
func IsKind(k token.Kind) func(token.Lexeme) bool {
	return func(l token.Lexeme) bool { return l.Kind == k }
}

// IsPunct returns a predicate matching the Punct lexeme for c.
//
func IsPunct(c rune) func(token.Lexeme) bool {
	return func(l token.Lexeme) bool { return l.Kind == token.Punct && l.Char == c }
}

// IsGroup returns a predicate matching groups labeled label.
//
func IsGroup(label string) func(token.Lexeme) bool {
	return func(l token.Lexeme) bool { return l.Kind == token.Group && l.Text == label }
}

// IsBracket returns a predicate matching bracket nodes of kind k.
//
func IsBracket(k token.BracketKind) func(token.Bracket) bool {
	return func(b token.Bracket) bool { return b.Kind == k }
}

// IsLeaf returns a predicate matching leaves that wrap a lexeme matched by f.
//
func IsLeaf(f func(token.Lexeme) bool) func(token.Bracket) bool {
	return func(b token.Bracket) bool { return b.Kind == token.Lex && f(b.Lexeme) }
}
