// Package bracket structures a flat lexeme stream into a tree of matched
// delimiter pairs.
//
// Brackets are matched by recursive descent: each opening bracket lexeme starts
// a nested frame that ends at the next closing bracket lexeme of that frame. All
// other lexemes become token.Lex leaves, in order.
//
package bracket

import "github.com/db47h/lexkit/token"

// errSource is implemented by sources that can fail, like lexkit.Scanner.
type errSource interface {
	Err() error
}

type builder struct {
	src token.Source[token.Lexeme]
}

// Build reads src until exhaustion and returns the top level bracket nodes.
//
// If src implements
//
//	interface{ Err() error }
//
// a non-nil error returned by Err once src is exhausted takes precedence over
// any structural error and is returned as is.
//
func Build(src token.Source[token.Lexeme]) ([]token.Bracket, error) {
	b := builder{src: src}
	nodes, closer, err := b.parse()
	if err != nil {
		return nil, err
	}
	if closer != nil {
		return nil, &NotAllInputConsumedError{Offset: closer.Span.Start}
	}
	return nodes, nil
}

// FromLexemes is a shorthand for Build(token.Slice(ls)).
//
func FromLexemes(ls []token.Lexeme) ([]token.Bracket, error) {
	return Build(token.Slice(ls))
}

// parse reads nodes up to the end of input or up to and including the next
// closing bracket lexeme, which is returned.
func (b *builder) parse() ([]token.Bracket, *token.Lexeme, error) {
	var nodes []token.Bracket
	for {
		l, ok := b.src.Next()
		if !ok {
			if es, ok := b.src.(errSource); ok {
				if err := es.Err(); err != nil {
					return nil, nil, err
				}
			}
			return nodes, nil, nil
		}
		switch {
		case l.Kind.IsOpen():
			n, err := b.delimited(l)
			if err != nil {
				return nil, nil, err
			}
			nodes = append(nodes, n)
		case l.Kind.IsClose():
			return nodes, &l, nil
		default:
			nodes = append(nodes, token.Leaf(l))
		}
	}
}

func (b *builder) delimited(open token.Lexeme) (token.Bracket, error) {
	k, _ := token.BracketOf(open.Kind)
	children, closer, err := b.parse()
	if err != nil {
		return token.Bracket{}, err
	}
	if closer == nil {
		return token.Bracket{}, &EOFInsteadOfEndBracketError{Initial: open.Span.Start, Expected: k.Close()}
	}
	if ck, _ := token.BracketOf(closer.Kind); ck != k {
		return token.Bracket{}, &MissingEndBracketError{
			Initial:  open.Span.Start,
			Terminal: closer.Span.Start,
			Found:    ck.Close(),
			Expected: k.Close(),
		}
	}
	return token.NewBracket(k, token.Span{Start: open.Span.Start, End: closer.Span.End}, children), nil
}
