package token_test

import (
	"testing"

	"github.com/db47h/lexkit/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleLexemes() []token.Lexeme {
	return []token.Lexeme{
		token.New(token.LParen, token.Single(0)),
		token.New(token.RSquare, token.Single(1)),
		token.NewPunct(token.Single(2), ';'),
		token.NewString(token.Span{Start: 3, End: 8}, "a\tb"),
		token.NewNumber(token.Span{Start: 9, End: 11}, "123"),
		token.NewSymbol(token.Span{Start: 12, End: 14}, "foo"),
		token.NewGroup("pair", []token.Lexeme{
			token.NewNumber(token.Single(20), "1"),
			token.NewPunct(token.Single(21), '.'),
			token.NewNumber(token.Single(22), "5"),
		}),
	}
}

func shift(l token.Lexeme, n token.Pos) token.Lexeme {
	l.Span = token.Span{Start: l.Span.Start + n, End: l.Span.End + n}
	if l.Kind == token.Group {
		cs := make([]token.Lexeme, len(l.Children))
		for i := range l.Children {
			cs[i] = shift(l.Children[i], n)
		}
		l.Children = cs
	}
	return l
}

func TestLexeme_LMatch(t *testing.T) {
	t.Parallel()
	ls := sampleLexemes()
	for i, l := range ls {
		assert.True(t, l.LMatch(l), "reflexive: %s", l)
		assert.True(t, l.LMatch(shift(l, 100)), "span blind: %s", l)
		for j, o := range ls {
			if i != j {
				assert.False(t, l.LMatch(o), "%s vs %s", l, o)
			}
		}
	}

	tests := []struct {
		name string
		a, b token.Lexeme
		want bool
	}{
		{"punct char", token.NewPunct(token.Single(0), '+'), token.NewPunct(token.Single(5), '-'), false},
		{"symbol text", token.NewSymbol(token.Single(0), "a"), token.NewSymbol(token.Single(0), "b"), false},
		{"number vs symbol", token.NewNumber(token.Single(0), "1"), token.NewSymbol(token.Single(0), "1"), false},
		{"group label",
			token.NewGroup("a", []token.Lexeme{token.NewSymbol(token.Single(0), "x")}),
			token.NewGroup("b", []token.Lexeme{token.NewSymbol(token.Single(0), "x")}),
			false},
		{"group arity",
			token.NewGroup("a", []token.Lexeme{token.NewSymbol(token.Single(0), "x")}),
			token.NewGroup("a", []token.Lexeme{token.NewSymbol(token.Single(0), "x"), token.NewSymbol(token.Single(1), "x")}),
			false},
		{"group children",
			token.NewGroup("a", []token.Lexeme{token.NewSymbol(token.Single(0), "x")}),
			token.NewGroup("a", []token.Lexeme{token.NewSymbol(token.Single(7), "x")}),
			true},
		{"brackets", token.New(token.LCurl, token.Single(1)), token.New(token.LCurl, token.Single(9)), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.a.LMatch(tt.b), tt.name)
		assert.Equal(t, tt.want, tt.b.LMatch(tt.a), tt.name+" (symmetric)")
	}
}

func TestLexeme_Value(t *testing.T) {
	t.Parallel()
	want := []string{"(", "]", ";", "a\tb", "123", "foo", "1.5"}
	for i, l := range sampleLexemes() {
		assert.Equal(t, want[i], l.Value())
	}
}

func TestNewGroup(t *testing.T) {
	t.Parallel()
	g := sampleLexemes()[6]
	assert.Equal(t, token.Span{Start: 20, End: 22}, g.Meta())
	assert.Equal(t, "pair", g.Text)
	require.Len(t, g.Children, 3)

	empty := token.NewGroup("empty", nil)
	assert.Equal(t, token.Span{}, empty.Meta())
	assert.Equal(t, "", empty.Value())
}

func TestBracket(t *testing.T) {
	t.Parallel()
	leaf := func(p token.Pos, s string) token.Bracket {
		return token.Leaf(token.NewNumber(token.Single(p), s))
	}
	inner := token.NewBracket(token.Paren, token.Span{Start: 4, End: 8}, []token.Bracket{leaf(5, "2"), leaf(7, "3")})
	outer := token.NewBracket(token.Paren, token.Span{Start: 0, End: 10}, []token.Bracket{leaf(2, "1"), inner})

	assert.Equal(t, "(1(23))", outer.Value())
	assert.Equal(t, token.Span{Start: 0, End: 10}, outer.Meta())
	assert.Equal(t, token.Single(5), inner.Children[0].Meta())
	assert.True(t, outer.Meta().Contains(inner.Meta()))

	same := token.NewBracket(token.Paren, token.Span{Start: 100, End: 200}, []token.Bracket{
		leaf(101, "1"),
		token.NewBracket(token.Paren, token.Span{Start: 150, End: 160}, []token.Bracket{leaf(151, "2"), leaf(152, "3")}),
	})
	assert.True(t, outer.LMatch(outer))
	assert.True(t, outer.LMatch(same))
	assert.False(t, outer.LMatch(inner))
	assert.False(t, inner.LMatch(token.NewBracket(token.Square, inner.Span, inner.Children)))
	assert.False(t, leaf(0, "1").LMatch(leaf(0, "2")))

	assert.Equal(t, '{', token.Curl.Open())
	assert.Equal(t, '>', token.Angle.Close())
	assert.Equal(t, rune(0), token.Lex.Open())
	k, ok := token.BracketOf(token.RSquare)
	assert.True(t, ok)
	assert.Equal(t, token.Square, k)
	_, ok = token.BracketOf(token.Symbol)
	assert.False(t, ok)
}

func TestSlice(t *testing.T) {
	t.Parallel()
	src := token.Slice([]int{1, 2, 3})
	v, ok := src.Next()
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, token.Collect(src))
	_, ok = src.Next()
	assert.False(t, ok)
	assert.Nil(t, token.Collect(token.Slice[int](nil)))
}

func TestKind_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "LSquare", token.LSquare.String())
	assert.Equal(t, "Group", token.Group.String())
	assert.Equal(t, "Kind(200)", token.Kind(200).String())
	assert.Equal(t, "Curl", token.Curl.String())
	assert.True(t, token.LAngle.IsOpen())
	assert.True(t, token.RAngle.IsClose())
	assert.False(t, token.Punct.IsOpen())
}
