package lexkit_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/db47h/lexkit"
	"github.com/db47h/lexkit/lexer"
	"github.com/db47h/lexkit/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLex_empty(t *testing.T) {
	t.Parallel()
	inputs := map[string]string{
		"whitespace":    " \t \r \n ",
		"line comment":  " // comment $ ",
		"block comment": "\n\n    /*\n        block comment $\n\n    */\n\n",
		"nested block comment": `

    /*
        block comment $
        /* %%% */
        /* %%% */
        /* /* */ */
    */

`,
		"empty": "",
	}
	for name, input := range inputs {
		ls, err := lexkit.Lex(input)
		require.NoError(t, err, name)
		assert.Empty(t, ls, name)
	}
}

func TestLex_lineCommentInBlock(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex("\n\n    /*\n    // */\n\n    77\n\n")
	require.NoError(t, err)
	require.Len(t, ls, 1)
	assert.Equal(t, token.Number, ls[0].Kind)
	assert.Equal(t, token.Span{Start: 24, End: 25}, ls[0].Meta())
	assert.Equal(t, "77", ls[0].Value())
}

func TestLex_single(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex("7")
	require.NoError(t, err)
	assert.Equal(t, []token.Lexeme{token.NewNumber(token.Single(0), "7")}, ls)

	ls, err = lexkit.Lex("a")
	require.NoError(t, err)
	assert.Equal(t, []token.Lexeme{token.NewSymbol(token.Single(0), "a")}, ls)
}

func TestLex_numbers(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex("1234.5678E+90 +1234 -1234 +123e-456")
	require.NoError(t, err)
	want := []token.Lexeme{
		token.NewNumber(token.Span{Start: 0, End: 3}, "1234"),
		token.NewPunct(token.Single(4), '.'),
		token.NewNumber(token.Span{Start: 5, End: 8}, "5678"),
		token.NewSymbol(token.Single(9), "E"),
		token.NewPunct(token.Single(10), '+'),
		token.NewNumber(token.Span{Start: 11, End: 12}, "90"),
		token.NewPunct(token.Single(14), '+'),
		token.NewNumber(token.Span{Start: 15, End: 18}, "1234"),
		token.NewPunct(token.Single(20), '-'),
		token.NewNumber(token.Span{Start: 21, End: 24}, "1234"),
		token.NewPunct(token.Single(26), '+'),
		token.NewNumber(token.Span{Start: 27, End: 29}, "123"),
		token.NewSymbol(token.Single(30), "e"),
		token.NewPunct(token.Single(31), '-'),
		token.NewNumber(token.Span{Start: 32, End: 34}, "456"),
	}
	assert.Equal(t, want, ls)
}

func TestLex_symbols(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex("Symbol symb0l _sym_bol8 _1symboL")
	require.NoError(t, err)
	want := []token.Lexeme{
		token.NewSymbol(token.Span{Start: 0, End: 5}, "Symbol"),
		token.NewSymbol(token.Span{Start: 7, End: 12}, "symb0l"),
		token.NewSymbol(token.Span{Start: 14, End: 22}, "_sym_bol8"),
		token.NewSymbol(token.Span{Start: 24, End: 31}, "_1symboL"),
	}
	assert.Equal(t, want, ls)
}

func TestLex_unicodeSymbols(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input string
		want  []token.Lexeme
	}{
		// vowel sign (Mc, Other_Alphabetic)
		{"कि", []token.Lexeme{token.NewSymbol(token.Span{Start: 0, End: 3}, "कि")}},
		// superscript digit (No)
		{"x²", []token.Lexeme{token.NewSymbol(token.Span{Start: 0, End: 1}, "x²")}},
		// letter number (Nl)
		{"Ⅻ", []token.Lexeme{token.NewSymbol(token.Single(0), "Ⅻ")}},
		// numeric but not a decimal digit: no digit run
		{"²", []token.Lexeme{token.NewPunct(token.Single(0), '²')}},
		{"٣٤", []token.Lexeme{token.NewNumber(token.Span{Start: 0, End: 2}, "٣٤")}},
	}
	for _, tt := range tests {
		ls, err := lexkit.Lex(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, ls, tt.input)
	}
}

func TestLex_string(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex(` "string \t \n \r \0 \\ \" "`)
	require.NoError(t, err)
	assert.Equal(t, []token.Lexeme{
		token.NewString(token.Span{Start: 1, End: 27}, "string \t \n \r \x00 \\ \" "),
	}, ls)
}

func TestLex_punctuation(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex(" => -> () <> {} [] . , ; : = $ ^")
	require.NoError(t, err)
	want := []token.Kind{
		token.Punct, token.RAngle,
		token.Punct, token.RAngle,
		token.LParen, token.RParen,
		token.LAngle, token.RAngle,
		token.LCurl, token.RCurl,
		token.LSquare, token.RSquare,
		token.Punct, token.Punct, token.Punct, token.Punct, token.Punct, token.Punct, token.Punct,
	}
	require.Len(t, ls, len(want))
	for i, k := range want {
		assert.Equal(t, k, ls[i].Kind, "lexeme %d", i)
		assert.Equal(t, ls[i].Span.Start, ls[i].Span.End, "lexeme %d", i)
	}
	assert.Equal(t, '=', ls[0].Char)
	assert.Equal(t, '^', ls[18].Char)
}

func TestLex_errors(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex(`1 2 "abc`)
	assert.Nil(t, ls)
	var eis *lexer.EndInStringError
	require.ErrorAs(t, err, &eis)
	assert.Equal(t, token.Pos(4), eis.Start)

	_, err = lexkit.Lex(`"\x"`)
	var ue *lexer.UnexpectedEscapeError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, token.Pos(2), ue.Offset)
	assert.Equal(t, 'x', ue.Char)
}

func TestLex_unterminatedBlockComment(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex("1 /* 2 /* 3 */")
	require.NoError(t, err)
	assert.Equal(t, []token.Lexeme{token.NewNumber(token.Single(0), "1")}, ls)
}

func TestLex_invalidUTF8(t *testing.T) {
	t.Parallel()
	ls, err := lexkit.Lex("a\xffb")
	require.NoError(t, err)
	assert.Equal(t, []token.Lexeme{
		token.NewSymbol(token.Single(0), "a"),
		token.NewPunct(token.Single(1), utf8.RuneError),
		token.NewSymbol(token.Single(2), "b"),
	}, ls)
}

// Concatenating lexeme values gives back the significant characters.
func TestLex_values(t *testing.T) {
	t.Parallel()
	src := "fn main ( ) { /* c */ x = [ 1 , 2 ] ; // done\n print(\"a\\tb\") ; }"
	ls, err := lexkit.Lex(src)
	require.NoError(t, err)
	var sb strings.Builder
	for _, l := range ls {
		sb.WriteString(l.Value())
	}
	assert.Equal(t, "fnmain(){x=[1,2];print(a\tb);}", sb.String())

	for i := 1; i < len(ls); i++ {
		assert.Less(t, ls[i-1].Span.End, ls[i].Span.Start)
	}
}

func TestLexFile_lines(t *testing.T) {
	t.Parallel()
	f := token.NewFile("lines.txt", "a\n  b\n\n c")
	ls, err := lexkit.LexFile(f, lexer.QueueSize(8))
	require.NoError(t, err)
	require.Len(t, ls, 3)
	assert.Equal(t, token.Position{Filename: "lines.txt", Offset: 4, Line: 2, Column: 3}, f.Position(ls[1].Span.Start))
	assert.Equal(t, "lines.txt:4:2", f.Position(ls[2].Span.Start).String())
}

func TestDefaultLang(t *testing.T) {
	t.Parallel()
	// treat <> as punctuation by registering a longer match
	lang := lexkit.DefaultLang()
	lang.Match("<>", func(s *lexer.State) lexer.StateFn {
		s.Emit(token.NewSymbol(token.Span{Start: s.TokenPos(), End: s.Offset()}, "<>"))
		return nil
	})
	sc := lexkit.NewLangScanner(token.NewFile("", "a<>b<c"), lang)
	ls := token.Collect[token.Lexeme](sc)
	require.NoError(t, sc.Err())
	kinds := make([]token.Kind, len(ls))
	for i := range ls {
		kinds[i] = ls[i].Kind
	}
	assert.Equal(t, []token.Kind{token.Symbol, token.Symbol, token.Symbol, token.LAngle, token.Symbol}, kinds)

	// the canonical language is unaffected
	ls, err := lexkit.Lex("<>")
	require.NoError(t, err)
	assert.Equal(t, token.LAngle, ls[0].Kind)
}
