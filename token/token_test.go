package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivet-scheme/rivet/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	tk := token.New(src)
	var out []token.Token
	for {
		tok, err := tk.Next()
		require.NoError(t, err)
		if tok.Type == token.EOF {
			return out
		}
		out = append(out, tok)
	}
}

func TestLexSimpleList(t *testing.T) {
	toks := lexAll(t, "(+ 1 2)")
	types := make([]token.Type, len(toks))
	for i, tok := range toks {
		types[i] = tok.Type
	}
	assert.Equal(t, []token.Type{
		token.LPAREN, token.IDENTIFIER, token.INTEGER, token.INTEGER, token.RPAREN,
	}, types)
}

func TestLexQuoteFamily(t *testing.T) {
	toks := lexAll(t, "'a `b ,c ,@d")
	assert.Equal(t, token.QUOTE, toks[0].Type)
	assert.Equal(t, token.QUASIQUOTE, toks[2].Type)
	assert.Equal(t, token.UNQUOTE, toks[4].Type)
	assert.Equal(t, token.UNQUOTESPLICING, toks[6].Type)
}

func TestLexString(t *testing.T) {
	toks := lexAll(t, `"hello \"world\""`)
	require.Len(t, toks, 1)
	assert.Equal(t, token.STRING, toks[0].Type)
}

func TestLexCharacters(t *testing.T) {
	toks := lexAll(t, `#\space #\newline #\a`)
	assert.Equal(t, token.CHARSPACE, toks[0].Type)
	assert.Equal(t, token.CHARNEWLINE, toks[1].Type)
	assert.Equal(t, token.CHARRAW, toks[2].Type)
}

func TestLexComment(t *testing.T) {
	toks := lexAll(t, "; a comment\n(x)")
	assert.Equal(t, token.LPAREN, toks[0].Type)
}
