package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivet-scheme/rivet/parser"
	"github.com/rivet-scheme/rivet/value"
)

func parseOne(t *testing.T, src string) value.Value {
	p := parser.New(src)
	v, err := p.ReadExpression()
	require.NoError(t, err)
	return v
}

func TestParseAtoms(t *testing.T) {
	assert.True(t, parseOne(t, "#t").Bool())
	assert.False(t, parseOne(t, "#f").Bool())
	assert.Equal(t, "42", value.Stringify(parseOne(t, "42"), true))
}

func TestParseProperList(t *testing.T) {
	v := parseOne(t, "(1 2 3)")
	items, err := value.ToSlice(v)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestParseDottedList(t *testing.T) {
	v := parseOne(t, "(1 . 2)")
	assert.False(t, v.IsList())
	assert.Equal(t, "(1 . 2)", value.Stringify(v, true))
}

func TestParseVector(t *testing.T) {
	v := parseOne(t, "#(1 2 3)")
	assert.True(t, v.IsVector())
	assert.Equal(t, 3, v.VecValue().Len())
}

func TestParseQuoteForms(t *testing.T) {
	v := parseOne(t, "'a")
	assert.Equal(t, "(quote a)", value.Stringify(v, true))

	v = parseOne(t, "`(a ,b ,@c)")
	assert.True(t, v.IsPair())
}

func TestParseStringDoesNotUnescape(t *testing.T) {
	v := parseOne(t, `"a\"b"`)
	assert.True(t, v.IsString())
	assert.Equal(t, `a\"b`, v.StrValue().String())
}

func TestParseEOF(t *testing.T) {
	v := parseOne(t, "")
	assert.True(t, v.IsEof())
}

func TestParseUnexpectedCloseParen(t *testing.T) {
	p := parser.New(")")
	_, err := p.ReadExpression()
	assert.Error(t, err)
}

// TestParseUnclosedListReportsEOF guards against reading past the end of
// the token stream: an unterminated list must fail once, not loop
// forever re-polling an EOF token that never becomes a close paren.
func TestParseUnclosedListReportsEOF(t *testing.T) {
	p := parser.New("(1 2 3")
	_, err := p.ReadExpression()
	assert.Error(t, err)

	p = parser.New("#(1 2")
	_, err = p.ReadExpression()
	assert.Error(t, err)
}
