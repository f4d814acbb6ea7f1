package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/numeric"
	"github.com/rivet-scheme/rivet/value"
)

func num(n int64) value.Value { return value.Number(numeric.FromInt64(n)) }

func TestEvalSelfEvaluatingAtoms(t *testing.T) {
	env := environment.New(nil)
	result, err := Eval(env, num(42))
	require.NoError(t, err)
	assert.Equal(t, "42", result.String())
}

func TestEvalIfBranches(t *testing.T) {
	env := environment.New(nil)
	src := value.List(sym("if"), value.Boolean(false), num(1), num(2))
	result, err := Eval(env, src)
	require.NoError(t, err)
	assert.Equal(t, "2", result.String())
}

func TestEvalQuoteReturnsLiteralUnevaluated(t *testing.T) {
	env := environment.New(nil)
	src := value.List(sym("quote"), value.List(sym("a"), sym("b")))
	result, err := Eval(env, src)
	require.NoError(t, err)
	assert.Equal(t, "(a b)", result.String())
}

func TestLambdaRejectsImproperFormals(t *testing.T) {
	_, _, err := parseFormals(value.Cons(sym("a"), sym("b")))
	assert.Error(t, err)
}

func TestLambdaAcceptsBareSymbolAsFullyVariadic(t *testing.T) {
	params, variadic, err := parseFormals(sym("args"))
	require.NoError(t, err)
	assert.True(t, variadic)
	assert.Len(t, params, 1)
}
