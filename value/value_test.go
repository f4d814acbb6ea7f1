package value_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rivet-scheme/rivet/numeric"
	"github.com/rivet-scheme/rivet/value"
)

func TestIsTruthyOnlyFalseIsFalsy(t *testing.T) {
	assert.False(t, value.Boolean(false).IsTruthy())
	assert.True(t, value.Boolean(true).IsTruthy())
	assert.True(t, value.Null.IsTruthy())
	assert.True(t, value.Number(numeric.FromInt64(0)).IsTruthy())
}

func TestSymbolInterningIsCaseFolded(t *testing.T) {
	a := value.Intern("Foo")
	b := value.Intern("foo")
	assert.Same(t, a, b)
}

func TestUniqueSymbolsNeverEqual(t *testing.T) {
	a := value.Unique("gensym-")
	b := value.Unique("gensym-")
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}

func TestListRoundTrip(t *testing.T) {
	items := []value.Value{value.Boolean(true), value.Boolean(false)}
	lst := value.FromSlice(items)
	assert.True(t, lst.IsList())

	out, err := value.ToSlice(lst)
	assert.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestImproperListIsNotAList(t *testing.T) {
	improper := value.Cons(value.Boolean(true), value.Boolean(false))
	assert.False(t, improper.IsList())
}

func TestEqOnPairsIsIdentity(t *testing.T) {
	a := value.Cons(value.Boolean(true), value.Null)
	b := value.Cons(value.Boolean(true), value.Null)
	assert.True(t, value.Eq(a, a))
	assert.False(t, value.Eq(a, b))
	assert.True(t, value.Equal(a, b))
}

func TestEqvOnNumbersRespectsExactness(t *testing.T) {
	exact := value.Number(numeric.FromInt64(1))
	inexact, _ := numeric.ParseLiteral("1.0")
	assert.False(t, value.Eqv(exact, value.Number(inexact)))
}

func TestStringifyQuoted(t *testing.T) {
	assert.Equal(t, "#t", value.Stringify(value.Boolean(true), true))
	assert.Equal(t, "()", value.Stringify(value.Null, true))
	s := value.NewString("hi")
	assert.Equal(t, `"hi"`, value.Stringify(s, true))
	assert.Equal(t, "hi", value.Stringify(s, false))
}

func TestStringifyDottedPair(t *testing.T) {
	p := value.Cons(value.Boolean(true), value.Boolean(false))
	assert.Equal(t, "(#t . #f)", value.Stringify(p, true))
}
