package numeric_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivet-scheme/rivet/numeric"
)

func TestParseLiteralInteger(t *testing.T) {
	n, ok := numeric.ParseLiteral("42")
	require.True(t, ok)
	assert.Equal(t, numeric.KindInteger, n.Kind())
	assert.True(t, n.IsExact())
	assert.Equal(t, "42", n.DisplayValue())
}

func TestParseLiteralReal(t *testing.T) {
	n, ok := numeric.ParseLiteral("3.5")
	require.True(t, ok)
	assert.Equal(t, numeric.KindReal, n.Kind())
	assert.False(t, n.IsExact())
}

func TestIntegerDivisionYieldsRational(t *testing.T) {
	a := numeric.FromInt64(1)
	b := numeric.FromInt64(3)
	r, err := numeric.Div(a, b)
	require.NoError(t, err)
	assert.Equal(t, numeric.KindRational, r.Kind())
	assert.Equal(t, "1/3", r.DisplayValue())
}

func TestRationalReducesToInteger(t *testing.T) {
	r, err := numeric.Rational(big.NewInt(6), big.NewInt(3))
	require.NoError(t, err)
	assert.Equal(t, numeric.KindInteger, r.Kind())
	assert.Equal(t, "2", r.DisplayValue())
}

func TestRationalDenominatorAlwaysPositive(t *testing.T) {
	r, err := numeric.Rational(big.NewInt(1), big.NewInt(-2))
	require.NoError(t, err)
	assert.Equal(t, "-1/2", r.DisplayValue())
}

func TestModuloSignMatchesDivisor(t *testing.T) {
	r, err := numeric.Modulo(numeric.FromInt64(-7), numeric.FromInt64(3))
	require.NoError(t, err)
	assert.Equal(t, "2", r.DisplayValue())

	r, err = numeric.Modulo(numeric.FromInt64(7), numeric.FromInt64(-3))
	require.NoError(t, err)
	assert.Equal(t, "-2", r.DisplayValue())
}

func TestRemainderSignMatchesDividend(t *testing.T) {
	r, err := numeric.Remainder(numeric.FromInt64(-7), numeric.FromInt64(3))
	require.NoError(t, err)
	assert.Equal(t, "-1", r.DisplayValue())
}

func TestPromotionAcrossKinds(t *testing.T) {
	i := numeric.FromInt64(2)
	rat, _ := numeric.Rational(big.NewInt(1), big.NewInt(2))
	sum, err := numeric.Add(i, rat)
	require.NoError(t, err)
	assert.Equal(t, numeric.KindRational, sum.Kind())
	assert.Equal(t, "5/2", sum.DisplayValue())
}

func TestSqrtAlwaysInexact(t *testing.T) {
	r, err := numeric.Sqrt(numeric.FromInt64(9))
	require.NoError(t, err)
	assert.Equal(t, numeric.KindReal, r.Kind())
	assert.False(t, r.IsExact())
}

func TestDivOfEvenIntegersStaysRational(t *testing.T) {
	r, err := numeric.Div(numeric.FromInt64(4), numeric.FromInt64(2))
	require.NoError(t, err)
	assert.Equal(t, numeric.KindRational, r.Kind())
	assert.Equal(t, "2/1", r.DisplayValue())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, numeric.Compare(numeric.FromInt64(1), numeric.FromInt64(2)))
	assert.Equal(t, 0, numeric.Compare(numeric.FromInt64(2), numeric.FromInt64(2)))
	assert.Equal(t, 1, numeric.Compare(numeric.FromInt64(3), numeric.FromInt64(2)))
}
