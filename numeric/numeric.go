// Package numeric implements the Integer/Rational/Real promotion tower
// used by the value model. Integer and Rational are always exact; Real
// is always inexact, matching the promotion rules of the interpreter's
// numeric tower.
package numeric

import (
	"fmt"
	"math/big"
	"strconv"
)

// Kind identifies which rung of the promotion lattice a Number occupies.
type Kind int

const (
	KindInteger Kind = iota
	KindRational
	KindReal
)

// realPrec is the working precision for the Real (inexact) representation.
// There is no arbitrary-precision decimal type in the standard library or
// anywhere in scope; big.Float at a fixed high precision is the closest
// stand-in for the double-precision-and-beyond decimal semantics required.
const realPrec = 240

// Number is a single value drawn from the Integer/Rational/Real tower.
// Only the field matching Kind is populated.
type Number struct {
	kind Kind
	i    *big.Int
	rat  *big.Rat
	r    *big.Float
}

// Integer builds an exact integer.
func Integer(i *big.Int) Number {
	return Number{kind: KindInteger, i: new(big.Int).Set(i)}
}

// FromInt64 builds a small exact integer.
func FromInt64(v int64) Number {
	return Integer(big.NewInt(v))
}

// fromRat wraps an already-computed big.Rat, demoting it to KindInteger
// whenever its denominator has reduced to 1. big.Rat itself always keeps
// a value in lowest terms with a strictly positive denominator, so no
// separate GCD or sign-normalization step is needed here.
func fromRat(r *big.Rat) Number {
	if r.IsInt() {
		return Number{kind: KindInteger, i: new(big.Int).Set(r.Num())}
	}
	return Number{kind: KindRational, rat: new(big.Rat).Set(r)}
}

// Rational builds an exact rational, demoted to KindInteger if num/den
// reduces to a whole number.
func Rational(num, den *big.Int) (Number, error) {
	if den.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	return fromRat(new(big.Rat).SetFrac(num, den)), nil
}

// Real builds an inexact real.
func Real(f *big.Float) Number {
	g := new(big.Float).SetPrec(realPrec)
	g.Set(f)
	return Number{kind: KindReal, r: g}
}

// ParseLiteral classifies raw token text at the tokenizer/parser boundary.
// Integer syntax (optionally signed digits) yields an exact Integer;
// decimal-point or exponent syntax yields an inexact Real.
func ParseLiteral(s string) (Number, bool) {
	z := new(big.Int)
	if _, ok := z.SetString(s, 10); ok {
		return Integer(z), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return Real(new(big.Float).SetPrec(realPrec).SetFloat64(f)), true
	}
	return Number{}, false
}

func (n Number) Kind() Kind { return n.kind }

func (n Number) IsExact() bool { return n.kind == KindInteger || n.kind == KindRational }

func (n Number) IsInteger() bool {
	switch n.kind {
	case KindInteger:
		return true
	case KindRational:
		return false
	default:
		return n.r.IsInt()
	}
}

func (n Number) IsRational() bool { return true }

func (n Number) IsReal() bool { return true }

// Sign returns -1, 0, or 1.
func (n Number) Sign() int {
	switch n.kind {
	case KindInteger:
		return n.i.Sign()
	case KindRational:
		return n.rat.Sign()
	default:
		return n.r.Sign()
	}
}

func level(a, b Number) Kind {
	if a.kind > b.kind {
		return a.kind
	}
	return b.kind
}

// toRat views an Integer or Rational Number as a big.Rat, promoting an
// Integer to a denominator of 1.
func (n Number) toRat() *big.Rat {
	switch n.kind {
	case KindInteger:
		return new(big.Rat).SetInt(n.i)
	case KindRational:
		return n.rat
	default:
		panic("toRat on Real")
	}
}

func (n Number) toReal() *big.Float {
	switch n.kind {
	case KindInteger:
		return new(big.Float).SetPrec(realPrec).SetInt(n.i)
	case KindRational:
		return new(big.Float).SetPrec(realPrec).SetRat(n.rat)
	default:
		return n.r
	}
}

// Add, Sub, Mul, Div dispatch through the Integer -> Rational -> Real
// promotion lattice, promoting both operands to the higher of the two
// kinds before operating.
func Add(a, b Number) (Number, error) {
	switch level(a, b) {
	case KindInteger:
		return Integer(new(big.Int).Add(a.i, b.i)), nil
	case KindRational:
		return fromRat(new(big.Rat).Add(a.toRat(), b.toRat())), nil
	default:
		return Real(new(big.Float).SetPrec(realPrec).Add(a.toReal(), b.toReal())), nil
	}
}

func Sub(a, b Number) (Number, error) {
	return Add(a, Negate(b))
}

func Negate(a Number) Number {
	switch a.kind {
	case KindInteger:
		return Integer(new(big.Int).Neg(a.i))
	case KindRational:
		return Number{kind: KindRational, rat: new(big.Rat).Neg(a.rat)}
	default:
		return Real(new(big.Float).SetPrec(realPrec).Neg(a.r))
	}
}

func Mul(a, b Number) (Number, error) {
	switch level(a, b) {
	case KindInteger:
		return Integer(new(big.Int).Mul(a.i, b.i)), nil
	case KindRational:
		return fromRat(new(big.Rat).Mul(a.toRat(), b.toRat())), nil
	default:
		return Real(new(big.Float).SetPrec(realPrec).Mul(a.toReal(), b.toReal())), nil
	}
}

// Div always promotes an Integer/Integer division to a Rational rather
// than truncating, matching the tower's stated exactness-preserving rule;
// only a Real operand forces an inexact result. Unlike Add/Sub/Mul (which
// demote a computed fraction back to an Integer whenever the denominator
// cancels to 1), Div never demotes, so e.g. (/ 4 2) keeps KindRational,
// matching SRational.of() never converting itself back to an SInteger.
func Div(a, b Number) (Number, error) {
	if b.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	switch level(a, b) {
	case KindInteger, KindRational:
		return Number{kind: KindRational, rat: new(big.Rat).Quo(a.toRat(), b.toRat())}, nil
	default:
		return Real(new(big.Float).SetPrec(realPrec).Quo(a.toReal(), b.toReal())), nil
	}
}

func Reciprocal(a Number) (Number, error) {
	return Div(FromInt64(1), a)
}

// Compare returns -1, 0, or 1 as a < b, a == b, a > b.
func Compare(a, b Number) int {
	switch level(a, b) {
	case KindInteger:
		return a.i.Cmp(b.i)
	case KindRational:
		return a.toRat().Cmp(b.toRat())
	default:
		return a.toReal().Cmp(b.toReal())
	}
}

// Quotient, Remainder, and Modulo operate on integer-valued operands only.
func Quotient(a, b Number) (Number, error) {
	ai, bi, ok := bothInts(a, b)
	if !ok {
		return Number{}, fmt.Errorf("quotient requires integer arguments")
	}
	if bi.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	q := new(big.Int).Quo(ai, bi)
	return Integer(q), nil
}

func Remainder(a, b Number) (Number, error) {
	ai, bi, ok := bothInts(a, b)
	if !ok {
		return Number{}, fmt.Errorf("remainder requires integer arguments")
	}
	if bi.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	r := new(big.Int).Rem(ai, bi)
	return Integer(r), nil
}

// Modulo returns a remainder whose sign matches the divisor's sign.
func Modulo(a, b Number) (Number, error) {
	ai, bi, ok := bothInts(a, b)
	if !ok {
		return Number{}, fmt.Errorf("modulo requires integer arguments")
	}
	if bi.Sign() == 0 {
		return Number{}, fmt.Errorf("division by zero")
	}
	r := new(big.Int).Rem(ai, bi)
	if r.Sign() != 0 && r.Sign() != bi.Sign() {
		r.Add(r, bi)
	}
	return Integer(r), nil
}

func bothInts(a, b Number) (*big.Int, *big.Int, bool) {
	if a.kind != KindInteger || b.kind != KindInteger {
		return nil, nil, false
	}
	return a.i, b.i, true
}

// GCD and LCM are defined over exact integers.
func GCD(a, b Number) (Number, error) {
	ai, bi, ok := bothInts(a, b)
	if !ok {
		return Number{}, fmt.Errorf("gcd requires integer arguments")
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(ai), new(big.Int).Abs(bi))
	return Integer(g), nil
}

func LCM(a, b Number) (Number, error) {
	ai, bi, ok := bothInts(a, b)
	if !ok {
		return Number{}, fmt.Errorf("lcm requires integer arguments")
	}
	if ai.Sign() == 0 || bi.Sign() == 0 {
		return FromInt64(0), nil
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(ai), new(big.Int).Abs(bi))
	l := new(big.Int).Div(new(big.Int).Abs(new(big.Int).Mul(ai, bi)), g)
	return Integer(l), nil
}

// Sqrt always returns an inexact Real, even for a perfect-square Integer
// argument.
func Sqrt(a Number) (Number, error) {
	if a.Sign() < 0 {
		return Number{}, fmt.Errorf("sqrt of negative number")
	}
	f := new(big.Float).SetPrec(realPrec).Sqrt(a.toReal())
	return Real(f), nil
}

func Abs(a Number) Number {
	if a.Sign() < 0 {
		return Negate(a)
	}
	return a
}

// IntegerValueExact returns the Integer form of a whole number (an
// Integer, a Rational whose denominator is 1, or a Real with no
// fractional part), or an error for anything non-whole (mirrors the
// tower's integerValueExact contract).
func (n Number) IntegerValueExact() (*big.Int, error) {
	switch n.kind {
	case KindInteger:
		return n.i, nil
	case KindRational:
		if n.rat.IsInt() {
			return new(big.Int).Set(n.rat.Num()), nil
		}
		return nil, fmt.Errorf("rational has no exact integer value")
	default:
		if !n.r.IsInt() {
			return nil, fmt.Errorf("inexact number has no exact integer value")
		}
		i, _ := n.r.Int(nil)
		return i, nil
	}
}

// DisplayValue renders the number in printed representation. A Rational
// always prints as n/m, even when its denominator is 1.
func (n Number) DisplayValue() string {
	switch n.kind {
	case KindInteger:
		return n.i.String()
	case KindRational:
		return n.rat.Num().String() + "/" + n.rat.Denom().String()
	default:
		return n.r.Text('g', -1)
	}
}

func (n Number) String() string { return n.DisplayValue() }
