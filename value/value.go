// Package value implements the tagged Value type shared by the tokenizer,
// parser, environment, and evaluator, along with symbol interning, pairs,
// vectors, and the printed representation.
package value

import (
	"fmt"

	"github.com/rivet-scheme/rivet/numeric"
)

// Kind tags which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindCharacter
	KindNumber
	KindString
	KindSymbol
	KindPair
	KindVector
	KindProcedure
	KindPort
	KindPromise
	KindEof
	KindVoid
)

// Value is the single tagged representation for every Scheme datum.
// Only the field matching Kind is populated. immutable marks quoted
// literal data; SetCar and SetCdr reject a change to an immutable pair.
// The vector and string mutators (vector-set!, vector-fill!,
// string-set!, string-fill!) do not check it, so they also change
// literal vectors and strings.
type Value struct {
	Kind      Kind
	immutable bool

	boolVal bool
	charVal rune
	numVal  numeric.Number
	str     *SString
	sym     *Symbol
	pair    *Pair
	vec     *Vector
	proc    *Procedure
	port    *Port
	promise *Promise
}

// Null is the empty list, self-evaluating and falls out of most type
// predicates other than IsNull/IsPair(false)/IsList(true).
var Null = Value{Kind: KindNull, immutable: true}

var trueVal = Value{Kind: KindBoolean, boolVal: true, immutable: true}
var falseVal = Value{Kind: KindBoolean, boolVal: false, immutable: true}
var eofVal = Value{Kind: KindEof, immutable: true}
var voidVal = Value{Kind: KindVoid, immutable: true}

func Boolean(b bool) Value {
	if b {
		return trueVal
	}
	return falseVal
}

func Character(r rune) Value { return Value{Kind: KindCharacter, charVal: r, immutable: true} }

func Number(n numeric.Number) Value { return Value{Kind: KindNumber, numVal: n, immutable: true} }

func Eof() Value { return eofVal }
func Void() Value { return voidVal }

// Pair is a mutable cons cell.
type Pair struct {
	Car Value
	Cdr Value
}

// Cons allocates a fresh, mutable pair.
func Cons(car, cdr Value) Value {
	return Value{Kind: KindPair, pair: &Pair{Car: car, Cdr: cdr}}
}

func (v Value) IsNull() bool      { return v.Kind == KindNull }
func (v Value) IsBoolean() bool   { return v.Kind == KindBoolean }
func (v Value) IsCharacter() bool { return v.Kind == KindCharacter }
func (v Value) IsNumber() bool    { return v.Kind == KindNumber }
func (v Value) IsString() bool    { return v.Kind == KindString }
func (v Value) IsSymbol() bool    { return v.Kind == KindSymbol }
func (v Value) IsPair() bool      { return v.Kind == KindPair }
func (v Value) IsVector() bool    { return v.Kind == KindVector }
func (v Value) IsProcedure() bool { return v.Kind == KindProcedure }
func (v Value) IsPort() bool      { return v.Kind == KindPort }
func (v Value) IsPromise() bool   { return v.Kind == KindPromise }
func (v Value) IsEof() bool       { return v.Kind == KindEof }
func (v Value) IsVoid() bool      { return v.Kind == KindVoid }

// IsTruthy implements R5RS's rule that only #f is false; every other
// value, including 0, "", and (), counts as true.
func (v Value) IsTruthy() bool {
	return !(v.Kind == KindBoolean && !v.boolVal)
}

func (v Value) Bool() bool { return v.boolVal }
func (v Value) Char() rune { return v.charVal }

func (v Value) Num() numeric.Number {
	if v.Kind != KindNumber {
		panic(wrongType("number", v))
	}
	return v.numVal
}

func (v Value) Sym() *Symbol {
	if v.Kind != KindSymbol {
		panic(wrongType("symbol", v))
	}
	return v.sym
}

// PairValue returns the underlying *Pair, panicking on the empty list per the
// original getCar/getCdr contract ("can't take car/cdr of ()").
func (v Value) PairValue() *Pair {
	if v.Kind != KindPair {
		panic(wrongType("pair", v))
	}
	return v.pair
}

func (v Value) Car() Value { return v.PairValue().Car }
func (v Value) Cdr() Value { return v.PairValue().Cdr }

func (v Value) SetCar(x Value) {
	v.assertMutable()
	v.PairValue().Car = x
}

func (v Value) SetCdr(x Value) {
	v.assertMutable()
	v.PairValue().Cdr = x
}

func (v Value) VecValue() *Vector {
	if v.Kind != KindVector {
		panic(wrongType("vector", v))
	}
	return v.vec
}

func (v Value) StrValue() *SString {
	if v.Kind != KindString {
		panic(wrongType("string", v))
	}
	return v.str
}

func (v Value) ProcValue() *Procedure {
	if v.Kind != KindProcedure {
		panic(wrongType("procedure", v))
	}
	return v.proc
}

func (v Value) PortValue() *Port {
	if v.Kind != KindPort {
		panic(wrongType("port", v))
	}
	return v.port
}

func (v Value) PromiseValue() *Promise {
	if v.Kind != KindPromise {
		panic(wrongType("promise", v))
	}
	return v.promise
}

// MarkImmutable returns a copy of v with the immutable bit set (v itself
// is unchanged), used for quoted literal data.
func (v Value) MarkImmutable() Value {
	v.immutable = true
	return v
}

func (v Value) assertMutable() {
	if v.immutable {
		panic(fmt.Sprintf("attempt to mutate immutable value: %s", Stringify(v, true)))
	}
}

func wrongType(want string, v Value) string {
	return fmt.Sprintf("expected %s, got %s", want, Stringify(v, true))
}

// IsList reports whether v is a proper, finite list. A self-referential
// single cell (one whose cdr is itself) is guarded against, matching the
// cycle-avoidance in the original list check.
func (v Value) IsList() bool {
	if v.IsNull() {
		return true
	}
	if !v.IsPair() {
		return false
	}
	cdr := v.Cdr()
	if cdr.IsNull() {
		return true
	}
	if !cdr.IsPair() {
		return false
	}
	if cdr.pair == v.pair {
		return false
	}
	return cdr.IsList()
}

// ToSlice flattens a proper list into a Go slice, erroring on improper
// lists.
func ToSlice(v Value) ([]Value, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsList() {
		return nil, fmt.Errorf("%s is not a list", Stringify(v, true))
	}
	var out []Value
	for cur := v; !cur.IsNull(); cur = cur.Cdr() {
		out = append(out, cur.Car())
	}
	return out, nil
}

// FromSlice builds a proper list terminated by Null.
func FromSlice(items []Value) Value {
	return FromSliceTail(items, Null)
}

// FromSliceTail builds an (possibly improper) list ending in tail.
func FromSliceTail(items []Value, tail Value) Value {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result)
	}
	return result
}

// List is a convenience constructor mirroring the original's list().
func List(items ...Value) Value { return FromSlice(items) }

// FromSliceTailImmutable builds a (possibly improper) list ending in
// tail, marking every cons cell it allocates immutable. Built
// bottom-up so each cell's Cdr is already its final, immutable value at
// construction time — no SetCdr call is ever needed on an already-frozen
// cell.
func FromSliceTailImmutable(items []Value, tail Value) Value {
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result).MarkImmutable()
	}
	return result
}

// ListImmutable is the immutable counterpart of List, used for parser
// literals and quoted sub-structure.
func ListImmutable(items ...Value) Value { return FromSliceTailImmutable(items, Null) }
