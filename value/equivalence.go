package value

import "github.com/rivet-scheme/rivet/numeric"

// Eq implements eq?: identity comparison. Immediate kinds (booleans,
// characters, small structural singletons like the empty list) compare
// by value since there is exactly one Go value.Value per distinct datum
// of those kinds; heap-allocated kinds compare by pointer identity.
func Eq(lhs, rhs Value) bool {
	if lhs.Kind != rhs.Kind {
		return false
	}
	switch lhs.Kind {
	case KindNull, KindEof, KindVoid:
		return true
	case KindBoolean:
		return lhs.boolVal == rhs.boolVal
	case KindCharacter:
		return lhs.charVal == rhs.charVal
	case KindSymbol:
		return lhs.sym == rhs.sym
	case KindPair:
		return lhs.pair == rhs.pair
	case KindVector:
		return lhs.vec == rhs.vec
	case KindString:
		return lhs.str == rhs.str
	case KindProcedure:
		return lhs.proc == rhs.proc
	case KindPort:
		return lhs.port == rhs.port
	case KindPromise:
		return lhs.promise == rhs.promise
	case KindNumber:
		// eq? on numbers is unspecified by R5RS except that it must be
		// no coarser than eqv?; small exact integers are the only case
		// that matters in practice, so fall back to eqv? semantics.
		return Eqv(lhs, rhs)
	default:
		return false
	}
}

// Eqv implements eqv?: like eq?, but numbers compare by exactness-aware
// numeric equality and characters by character identity rather than by
// Go pointer, matching R5RS's definition.
func Eqv(lhs, rhs Value) bool {
	if lhs.Kind != rhs.Kind {
		return false
	}
	switch lhs.Kind {
	case KindBoolean:
		return lhs.boolVal == rhs.boolVal
	case KindSymbol:
		return lhs.sym.Equal(rhs.sym)
	case KindCharacter:
		return lhs.charVal == rhs.charVal
	case KindNumber:
		return lhs.numVal.IsExact() == rhs.numVal.IsExact() &&
			numeric.Compare(lhs.numVal, rhs.numVal) == 0
	case KindNull, KindEof, KindVoid:
		return true
	default:
		return Eq(lhs, rhs)
	}
}

// Equal implements equal?: structural comparison for pairs, vectors, and
// strings, falling back to eqv? for everything else. May not terminate
// on circular structures, matching the R5RS caveat.
func Equal(lhs, rhs Value) bool {
	if Eq(lhs, rhs) {
		return true
	}
	if lhs.IsPair() && rhs.IsPair() {
		return Equal(lhs.Car(), rhs.Car()) && Equal(lhs.Cdr(), rhs.Cdr())
	}
	if lhs.IsVector() && rhs.IsVector() {
		lv, rv := lhs.vec, rhs.vec
		if len(lv.Items) != len(rv.Items) {
			return false
		}
		for i := range lv.Items {
			if !Equal(lv.Items[i], rv.Items[i]) {
				return false
			}
		}
		return true
	}
	if lhs.IsString() && rhs.IsString() {
		return string(lhs.str.Runes) == string(rhs.str.Runes)
	}
	return Eqv(lhs, rhs)
}
