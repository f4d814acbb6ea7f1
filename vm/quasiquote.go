package vm

import "github.com/rivet-scheme/rivet/value"

// expandQQ rewrites a quasiquote template into an expression built out of
// cons/append/vector calls (plus quoted literals), which is then handed
// back to OP_EVAL. Ported directly from the original's expandQQ/fixupCons
// /mergeQQ/quote helpers; depth tracks nested quasiquotes so unquote only
// fires at the matching nesting level.
func expandQQ(template value.Value, depth int) value.Value {
	if !template.IsPair() && !template.IsVector() {
		return quoteValue(template)
	}

	if template.IsVector() {
		expanded := expandQQ(value.FromSlice(template.VecValue().Items), depth)
		return value.Cons(sym("vector"), expanded)
	}

	carVal := template.Car()
	cdrVal := template.Cdr()

	if isSym(carVal, value.QuasiquoteSym) {
		return fixupCons(template, quoteValue(carVal), expandQQ(cdrVal, depth+1))
	}

	if depth == 0 {
		if isSym(carVal, value.UnquoteSym) {
			return cdrVal.Car()
		}
		if isSym(carVal, value.UnquoteSplicingSym) {
			panic(evalErrorf("can't splice into a non-list"))
		}
		if carVal.IsPair() && isSym(carVal.Car(), value.UnquoteSplicingSym) {
			usArg := carVal.Cdr().Car()
			return mergeQQ(template, usArg, expandQQ(cdrVal, depth))
		}
		return fixupCons(template, expandQQ(carVal, depth), expandQQ(cdrVal, depth))
	}

	if isSym(carVal, value.UnquoteSym) || isSym(carVal, value.UnquoteSplicingSym) {
		return fixupCons(template, quoteValue(carVal), expandQQ(cdrVal, depth-1))
	}
	return fixupCons(template, expandQQ(carVal, depth), expandQQ(cdrVal, depth))
}

func isSym(v value.Value, s *value.Symbol) bool {
	return v.IsSymbol() && v.Sym().Equal(s)
}

func isQuotedPair(v value.Value) bool {
	return v.IsPair() && isSym(v.Car(), value.QuoteSym)
}

// fixupCons collapses a (cons 'a 'b) expansion back into a single quoted
// literal '(a . b) whenever both sides re-quote exactly the pieces of the
// original template, so a template with no unquotes at all round-trips
// to a plain quoted literal instead of a tree of cons calls.
func fixupCons(template, left, right value.Value) value.Value {
	if isQuotedPair(left) && isQuotedPair(right) && template.IsPair() {
		lp := left.Cdr()
		rp := right.Cdr()
		if value.Equal(lp.Car(), template.Car()) && value.Equal(rp.Car(), template.Cdr()) {
			return quoteValue(template)
		}
	}
	return listOf(sym("cons"), left, right)
}

// mergeQQ produces the (append left right) call backing unquote-splicing,
// eliding the append entirely when right is the terminal empty list.
func mergeQQ(template, left, right value.Value) value.Value {
	templateIsEnd := template.IsPair() && value.Equal(template.Cdr(), value.Null)
	rightIsEnd := isQuotedPair(right) && value.Equal(right.Cdr().Car(), value.Null)
	if templateIsEnd || rightIsEnd {
		return left
	}
	return listOf(sym("append"), left, right)
}
