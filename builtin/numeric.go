package builtin

import (
	"github.com/rivet-scheme/rivet/numeric"
	"github.com/rivet-scheme/rivet/value"
)

func biIsNumber(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("number?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsNumber()), nil
}

func biAdd(_ interface{}, args []value.Value) (value.Value, error) {
	res := numeric.FromInt64(0)
	for _, a := range args {
		next, err := numeric.Add(res, a.Num())
		if err != nil {
			return value.Value{}, err
		}
		res = next
	}
	return value.Number(res), nil
}

func biMultiply(_ interface{}, args []value.Value) (value.Value, error) {
	res := numeric.FromInt64(1)
	for _, a := range args {
		next, err := numeric.Mul(res, a.Num())
		if err != nil {
			return value.Value{}, err
		}
		res = next
	}
	return value.Number(res), nil
}

func biSubtract(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireAtLeast("-", args, 1); err != nil {
		return value.Value{}, err
	}
	if len(args) == 1 {
		return value.Number(numeric.Negate(args[0].Num())), nil
	}
	res := args[0].Num()
	for _, a := range args[1:] {
		next, err := numeric.Sub(res, a.Num())
		if err != nil {
			return value.Value{}, err
		}
		res = next
	}
	return value.Number(res), nil
}

func biDivide(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireAtLeast("/", args, 1); err != nil {
		return value.Value{}, err
	}
	if len(args) == 1 {
		res, err := numeric.Reciprocal(args[0].Num())
		if err != nil {
			return value.Value{}, err
		}
		return value.Number(res), nil
	}
	res := args[0].Num()
	for _, a := range args[1:] {
		next, err := numeric.Div(res, a.Num())
		if err != nil {
			return value.Value{}, err
		}
		res = next
	}
	return value.Number(res), nil
}

// numericChain implements the R5RS convention that a comparison of one
// argument is trivially true and that (op a b c ...) requires every
// adjacent pair to satisfy op, folding left to right.
func numericChain(name string, args []value.Value, ok func(cmp int) bool) (value.Value, error) {
	if err := requireAtLeast(name, args, 1); err != nil {
		return value.Value{}, err
	}
	prev := args[0].Num()
	for _, a := range args[1:] {
		cur := a.Num()
		if !ok(numeric.Compare(prev, cur)) {
			return value.Boolean(false), nil
		}
		prev = cur
	}
	return value.Boolean(true), nil
}

func biGT(_ interface{}, args []value.Value) (value.Value, error) {
	return numericChain(">", args, func(c int) bool { return c > 0 })
}

func biGE(_ interface{}, args []value.Value) (value.Value, error) {
	return numericChain(">=", args, func(c int) bool { return c >= 0 })
}

func biLT(_ interface{}, args []value.Value) (value.Value, error) {
	return numericChain("<", args, func(c int) bool { return c < 0 })
}

func biLE(_ interface{}, args []value.Value) (value.Value, error) {
	return numericChain("<=", args, func(c int) bool { return c <= 0 })
}

func biNumEq(_ interface{}, args []value.Value) (value.Value, error) {
	return numericChain("=", args, func(c int) bool { return c == 0 })
}

func biMin(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireAtLeast("min", args, 1); err != nil {
		return value.Value{}, err
	}
	res := args[0].Num()
	for _, a := range args[1:] {
		if numeric.Compare(res, a.Num()) > 0 {
			res = a.Num()
		}
	}
	return value.Number(res), nil
}

func biMax(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireAtLeast("max", args, 1); err != nil {
		return value.Value{}, err
	}
	res := args[0].Num()
	for _, a := range args[1:] {
		if numeric.Compare(res, a.Num()) < 0 {
			res = a.Num()
		}
	}
	return value.Number(res), nil
}

func biIsZero(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("zero?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].Num().Sign() == 0), nil
}

func biIsPositive(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("positive?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].Num().Sign() > 0), nil
}

func biIsNegative(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("negative?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].Num().Sign() < 0), nil
}

func biIsEven(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("even?", args, 1); err != nil {
		return value.Value{}, err
	}
	i, err := args[0].Num().IntegerValueExact()
	if err != nil {
		return value.Value{}, err
	}
	return value.Boolean(i.Bit(0) == 0), nil
}

func biIsOdd(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("odd?", args, 1); err != nil {
		return value.Value{}, err
	}
	i, err := args[0].Num().IntegerValueExact()
	if err != nil {
		return value.Value{}, err
	}
	return value.Boolean(i.Bit(0) == 1), nil
}

func biIsInteger(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("integer?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].Num().IsInteger()), nil
}

// The numeric tower has no complex tier, so rational?/real?/complex? are
// true of every Number, matching numeric.Number's own IsRational/IsReal.
func biIsRational(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("rational?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(true), nil
}

func biIsReal(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("real?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(true), nil
}

func biIsComplex(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("complex?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(true), nil
}

func biIsExact(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("exact?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].Num().IsExact()), nil
}

func biIsInexact(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("inexact?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(!args[0].Num().IsExact()), nil
}

func biSqrt(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("sqrt", args, 1); err != nil {
		return value.Value{}, err
	}
	res, err := numeric.Sqrt(args[0].Num())
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(res), nil
}

func biQuotient(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("quotient", args, 2); err != nil {
		return value.Value{}, err
	}
	res, err := numeric.Quotient(args[0].Num(), args[1].Num())
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(res), nil
}

func biRemainder(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("remainder", args, 2); err != nil {
		return value.Value{}, err
	}
	res, err := numeric.Remainder(args[0].Num(), args[1].Num())
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(res), nil
}

func biModulo(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("modulo", args, 2); err != nil {
		return value.Value{}, err
	}
	res, err := numeric.Modulo(args[0].Num(), args[1].Num())
	if err != nil {
		return value.Value{}, err
	}
	return value.Number(res), nil
}

func biGCD(_ interface{}, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return fromInt(0), nil
	}
	res := args[0].Num()
	for _, a := range args[1:] {
		next, err := numeric.GCD(res, a.Num())
		if err != nil {
			return value.Value{}, err
		}
		res = next
	}
	return value.Number(numeric.Abs(res)), nil
}

func biLCM(_ interface{}, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return fromInt(1), nil
	}
	res := args[0].Num()
	for _, a := range args[1:] {
		next, err := numeric.LCM(res, a.Num())
		if err != nil {
			return value.Value{}, err
		}
		res = next
	}
	return value.Number(numeric.Abs(res)), nil
}

func biAbs(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("abs", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Number(numeric.Abs(args[0].Num())), nil
}

func biStringToNumber(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireRange("string->number", args, 1, 2); err != nil {
		return value.Value{}, err
	}
	// Non-decimal radixes are not implemented; the original interpreter
	// carries the same gap in stringToNumber/numberToString.
	if len(args) == 2 {
		base, err := mustIndex(args[1])
		if err != nil {
			return value.Value{}, err
		}
		if base != 10 {
			return value.Value{}, errorf("string->number: only base 10 is supported")
		}
	}
	n, ok := numeric.ParseLiteral(args[0].StrValue().String())
	if !ok {
		return value.Boolean(false), nil
	}
	return value.Number(n), nil
}

func biNumberToString(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("number->string", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.NewString(args[0].Num().DisplayValue()), nil
}
