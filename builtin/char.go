package builtin

import (
	"unicode"

	"github.com/rivet-scheme/rivet/value"
)

func biIsChar(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsCharacter()), nil
}

func charCompareChain(name string, args []value.Value, foldCase bool, ok func(cmp int) bool) (value.Value, error) {
	if err := requireAtLeast(name, args, 1); err != nil {
		return value.Value{}, err
	}
	fold := func(r rune) rune {
		if foldCase {
			return unicode.ToLower(r)
		}
		return r
	}
	prev := fold(args[0].Char())
	for _, a := range args[1:] {
		cur := fold(a.Char())
		cmp := 0
		switch {
		case prev < cur:
			cmp = -1
		case prev > cur:
			cmp = 1
		}
		if !ok(cmp) {
			return value.Boolean(false), nil
		}
		prev = cur
	}
	return value.Boolean(true), nil
}

func biCharEQ(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char=?", a, false, func(c int) bool { return c == 0 })
}
func biCharLT(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char<?", a, false, func(c int) bool { return c < 0 })
}
func biCharGT(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char>?", a, false, func(c int) bool { return c > 0 })
}
func biCharGE(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char>=?", a, false, func(c int) bool { return c >= 0 })
}
func biCharLE(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char<=?", a, false, func(c int) bool { return c <= 0 })
}
func biCharCIEQ(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char-ci=?", a, true, func(c int) bool { return c == 0 })
}
func biCharCILT(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char-ci<?", a, true, func(c int) bool { return c < 0 })
}
func biCharCIGT(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char-ci>?", a, true, func(c int) bool { return c > 0 })
}
func biCharCIGE(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char-ci>=?", a, true, func(c int) bool { return c >= 0 })
}
func biCharCILE(_ interface{}, a []value.Value) (value.Value, error) {
	return charCompareChain("char-ci<=?", a, true, func(c int) bool { return c <= 0 })
}

func biCharIsAlphabetic(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char-alphabetic?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(unicode.IsLetter(args[0].Char())), nil
}

func biCharIsNumeric(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char-numeric?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(unicode.IsDigit(args[0].Char())), nil
}

func biCharIsWhitespace(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char-whitespace?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(unicode.IsSpace(args[0].Char())), nil
}

func biCharIsUpperCase(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char-upper-case?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(unicode.IsUpper(args[0].Char())), nil
}

func biCharIsLowerCase(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char-lower-case?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(unicode.IsLower(args[0].Char())), nil
}

func biCharToInteger(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char->integer", args, 1); err != nil {
		return value.Value{}, err
	}
	return fromInt(int(args[0].Char())), nil
}

func biIntegerToChar(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("integer->char", args, 1); err != nil {
		return value.Value{}, err
	}
	i, err := mustIndex(args[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.Character(rune(i)), nil
}

func biCharUpcase(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char-upcase", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Character(unicode.ToUpper(args[0].Char())), nil
}

func biCharDowncase(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("char-downcase", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Character(unicode.ToLower(args[0].Char())), nil
}
