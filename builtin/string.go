package builtin

import (
	"strings"

	"github.com/rivet-scheme/rivet/value"
)

func biIsString(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("string?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsString()), nil
}

func biMakeString(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireRange("make-string", args, 1, 2); err != nil {
		return value.Value{}, err
	}
	size, err := mustIndex(args[0])
	if err != nil {
		return value.Value{}, err
	}
	fill := rune(0)
	if len(args) == 2 {
		fill = args[1].Char()
	}
	runes := make([]rune, size)
	for i := range runes {
		runes[i] = fill
	}
	return value.NewMutableString(runes), nil
}

func biString(_ interface{}, args []value.Value) (value.Value, error) {
	runes := make([]rune, len(args))
	for i, a := range args {
		runes[i] = a.Char()
	}
	return value.NewMutableString(runes), nil
}

func biStringLength(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("string-length", args, 1); err != nil {
		return value.Value{}, err
	}
	return fromInt(args[0].StrValue().Len()), nil
}

func biStringRef(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("string-ref", args, 2); err != nil {
		return value.Value{}, err
	}
	s := args[0].StrValue()
	idx, err := mustIndex(args[1])
	if err != nil {
		return value.Value{}, err
	}
	if idx < 0 || idx >= len(s.Runes) {
		return value.Value{}, errorf("string-ref: index out of range")
	}
	return value.Character(s.Runes[idx]), nil
}

func biStringSet(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("string-set!", args, 3); err != nil {
		return value.Value{}, err
	}
	s := args[0].StrValue()
	idx, err := mustIndex(args[1])
	if err != nil {
		return value.Value{}, err
	}
	if idx < 0 || idx >= len(s.Runes) {
		return value.Value{}, errorf("string-set!: index out of range")
	}
	s.Runes[idx] = args[2].Char()
	return value.Void(), nil
}

func stringCompareChain(name string, args []value.Value, foldCase bool, ok func(cmp int) bool) (value.Value, error) {
	if err := requireAtLeast(name, args, 1); err != nil {
		return value.Value{}, err
	}
	prev := args[0].StrValue().String()
	if foldCase {
		prev = strings.ToLower(prev)
	}
	for _, a := range args[1:] {
		cur := a.StrValue().String()
		if foldCase {
			cur = strings.ToLower(cur)
		}
		if !ok(strings.Compare(prev, cur)) {
			return value.Boolean(false), nil
		}
		prev = cur
	}
	return value.Boolean(true), nil
}

func biStringEQ(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string=?", a, false, func(c int) bool { return c == 0 })
}
func biStringLT(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string<?", a, false, func(c int) bool { return c < 0 })
}
func biStringLE(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string<=?", a, false, func(c int) bool { return c <= 0 })
}
func biStringGT(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string>?", a, false, func(c int) bool { return c > 0 })
}
func biStringGE(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string>=?", a, false, func(c int) bool { return c >= 0 })
}
func biStringCIEQ(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string-ci=?", a, true, func(c int) bool { return c == 0 })
}
func biStringCILT(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string-ci<?", a, true, func(c int) bool { return c < 0 })
}
func biStringCILE(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string-ci<=?", a, true, func(c int) bool { return c <= 0 })
}
func biStringCIGT(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string-ci>?", a, true, func(c int) bool { return c > 0 })
}
func biStringCIGE(_ interface{}, a []value.Value) (value.Value, error) {
	return stringCompareChain("string-ci>=?", a, true, func(c int) bool { return c >= 0 })
}

func biSubstring(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("substring", args, 3); err != nil {
		return value.Value{}, err
	}
	s := args[0].StrValue()
	start, err := mustIndex(args[1])
	if err != nil {
		return value.Value{}, err
	}
	end, err := mustIndex(args[2])
	if err != nil {
		return value.Value{}, err
	}
	if start < 0 || end > len(s.Runes) || start > end {
		return value.Value{}, errorf("substring: index out of range")
	}
	out := make([]rune, end-start)
	copy(out, s.Runes[start:end])
	return value.NewMutableString(out), nil
}

func biStringAppend(_ interface{}, args []value.Value) (value.Value, error) {
	var out []rune
	for _, a := range args {
		out = append(out, a.StrValue().Runes...)
	}
	return value.NewMutableString(out), nil
}

func biStringToList(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("string->list", args, 1); err != nil {
		return value.Value{}, err
	}
	runes := args[0].StrValue().Runes
	out := make([]value.Value, len(runes))
	for i, r := range runes {
		out[i] = value.Character(r)
	}
	return value.FromSlice(out), nil
}

func biListToString(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("list->string", args, 1); err != nil {
		return value.Value{}, err
	}
	items, err := value.ToSlice(args[0])
	if err != nil {
		return value.Value{}, err
	}
	runes := make([]rune, len(items))
	for i, it := range items {
		runes[i] = it.Char()
	}
	return value.NewMutableString(runes), nil
}

func biStringCopy(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("string-copy", args, 1); err != nil {
		return value.Value{}, err
	}
	src := args[0].StrValue().Runes
	out := make([]rune, len(src))
	copy(out, src)
	return value.NewMutableString(out), nil
}

func biStringFill(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("string-fill!", args, 2); err != nil {
		return value.Value{}, err
	}
	s := args[0].StrValue()
	fill := args[1].Char()
	for i := range s.Runes {
		s.Runes[i] = fill
	}
	return value.Void(), nil
}

func biStringToSymbol(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("string->symbol", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.SymbolOf(args[0].StrValue().String()), nil
}

func biSymbolToString(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("symbol->string", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.NewString(args[0].Sym().String()), nil
}

func biIsSymbol(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("symbol?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsSymbol()), nil
}
