package builtin

import (
	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/value"
	"github.com/rivet-scheme/rivet/vm"
)

func biIsNull(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("null?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsNull()), nil
}

func biIsPair(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("pair?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsPair()), nil
}

func biIsList(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("list?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsList()), nil
}

func biCons(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("cons", args, 2); err != nil {
		return value.Value{}, err
	}
	return value.Cons(args[0], args[1]), nil
}

func biCar(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("car", args, 1); err != nil {
		return value.Value{}, err
	}
	return args[0].Car(), nil
}

func biCdr(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("cdr", args, 1); err != nil {
		return value.Value{}, err
	}
	return args[0].Cdr(), nil
}

func biSetCar(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("set-car!", args, 2); err != nil {
		return value.Value{}, err
	}
	args[0].SetCar(args[1])
	return args[0], nil
}

func biSetCdr(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("set-cdr!", args, 2); err != nil {
		return value.Value{}, err
	}
	args[0].SetCdr(args[1])
	return args[0], nil
}

func biLength(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("length", args, 1); err != nil {
		return value.Value{}, err
	}
	items, err := value.ToSlice(args[0])
	if err != nil {
		return value.Value{}, err
	}
	return fromInt(len(items)), nil
}

func biList(_ interface{}, args []value.Value) (value.Value, error) {
	return value.FromSlice(args), nil
}

// biAppend concatenates every list but the last as-is, then tacks the
// final argument on as the tail (which need not itself be a list),
// matching (append '(a) '(b . c)) => (a b . c).
func biAppend(_ interface{}, args []value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Null, nil
	}
	var items []value.Value
	for _, lst := range args[:len(args)-1] {
		if lst.IsNull() {
			continue
		}
		s, err := value.ToSlice(lst)
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, s...)
	}
	last := args[len(args)-1]
	if len(items) == 0 {
		return last, nil
	}
	return value.FromSliceTail(items, last), nil
}

func biReverse(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("reverse", args, 1); err != nil {
		return value.Value{}, err
	}
	items, err := value.ToSlice(args[0])
	if err != nil {
		return value.Value{}, err
	}
	out := value.Null
	for _, it := range items {
		out = value.Cons(it, out)
	}
	return out, nil
}

func biListTail(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("list-tail", args, 2); err != nil {
		return value.Value{}, err
	}
	idx, err := mustIndex(args[1])
	if err != nil {
		return value.Value{}, err
	}
	cur := args[0]
	for ; idx > 0; idx-- {
		if cur.IsNull() {
			return value.Value{}, errorf("list-tail: index not in range")
		}
		cur = cur.Cdr()
	}
	return cur, nil
}

func biListRef(env interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("list-ref", args, 2); err != nil {
		return value.Value{}, err
	}
	tail, err := biListTail(env, args)
	if err != nil {
		return value.Value{}, err
	}
	return tail.Car(), nil
}

// asEnv recovers the *environment.Environment the VM passes to every
// builtin. Re-entrant procedures (apply, map, for-each, eval, force)
// need it to call back into vm.Apply/vm.Eval.
func asEnv(env interface{}) *environment.Environment {
	e, _ := env.(*environment.Environment)
	return e
}

func biApply(env interface{}, args []value.Value) (value.Value, error) {
	if err := requireAtLeast("apply", args, 1); err != nil {
		return value.Value{}, err
	}
	proc := args[0]
	rest := args[1:]
	var callArgs []value.Value
	if len(rest) > 0 {
		tail, err := value.ToSlice(rest[len(rest)-1])
		if err != nil {
			return value.Value{}, err
		}
		callArgs = append(callArgs, rest[:len(rest)-1]...)
		callArgs = append(callArgs, tail...)
	}
	return vm.Apply(asEnv(env), proc, callArgs)
}

// gatherLists validates that argList and every addlArgs share the same
// length, matching map/for-each's mismatched-list-lengths error.
func gatherLists(argList value.Value, addl []value.Value) ([][]value.Value, error) {
	first, err := value.ToSlice(argList)
	if err != nil {
		return nil, err
	}
	lists := [][]value.Value{first}
	for _, a := range addl {
		s, err := value.ToSlice(a)
		if err != nil {
			return nil, err
		}
		if len(s) != len(first) {
			return nil, errorf("mismatched list lengths")
		}
		lists = append(lists, s)
	}
	return lists, nil
}

func biMap(env interface{}, args []value.Value) (value.Value, error) {
	if err := requireAtLeast("map", args, 2); err != nil {
		return value.Value{}, err
	}
	proc := args[0]
	lists, err := gatherLists(args[1], args[2:])
	if err != nil {
		return value.Value{}, err
	}
	n := len(lists[0])
	out := make([]value.Value, n)
	for i := 0; i < n; i++ {
		callArgs := make([]value.Value, len(lists))
		for j, l := range lists {
			callArgs[j] = l[i]
		}
		v, err := vm.Apply(asEnv(env), proc, callArgs)
		if err != nil {
			return value.Value{}, err
		}
		out[i] = v
	}
	return value.FromSlice(out), nil
}

func biForEach(env interface{}, args []value.Value) (value.Value, error) {
	if err := requireAtLeast("for-each", args, 2); err != nil {
		return value.Value{}, err
	}
	proc := args[0]
	lists, err := gatherLists(args[1], args[2:])
	if err != nil {
		return value.Value{}, err
	}
	n := len(lists[0])
	for i := 0; i < n; i++ {
		callArgs := make([]value.Value, len(lists))
		for j, l := range lists {
			callArgs[j] = l[i]
		}
		if _, err := vm.Apply(asEnv(env), proc, callArgs); err != nil {
			return value.Value{}, err
		}
	}
	return value.Void(), nil
}
