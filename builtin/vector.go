package builtin

import "github.com/rivet-scheme/rivet/value"

func biIsVector(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("vector?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsVector()), nil
}

func biMakeVector(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireRange("make-vector", args, 1, 2); err != nil {
		return value.Value{}, err
	}
	size, err := mustIndex(args[0])
	if err != nil {
		return value.Value{}, err
	}
	fill := value.Value(value.Null)
	if len(args) == 2 {
		fill = args[1]
	}
	items := make([]value.Value, size)
	for i := range items {
		items[i] = fill
	}
	return value.NewVector(items), nil
}

func biVector(_ interface{}, args []value.Value) (value.Value, error) {
	items := make([]value.Value, len(args))
	copy(items, args)
	return value.NewVector(items), nil
}

func biVectorLength(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("vector-length", args, 1); err != nil {
		return value.Value{}, err
	}
	return fromInt(args[0].VecValue().Len()), nil
}

func biVectorRef(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("vector-ref", args, 2); err != nil {
		return value.Value{}, err
	}
	vec := args[0].VecValue()
	idx, err := mustIndex(args[1])
	if err != nil {
		return value.Value{}, err
	}
	if idx < 0 || idx >= len(vec.Items) {
		return value.Value{}, errorf("vector-ref: index out of range")
	}
	return vec.Items[idx], nil
}

func biVectorSet(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("vector-set!", args, 3); err != nil {
		return value.Value{}, err
	}
	vec := args[0].VecValue()
	idx, err := mustIndex(args[1])
	if err != nil {
		return value.Value{}, err
	}
	if idx < 0 || idx >= len(vec.Items) {
		return value.Value{}, errorf("vector-set!: index out of range")
	}
	vec.Items[idx] = args[2]
	return value.Void(), nil
}

func biVectorToList(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("vector->list", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.FromSlice(args[0].VecValue().Items), nil
}

func biListToVector(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("list->vector", args, 1); err != nil {
		return value.Value{}, err
	}
	items, err := value.ToSlice(args[0])
	if err != nil {
		return value.Value{}, err
	}
	return value.NewVector(items), nil
}

func biVectorFill(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("vector-fill!", args, 2); err != nil {
		return value.Value{}, err
	}
	vec := args[0].VecValue()
	for i := range vec.Items {
		vec.Items[i] = args[1]
	}
	return value.Void(), nil
}
