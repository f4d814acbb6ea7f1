package builtin

import "github.com/rivet-scheme/rivet/value"

func biEq(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("eq?", args, 2); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(value.Eq(args[0], args[1])), nil
}

func biEqv(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("eqv?", args, 2); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(value.Eqv(args[0], args[1])), nil
}

func biEqual(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("equal?", args, 2); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(value.Equal(args[0], args[1])), nil
}

// biNot returns #t only for the boolean #f; every other value, per
// R5RS, counts as true.
func biNot(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("not", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(!args[0].IsTruthy()), nil
}

func biIsBoolean(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("boolean?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsBoolean()), nil
}
