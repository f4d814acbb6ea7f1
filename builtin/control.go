package builtin

import (
	"os"
	"strings"

	"github.com/rivet-scheme/rivet/value"
	"github.com/rivet-scheme/rivet/vm"
)

func biIsProcedure(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("procedure?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsProcedure()), nil
}

// biEval implements (eval expr), evaluating in the caller's environment.
// The original binds a separate environment-specifier argument only in
// name; in practice it always re-enters with the current environment, so
// that is the only form exposed here.
func biEval(env interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("eval", args, 1); err != nil {
		return value.Value{}, err
	}
	return vm.Eval(asEnv(env), args[0])
}

func biLookup(env interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("lookup", args, 1); err != nil {
		return value.Value{}, err
	}
	v, err := asEnv(env).Lookup(args[0].Sym())
	if err != nil {
		return value.Value{}, err
	}
	return v, nil
}

// biForce implements delay/force with R5RS's "evaluate at most once"
// memoization: the first force evaluates the body in the promise's own
// environment and caches the value on the promise; every later force
// returns the cache.
func biForce(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("force", args, 1); err != nil {
		return value.Value{}, err
	}
	p := args[0].PromiseValue()
	if p.Forced {
		return p.Result, nil
	}
	env := asEnv(p.Env)
	res, err := vm.Eval(env, p.Body)
	if err != nil {
		return value.Value{}, err
	}
	p.Forced = true
	p.Result = res
	return res, nil
}

func biExit(_ interface{}, args []value.Value) (value.Value, error) {
	code := 0
	if len(args) == 1 {
		n, err := mustIndex(args[0])
		if err == nil {
			code = n
		}
	}
	os.Exit(code)
	return value.Void(), nil
}

// biError implements (error message irritant ...), joining any trailing
// irritants onto the message the way most Scheme error reporters do,
// generalizing the original's single-string-argument error.
func biError(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireAtLeast("error", args, 1); err != nil {
		return value.Value{}, err
	}
	msg := value.Stringify(args[0], false)
	if len(args) > 1 {
		var irritants []string
		for _, a := range args[1:] {
			irritants = append(irritants, value.Stringify(a, true))
		}
		msg = msg + " " + strings.Join(irritants, " ")
	}
	return value.Value{}, errorf("%s", msg)
}

func biGensym(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("gensym", args, 0); err != nil {
		return value.Value{}, err
	}
	return value.Sym(value.Unique("gensym-")), nil
}

func biVoid(_ interface{}, args []value.Value) (value.Value, error) {
	return value.Void(), nil
}

func biIsVoid(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("void?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsVoid()), nil
}

func biIsPort(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("port?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsPort()), nil
}

func biIsInputPort(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("input-port?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsPort() && args[0].PortValue().IsInputPort()), nil
}

func biIsOutputPort(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("output-port?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsPort() && args[0].PortValue().IsOutputPort()), nil
}

func biIsEOFObject(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("eof-object?", args, 1); err != nil {
		return value.Value{}, err
	}
	return value.Boolean(args[0].IsEof()), nil
}

func biEOF(_ interface{}, args []value.Value) (value.Value, error) {
	if err := requireArgs("eof", args, 0); err != nil {
		return value.Value{}, err
	}
	return value.Eof(), nil
}
