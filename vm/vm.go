package vm

import (
	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/value"
)

// Eval evaluates val in env, running the full explicit-stack loop.
func Eval(env *environment.Environment, val value.Value) (result value.Value, err error) {
	defer recoverToError(&err)
	stk := []Frame{
		{Env: env, Op: OpReturn},
		{Env: env, Op: OpEval, Args: []value.Value{val}},
	}
	return vmEval(stk)
}

// EvalClosure directly invokes a closure with already-evaluated
// arguments. The builtins that re-enter evaluation (apply, map,
// for-each) go through Apply, which also handles builtins and
// continuations.
func EvalClosure(env *environment.Environment, closure value.Value, args []value.Value) (result value.Value, err error) {
	defer recoverToError(&err)
	stk := []Frame{
		{Env: env, Op: OpReturn},
		{Env: env, Op: OpEvalClosure, Args: []value.Value{closure, value.FromSlice(args)}},
	}
	return vmEval(stk)
}

func push(stk []Frame, env *environment.Environment, op Opcode, args ...value.Value) []Frame {
	return append(stk, Frame{Env: env, Op: op, Args: args})
}

func first(args []value.Value) value.Value { return args[0] }
func rest(args []value.Value) []value.Value {
	if len(args) == 0 {
		return nil
	}
	return args[1:]
}

func listOf(head value.Value, args ...value.Value) value.Value {
	return value.Cons(head, value.FromSlice(args))
}

func sym(name string) value.Value { return value.SymbolOf(name) }

// vmEval runs frames until an OP_RETURN frame is reached. Each iteration
// executes exactly one opcode, so a call/cc capture taken mid-evaluation
// always sees a stack whose next step is coherent to resume from.
func vmEval(stk []Frame) (value.Value, error) {
	var result value.Value

	for len(stk) > 0 {
		sf := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		switch sf.Op {

		case OpReturn:
			return result, nil

		case OpQuote:
			result = first(sf.Args)

		case OpIfInit:
			test := first(sf.Args)
			tail := rest(sf.Args)
			stk = push(stk, sf.Env, OpIfTerm, tail...)
			stk = push(stk, sf.Env, OpEval, test)

		case OpIfTerm:
			if result.IsTruthy() {
				stk = push(stk, sf.Env, OpEval, first(sf.Args))
			} else {
				tail := rest(sf.Args)
				if len(tail) == 0 {
					result = value.Void()
				} else {
					stk = push(stk, sf.Env, OpEval, tail[0])
				}
			}

		case OpSet:
			key := sf.Args[0]
			expr := sf.Args[1]
			stk = push(stk, sf.Env, OpSetTerm, key)
			stk = push(stk, sf.Env, OpEval, expr)

		case OpSetTerm:
			key := first(sf.Args)
			prev, err := sf.Env.Replace(key.Sym(), result)
			if err != nil {
				return value.Value{}, &EvalError{Msg: "set!", Cause: err}
			}
			result = prev

		case OpEval:
			node := first(sf.Args)
			switch {
			case node.IsSymbol():
				v, err := sf.Env.Lookup(node.Sym())
				if err != nil {
					return value.Value{}, &EvalError{Msg: "eval", Cause: err}
				}
				result = v
			case node.IsPair():
				carVal := node.Car()
				cdr := node.Cdr()
				if !cdr.IsPair() && !cdr.IsNull() {
					return value.Value{}, evalErrorf("can't evaluate pairs, only lists")
				}
				eargs, err := value.ToSlice(cdr)
				if err != nil {
					return value.Value{}, err
				}
				if carVal.IsSymbol() {
					if op, ok := lookupOpcode(carVal.Sym()); ok {
						stk = push(stk, sf.Env, op, eargs...)
						break
					}
				}
				stk = push(stk, sf.Env, OpCallInit, node)
			default:
				result = node
			}

		case OpBegin:
			if len(sf.Args) == 0 {
				result = value.Void()
				break
			}
			if len(sf.Args) > 1 {
				stk = push(stk, sf.Env, OpBegin, rest(sf.Args)...)
			}
			stk = push(stk, sf.Env, OpEval, first(sf.Args))

		case OpAndTest:
			if !result.IsTruthy() {
				break
			}
			fallthrough
		case OpAnd:
			if len(sf.Args) == 0 {
				result = value.Boolean(true)
				break
			}
			if len(sf.Args) > 1 {
				stk = push(stk, sf.Env, OpAndTest, rest(sf.Args)...)
			}
			stk = push(stk, sf.Env, OpEval, first(sf.Args))

		case OpOrTest:
			if result.IsTruthy() {
				break
			}
			fallthrough
		case OpOr:
			if len(sf.Args) == 0 {
				result = value.Boolean(false)
				break
			}
			if len(sf.Args) > 1 {
				stk = push(stk, sf.Env, OpOrTest, rest(sf.Args)...)
			}
			stk = push(stk, sf.Env, OpEval, first(sf.Args))

		case OpLambda:
			formals := first(sf.Args)
			body := rest(sf.Args)
			params, variadic, err := parseFormals(formals)
			if err != nil {
				return value.Value{}, err
			}
			result = value.NewClosure(sf.Env, params, variadic, body)

		case OpTrace:
			tracing = !tracing
			result = value.Boolean(tracing)

		case OpDefineInit:
			vars := first(sf.Args)
			expr := rest(sf.Args)
			if vars.IsSymbol() {
				stk = push(stk, sf.Env, OpDefineTerm, vars)
				stk = push(stk, sf.Env, OpEval, expr[0])
				break
			}
			symV := vars.Car()
			formals := vars.Cdr()
			stk = push(stk, sf.Env, OpDefineTerm, symV)
			lambdaArgs := append([]value.Value{formals}, expr...)
			stk = push(stk, sf.Env, OpLambda, lambdaArgs...)

		case OpDefineTerm:
			symbol := first(sf.Args).Sym()
			sf.Env.Define(symbol, result)
			result = value.Sym(symbol)

		case OpMustDefineTerm:
			symbol := first(sf.Args).Sym()
			if _, existed := sf.Env.Define(symbol, result); existed {
				return value.Value{}, evalErrorf("can't define %s more than once", symbol.Name)
			}
			result = value.Sym(symbol)

		case OpDelay:
			result = value.NewPromise(sf.Env, first(sf.Args))

		case OpCondInit:
			cond := first(sf.Args)
			if !cond.IsPair() {
				return value.Value{}, evalErrorf("malformed cond")
			}
			condArr, err := value.ToSlice(cond)
			if err != nil {
				return value.Value{}, err
			}
			if len(condArr) == 0 {
				return value.Value{}, evalErrorf("cond missing test")
			}
			testExpr := condArr[0]
			if testExpr.IsSymbol() && testExpr.Sym().Equal(value.ElseSym) {
				if len(sf.Args) > 1 {
					return value.Value{}, evalErrorf("else must be final test of cond")
				}
				body := condArr[1:]
				if len(body) == 0 {
					return value.Value{}, evalErrorf("else missing expressions")
				}
				stk = push(stk, sf.Env, OpBegin, body...)
				break
			}
			stk = push(stk, sf.Env, OpCondTest, sf.Args...)
			stk = push(stk, sf.Env, OpEval, testExpr)

		case OpCondTest:
			cond := first(sf.Args)
			testRes := result
			if testRes.IsTruthy() {
				condBody, err := value.ToSlice(cond)
				if err != nil {
					return value.Value{}, err
				}
				if len(condBody) == 1 {
					result = testRes
					break
				}
				if condBody[1].IsSymbol() && condBody[1].Sym().Equal(value.ArrowSym) {
					invocation := listOf(condBody[2], quoteValue(result))
					stk = push(stk, sf.Env, OpEval, invocation)
					break
				}
				stk = push(stk, sf.Env, OpBegin, condBody[1:]...)
				break
			}
			args := rest(sf.Args)
			if len(args) == 0 {
				result = value.Null
				break
			}
			stk = push(stk, sf.Env, OpCondInit, args...)

		case OpLet:
			bodyEnv := environment.New(sf.Env)
			if sf.Args[0].IsPair() || sf.Args[0].IsNull() {
				defns := sf.Args[0]
				body := rest(sf.Args)
				stk = push(stk, bodyEnv, OpBegin, body...)
				var err error
				stk, err = resolveLet(stk, sf.Env, bodyEnv, false, false, defns)
				if err != nil {
					return value.Value{}, err
				}
				break
			}
			if sf.Args[0].IsSymbol() {
				varSym := sf.Args[0].Sym()
				defns := sf.Args[1]
				body := sf.Args[2:]
				stk = push(stk, bodyEnv, OpBegin, body...)
				letVars, err := letVarNames(defns)
				if err != nil {
					return value.Value{}, err
				}
				stk, err = resolveLet(stk, sf.Env, bodyEnv, false, false, defns)
				if err != nil {
					return value.Value{}, err
				}
				closure := value.NewClosure(bodyEnv, letVars, false, body)
				bodyEnv.Define(varSym, closure)
				break
			}
			return value.Value{}, evalErrorf("second arg to let must be a symbol or list")

		case OpLetSeq:
			bodyEnv := environment.New(sf.Env)
			defns := first(sf.Args)
			body := rest(sf.Args)
			stk = push(stk, bodyEnv, OpBegin, body...)
			var err error
			stk, err = resolveLet(stk, bodyEnv, bodyEnv, true, false, defns)
			if err != nil {
				return value.Value{}, err
			}

		case OpLetrec:
			bodyEnv := environment.New(sf.Env)
			defns := first(sf.Args)
			body := rest(sf.Args)
			stk = push(stk, bodyEnv, OpBegin, body...)
			var err error
			stk, err = resolveLet(stk, bodyEnv, bodyEnv, true, true, defns)
			if err != nil {
				return value.Value{}, err
			}

		case OpDo:
			expanded, err := expandDo(sf.Args)
			if err != nil {
				return value.Value{}, err
			}
			stk = push(stk, sf.Env, OpLetrec, expanded...)

		case OpCallInit:
			stk = push(stk, sf.Env, OpCallTerm)
			toEval := sf.Args[0]
			carVal := toEval.Car()
			cdrVal := toEval.Cdr()
			stk = push(stk, sf.Env, OpCallLoop, cdrVal, value.Null)
			stk = push(stk, sf.Env, OpEval, carVal)

		case OpCallLoop:
			unevaluated := sf.Args[0]
			out := value.Cons(result, sf.Args[1])
			if unevaluated.IsNull() {
				result = reverseList(out)
				break
			}
			stk = push(stk, sf.Env, OpCallLoop, unevaluated.Cdr(), out)
			stk = push(stk, sf.Env, OpEval, unevaluated.Car())

		case OpCallTerm:
			callList, err := value.ToSlice(result)
			if err != nil {
				return value.Value{}, err
			}
			possibleProc := callList[0]
			if !possibleProc.IsProcedure() {
				return value.Value{}, evalErrorf("%s can't be evaluated", value.Stringify(possibleProc, true))
			}
			proc := possibleProc.ProcValue()
			operands := callList[1:]

			switch proc.Kind {
			case value.ProcContinuation:
				stk = push(stk, sf.Env, OpEvalCallCC, possibleProc, value.FromSlice(operands))
			case value.ProcClosure:
				stk = push(stk, sf.Env, OpEvalClosure, possibleProc, value.FromSlice(operands))
			default:
				v, err := proc.Builtin(sf.Env, operands)
				if err != nil {
					return value.Value{}, err
				}
				result = v
			}

		case OpEvalClosure:
			closureVal := sf.Args[0]
			closure := closureVal.ProcValue()
			callArgs, err := value.ToSlice(sf.Args[1])
			if err != nil {
				return value.Value{}, err
			}

			defnScope, _ := closure.Env.(*environment.Environment)
			procScope := environment.New(defnScope)

			required := len(closure.Params)
			if closure.Variadic {
				required--
			}
			got := len(callArgs)
			if got < required {
				return value.Value{}, evalErrorf("expected at least %d args, got %d", required, got)
			}
			if got > required && !closure.Variadic {
				return value.Value{}, evalErrorf("expected at most %d args, got %d", required, got)
			}
			for i := 0; i < required; i++ {
				procScope.Define(closure.Params[i], callArgs[i])
			}
			if closure.Variadic {
				procScope.Define(closure.Params[required], value.FromSlice(callArgs[required:]))
			}
			stk = push(stk, procScope, OpBegin, closure.Body...)

		case OpEvalCallCC:
			proc := sf.Args[0].ProcValue()
			callArgs, err := value.ToSlice(sf.Args[1])
			if err != nil {
				return value.Value{}, err
			}
			captured, ok := proc.Frames.([]Frame)
			if !ok {
				return value.Value{}, evalErrorf("malformed continuation")
			}
			stk = append([]Frame(nil), captured...)
			result = callArgs[0]

		case OpCallCCAlias, OpCallCC:
			snapshot := make([]Frame, len(stk))
			copy(snapshot, stk)
			continuation := value.NewContinuation(snapshot)
			stk = push(stk, sf.Env, OpEval, listOf(sf.Args[0], continuation))

		case OpQQInit:
			expanded := expandQQ(first(sf.Args), 0)
			stk = push(stk, sf.Env, OpEval, expanded)

		default:
			return value.Value{}, evalErrorf("unknown operation: %v", sf.Op)
		}
	}

	return value.Value{}, evalErrorf("stack underflow")
}

var tracing = false

func reverseList(v value.Value) value.Value {
	head := value.Null
	for cur := v; !cur.IsNull(); cur = cur.Cdr() {
		head = value.Cons(cur.Car(), head)
	}
	return head
}

func quoteValue(v value.Value) value.Value {
	if v.IsBoolean() || v.IsCharacter() || v.IsString() || v.IsNumber() || v.IsProcedure() {
		return v
	}
	return listOf(value.Sym(value.QuoteSym), v)
}

// parseFormals classifies a lambda's formal-parameter list into the three
// forms R5RS allows: a bare symbol (fully variadic), the empty list (zero
// arity), or a proper list of symbols. An improper list is rejected, as
// the underlying interpreter has never implemented that third syntax.
func parseFormals(formals value.Value) ([]*value.Symbol, bool, error) {
	switch {
	case formals.IsSymbol():
		return []*value.Symbol{formals.Sym()}, true, nil
	case formals.IsNull():
		return nil, false, nil
	case formals.IsPair():
		if !formals.IsList() {
			return nil, false, evalErrorf("improper lists not yet supported in lambda formals")
		}
		items, err := value.ToSlice(formals)
		if err != nil {
			return nil, false, err
		}
		params := make([]*value.Symbol, len(items))
		for i, item := range items {
			if !item.IsSymbol() {
				return nil, false, evalErrorf("lambda formal must be a symbol")
			}
			params[i] = item.Sym()
		}
		return params, false, nil
	default:
		return nil, false, evalErrorf("%s not allowed as first argument to lambda", value.Stringify(formals, true))
	}
}
