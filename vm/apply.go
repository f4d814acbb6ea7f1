package vm

import (
	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/value"
)

// Apply invokes any procedure value — builtin, closure, or captured
// continuation — with already-evaluated arguments. It is the re-entrant
// primitive apply, map, and for-each are built from, generalizing
// EvalClosure (which only handles the closure case) to the same
// three-way dispatch OP_CALL_TERM performs.
func Apply(env *environment.Environment, procVal value.Value, args []value.Value) (result value.Value, err error) {
	defer recoverToError(&err)
	if !procVal.IsProcedure() {
		return value.Value{}, evalErrorf("%s can't be applied", value.Stringify(procVal, true))
	}
	proc := procVal.ProcValue()
	switch proc.Kind {
	case value.ProcContinuation:
		stk := []Frame{
			{Env: env, Op: OpReturn},
			{Env: env, Op: OpEvalCallCC, Args: []value.Value{procVal, value.FromSlice(args)}},
		}
		return vmEval(stk)
	case value.ProcClosure:
		stk := []Frame{
			{Env: env, Op: OpReturn},
			{Env: env, Op: OpEvalClosure, Args: []value.Value{procVal, value.FromSlice(args)}},
		}
		return vmEval(stk)
	default:
		return proc.Builtin(env, args)
	}
}
