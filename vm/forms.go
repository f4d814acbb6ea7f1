package vm

import (
	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/value"
)

// resolveLet pushes the evaluate-then-define frames for a let/let*/letrec
// binding list. resolveIn is the scope binding expressions are evaluated
// in (the enclosing scope for plain let, the growing body scope for
// let*/letrec); defineIn is always the new body scope. allowDuplicates
// distinguishes let*'s and letrec's plain define (which for letrec
// overwrites the pre-declared placeholder) from let's "no duplicate
// binding" rule; preDeclare pre-binds every
// name to () before evaluating any initializer, which is what makes
// letrec's mutual recursion work.
func resolveLet(stk []Frame, resolveIn, defineIn *environment.Environment, allowDuplicates, preDeclare bool, defns value.Value) ([]Frame, error) {
	entries, err := value.ToSlice(defns)
	if err != nil {
		return nil, err
	}

	type binding struct {
		key  *value.Symbol
		expr value.Value
	}
	bindings := make([]binding, len(entries))
	for i, e := range entries {
		pair, err := value.ToSlice(e)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, evalErrorf("expected 2 arg(s), got %d", len(pair))
		}
		if !pair[0].IsSymbol() {
			return nil, evalErrorf("binding name must be a symbol")
		}
		bindings[i] = binding{key: pair[0].Sym(), expr: pair[1]}
	}

	// Bindings are pushed in reverse order because each push lands closer
	// to the top of a LIFO stack, and the first binding must be evaluated
	// first.
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		if allowDuplicates {
			stk = push(stk, defineIn, OpDefineTerm, value.Sym(b.key))
		} else {
			stk = push(stk, defineIn, OpMustDefineTerm, value.Sym(b.key))
		}
		stk = push(stk, resolveIn, OpEval, b.expr)
	}

	if preDeclare {
		for i := len(bindings) - 1; i >= 0; i-- {
			b := bindings[i]
			stk = push(stk, defineIn, OpDefineTerm, value.Sym(b.key))
			stk = push(stk, defineIn, OpEval, value.Null)
		}
	}

	return stk, nil
}

// letVarNames extracts just the bound names of a let-binding list, used
// to build the self-referential closure that backs named let.
func letVarNames(defns value.Value) ([]*value.Symbol, error) {
	entries, err := value.ToSlice(defns)
	if err != nil {
		return nil, err
	}
	names := make([]*value.Symbol, len(entries))
	for i, e := range entries {
		names[i] = e.Car().Sym()
	}
	return names, nil
}

// expandDo desugars (do ((var init step) ...) (test result ...) command
// ...) into the letrec-bound loop closure the original interpreter
// generates, then returns the two arguments (defns, body) that OP_LETREC
// expects.
func expandDo(args []value.Value) ([]value.Value, error) {
	initExprList := args[0]
	untilCond := args[1]
	commandList := args[2:]

	testExpr := untilCond.Car()
	resExprs := untilCond.Cdr()

	bindingExprs, err := value.ToSlice(initExprList)
	if err != nil {
		return nil, err
	}
	names := make([]*value.Symbol, len(bindingExprs))
	initExprs := make([]value.Value, len(bindingExprs))
	updateExprs := make([]value.Value, len(bindingExprs))

	for i, be := range bindingExprs {
		binding, err := value.ToSlice(be)
		if err != nil {
			return nil, err
		}
		names[i] = binding[0].Sym()
		initExprs[i] = binding[1]
		if len(binding) == 3 {
			updateExprs[i] = binding[2]
		} else {
			updateExprs[i] = binding[0]
		}
	}

	loopSym := value.Unique("do-")

	nameVals := make([]value.Value, len(names))
	for i, n := range names {
		nameVals[i] = value.Sym(n)
	}

	lambda := listOf(sym("lambda"), value.FromSlice(nameVals),
		listOf(sym("if"), testExpr,
			value.Cons(sym("begin"), resExprs),
			listOf(sym("begin"),
				listOf(sym("begin"), commandList...),
				listOf(value.Sym(loopSym), updateExprs...),
			),
		),
	)

	defns := value.List(value.List(value.Sym(loopSym), lambda))
	body := listOf(value.Sym(loopSym), initExprs...)

	return []value.Value{defns, body}, nil
}
