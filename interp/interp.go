// Package interp assembles the tokenizer, parser, environment, VM, and
// builtin library into the single embeddable entry point host programs
// use, matching the original's own Scheme class as the top-level
// façade over the same pieces.
package interp

import (
	"github.com/rivet-scheme/rivet/builtin"
	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/parser"
	"github.com/rivet-scheme/rivet/value"
	"github.com/rivet-scheme/rivet/vm"
)

// Interpreter is a single R5RS execution environment: one global scope,
// pre-populated with every native and library procedure.
type Interpreter struct {
	env *environment.Environment
}

// New starts a fresh interpreter with a clean global environment.
func New() *Interpreter {
	env := environment.New(nil)
	builtin.Install(env)
	return &Interpreter{env: env}
}

// Env exposes the global environment, e.g. so a host can pre-define
// values before running any Scheme source.
func (it *Interpreter) Env() *environment.Environment { return it.env }

// LoadString evaluates every top-level form in s in order, returning the
// value of the last one (or the zero Value if s contained none).
func (it *Interpreter) LoadString(s string) (value.Value, error) {
	p := parser.New(s)
	var result value.Value
	for {
		expr, err := p.ReadExpression()
		if err != nil {
			return value.Value{}, err
		}
		if expr.IsEof() {
			return result, nil
		}
		result, err = vm.Eval(it.env, expr)
		if err != nil {
			return value.Value{}, err
		}
	}
}
