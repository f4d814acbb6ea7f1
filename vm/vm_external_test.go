// External test package: these scenarios need the native procedures
// (+, -, =, list) that builtin.Install
// provides, so they live outside package vm to avoid a test-only
// import of builtin, which itself imports vm.
package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivet-scheme/rivet/builtin"
	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/parser"
	"github.com/rivet-scheme/rivet/value"
	"github.com/rivet-scheme/rivet/vm"
)

func newEnv(t *testing.T) *environment.Environment {
	t.Helper()
	env := environment.New(nil)
	builtin.Install(env)
	return env
}

func mustEval(t *testing.T, env *environment.Environment, src string) value.Value {
	t.Helper()
	p := parser.New(src)
	expr, err := p.ReadExpression()
	require.NoError(t, err)
	result, err := vm.Eval(env, expr)
	require.NoError(t, err)
	return result
}

// TestDeepTailCallDoesNotGrowGoStack proves the frame stack is a plain
// slice on the Go heap, not host recursion: a self-tail-call two
// hundred thousand levels deep must not stack-overflow the goroutine.
func TestDeepTailCallDoesNotGrowGoStack(t *testing.T) {
	env := newEnv(t)
	mustEval(t, env, `(define (loop n) (if (= n 0) 'done (loop (- n 1))))`)
	assert.Equal(t, "done", mustEval(t, env, `(loop 200000)`).String())
}

func TestCallCCCapturesIndependentSnapshot(t *testing.T) {
	env := newEnv(t)
	mustEval(t, env, `(define k #f)`)
	assert.Equal(t, "2", mustEval(t, env, `(+ 1 (call/cc (lambda (c) (set! k c) 1)))`).String())

	// Invoking k a second time must not be corrupted by the first
	// invocation's mutation of the resumed stack: each call gets its
	// own independent copy of the captured frames.
	assert.Equal(t, "10", mustEval(t, env, `(k 9)`).String())
	assert.Equal(t, "100", mustEval(t, env, `(k 99)`).String())
}

func TestQuasiquoteExpandsSplicing(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, "(a 1 2 b)", mustEval(t, env, "`(a ,@(list 1 2) b)").String())
}
