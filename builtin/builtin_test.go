package builtin_test

import (
	"bytes"
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

func run(t *testing.T, env *environment.Environment, src string) value.Value {
	t.Helper()
	p := parser.New(src)
	expr, err := p.ReadExpression()
	require.NoError(t, err)
	result, err := vm.Eval(env, expr)
	require.NoError(t, err)
	return result
}

func TestCxrCompositionsAreBootstrapped(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, "3", run(t, env, `(caddr '(1 2 3 4))`).String())
	assert.Equal(t, "4", run(t, env, `(cadddr '(1 2 3 4))`).String())
}

func TestAssocFamilyIsBootstrapped(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, "(b . 2)", run(t, env, `(assq 'b '((a . 1) (b . 2) (c . 3)))`).String())
	assert.Equal(t, "#f", run(t, env, `(assq 'z '((a . 1) (b . 2)))`).String())
	assert.Equal(t, "(2 3)", run(t, env, `(member 2 '(1 2 3))`).String())
}

func TestVectorMutation(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, "#(0 0 0)", run(t, env, `(make-vector 3 0)`).String())
	run(t, env, `(define v (vector 1 2 3))`)
	run(t, env, `(vector-set! v 1 99)`)
	assert.Equal(t, "#(1 99 3)", run(t, env, `v`).String())
}

func TestStringMutation(t *testing.T) {
	env := newEnv(t)
	run(t, env, `(define s (make-string 3 #\a))`)
	run(t, env, `(string-set! s 1 #\z)`)
	assert.Equal(t, "\"aza\"", run(t, env, `s`).String())
}

func TestAppendPreservesImproperTail(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, "(a b . c)", run(t, env, `(append '(a) '(b . c))`).String())
	assert.Equal(t, "final", run(t, env, `(append '() 'final)`).String())
}

func TestApplyDistributesTrailingList(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, "70", run(t, env, `(apply - 100 '(10 20))`).String())
	assert.Equal(t, "0", run(t, env, `(apply +)`).String())
}

func TestGCDAndLCM(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, "4", run(t, env, `(gcd 32 -36)`).String())
	assert.Equal(t, "288", run(t, env, `(lcm 32 -36)`).String())
	assert.Equal(t, "0", run(t, env, `(gcd)`).String())
	assert.Equal(t, "1", run(t, env, `(lcm)`).String())
}

func TestDisplayAndWriteToExplicitPort(t *testing.T) {
	env := newEnv(t)
	var buf bytes.Buffer
	env.Define(value.Intern("out"), value.NewOutputPort("test", &buf))

	run(t, env, `(display "hi" out)`)
	run(t, env, `(write "hi" out)`)
	run(t, env, `(write-char #\! out)`)
	assert.Equal(t, `hi"hi"!`, buf.String())
}

func TestErrorProcedureProducesFailure(t *testing.T) {
	env := newEnv(t)
	p := parser.New(`(error "bad thing" 1 2)`)
	expr, err := p.ReadExpression()
	require.NoError(t, err)
	_, err = vm.Eval(env, expr)
	assert.Error(t, err)
}

func TestExactnessPredicates(t *testing.T) {
	env := newEnv(t)
	assert.Equal(t, "#t", run(t, env, `(exact? (/ 1 2))`).String())
	assert.Equal(t, "#f", run(t, env, `(exact? 1.5)`).String())
	assert.Equal(t, "#t", run(t, env, `(integer? 4)`).String())
	assert.Equal(t, "#f", run(t, env, `(integer? (/ 4 3))`).String())
}
