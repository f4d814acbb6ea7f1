package environment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rivet-scheme/rivet/environment"
	"github.com/rivet-scheme/rivet/value"
)

func TestDefineAndLookup(t *testing.T) {
	env := environment.New(nil)
	sym := value.Intern("x")
	env.Define(sym, value.Boolean(true))

	v, err := env.Lookup(sym)
	require.NoError(t, err)
	assert.True(t, v.IsTruthy())
}

func TestLookupTraversesParent(t *testing.T) {
	parent := environment.New(nil)
	sym := value.Intern("y")
	parent.Define(sym, value.Character('a'))

	child := environment.New(parent)
	v, err := child.Lookup(sym)
	require.NoError(t, err)
	assert.Equal(t, 'a', v.Char())
}

func TestLookupUnboundErrors(t *testing.T) {
	env := environment.New(nil)
	_, err := env.Lookup(value.Intern("nope"))
	assert.Error(t, err)
}

func TestReplaceFindsInnermostBinding(t *testing.T) {
	parent := environment.New(nil)
	sym := value.Intern("z")
	parent.Define(sym, value.Character('a'))

	child := environment.New(parent)
	child.Define(sym, value.Character('b'))

	_, err := child.Replace(sym, value.Character('c'))
	require.NoError(t, err)

	v, _ := child.Lookup(sym)
	assert.Equal(t, 'c', v.Char())
	pv, _ := parent.Lookup(sym)
	assert.Equal(t, 'a', pv.Char())
}

func TestReplaceUnboundErrors(t *testing.T) {
	env := environment.New(nil)
	_, err := env.Replace(value.Intern("nope"), value.Boolean(false))
	assert.Error(t, err)
}
