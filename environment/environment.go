// Package environment implements nested lexical scopes over interned
// symbols, matching the parent-chain lookup semantics of the evaluator's
// binding model.
package environment

import (
	"fmt"

	"github.com/rivet-scheme/rivet/value"
)

// Environment is a single scope frame, chained to its lexical parent.
type Environment struct {
	parent *Environment
	vars   map[*value.Symbol]value.Value
}

// New creates a fresh scope. parent may be nil for the global scope.
func New(parent *Environment) *Environment {
	return &Environment{parent: parent, vars: make(map[*value.Symbol]value.Value)}
}

// Define binds symbol to val in this scope, returning the previous
// binding (the zero Value, distinguishable via the second return) if one
// existed only in this scope.
func (e *Environment) Define(symbol *value.Symbol, val value.Value) (value.Value, bool) {
	prev, ok := e.vars[symbol]
	e.vars[symbol] = val
	return prev, ok
}

// Replace assigns val to symbol's existing binding, searching from the
// innermost scope outward, and errors if the symbol is unbound anywhere
// in the chain.
func (e *Environment) Replace(symbol *value.Symbol, val value.Value) (value.Value, error) {
	for env := e; env != nil; env = env.parent {
		if prev, ok := env.vars[symbol]; ok {
			env.vars[symbol] = val
			return prev, nil
		}
	}
	return value.Value{}, fmt.Errorf("symbol %s not defined", symbol.Name)
}

// Lookup resolves symbol from innermost to outermost scope.
func (e *Environment) Lookup(symbol *value.Symbol) (value.Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[symbol]; ok {
			return v, nil
		}
	}
	return value.Value{}, fmt.Errorf("symbol %s not defined", symbol.Name)
}

// IsDefined reports whether symbol is bound anywhere in the chain.
func (e *Environment) IsDefined(symbol *value.Symbol) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[symbol]; ok {
			return true
		}
	}
	return false
}

// Keys returns the union of all symbols bound in this scope and its
// ancestors.
func (e *Environment) Keys() []*value.Symbol {
	seen := make(map[*value.Symbol]bool)
	for env := e; env != nil; env = env.parent {
		for k := range env.vars {
			seen[k] = true
		}
	}
	keys := make([]*value.Symbol, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	return keys
}

// Size returns the count of all defined symbols visible from this scope.
func (e *Environment) Size() int { return len(e.Keys()) }

// Parent exposes the lexical parent (nil for the global scope).
func (e *Environment) Parent() *Environment { return e.parent }
