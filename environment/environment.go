/*
File    : zephyr/environment/environment.go
Package : environment

Environment is the lexically nested symbol table: a map from identifier
to value plus an optional parent pointer. Lookup walks parents; Define
always writes into the current scope, so `var` shadows an outer binding
rather than rebinding it.
*/
package environment

import (
	"github.com/zephyrlang/zephyr/object"
)

// Environment is one lexical scope. A nil Parent marks the global scope.
type Environment struct {
	store  map[string]object.Value
	Parent *Environment
}

// New creates a global environment with no parent.
func New() *Environment {
	return &Environment{store: make(map[string]object.Value)}
}

// NewChild creates a scope nested inside parent — used both for block
// scoping (loop bodies, per-iteration variables) and for function calls,
// whose new environment's parent is the callee's *captured* environment,
// not the caller's, which is how closures resolve free variables through
// their defining scope instead of the call site's.
func NewChild(parent *Environment) *Environment {
	return &Environment{store: make(map[string]object.Value), Parent: parent}
}

// Get walks the parent chain looking for name, returning the bound value
// and true, or (nil, false) if no scope in the chain defines it.
func (e *Environment) Get(name string) (object.Value, bool) {
	if v, ok := e.store[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Define binds name to value in this scope only, unconditionally
// overwriting any existing binding of the same name in this scope. This
// is how `var` works: it never reaches up to rebind an outer variable.
func (e *Environment) Define(name string, value object.Value) {
	e.store[name] = value
}
