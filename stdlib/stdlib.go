/*
File    : zephyr/stdlib/stdlib.go
Package : stdlib

NewGlobalEnvironment builds the environment a fresh script starts in:
every name in spec's builtin list (print, println, type, len, str, int,
float, push, pop, first, last, rest, the math table, the string table,
and run) bound as an *object.Builtin. This is the language's only
standard library — there is no module system, so every script sees
exactly this fixed set of names unless it shadows one with `var`.
*/
package stdlib

import (
	"fmt"
	"io"
	"os"

	"github.com/zephyrlang/zephyr/environment"
)

// NewGlobalEnvironment returns a root environment with every builtin
// bound, writing print/println output to w.
func NewGlobalEnvironment(w io.Writer) *environment.Environment {
	env := environment.New()
	for _, b := range coreBuiltins(w) {
		env.Define(b.Name, b)
	}
	for _, b := range mathBuiltins {
		env.Define(b.Name, b)
	}
	for _, b := range stringBuiltins {
		env.Define(b.Name, b)
	}
	for _, b := range listBuiltins {
		env.Define(b.Name, b)
	}
	env.Define("run", runBuiltin(env))
	return env
}

// NewDefaultGlobalEnvironment is a convenience for callers (the CLI's
// script runner, the batch runner) that want builtin output going to
// stdout.
func NewDefaultGlobalEnvironment() *environment.Environment {
	return NewGlobalEnvironment(os.Stdout)
}

func arityError(name string, want, got int) error {
	return fmt.Errorf("%s expects %d argument(s), got %d", name, want, got)
}
