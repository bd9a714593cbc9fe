/*
File    : zephyr/function/function.go
Package : function

Function is the runtime representation of a closure: its parameter
names, its body, the environment it captured at definition time, and
whether its body is a single expression or a block of statements. It
lives in its own package (rather than inside object) so that both object
and environment stay free of a dependency on ast — objects, scope, and
function as three packages, with function depending on the other two,
never the reverse.
*/
package function

import (
	"fmt"

	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/environment"
	"github.com/zephyrlang/zephyr/object"
)

// Function implements object.Value so it can be stored, passed, and
// returned exactly like any other value.
type Function struct {
	Name         string
	ArgNames     []string
	Body         ast.Node
	Env          *environment.Environment
	IsExpression bool
}

func (f *Function) Type() object.ValueType { return object.FunctionType }

func (f *Function) Inspect() string {
	if f.Name == "" {
		return "<function anonymous>"
	}
	return fmt.Sprintf("<function %s>", f.Name)
}
