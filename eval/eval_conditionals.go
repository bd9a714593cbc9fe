/*
File    : zephyr/eval/eval_conditionals.go
Package : eval

if/elif/else evaluation. Each case's condition is tried in order; the
first truthy one runs its body and the rest (including any else) are
skipped. If nothing matches and there is no else, the result is Null.
*/
package eval

import (
	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/environment"
	"github.com/zephyrlang/zephyr/object"
)

func (e *Evaluator) evalIf(node *ast.IfNode, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	for _, c := range node.Cases {
		cond, rerr := e.Eval(c.Condition, env)
		if rerr != nil {
			return nil, rerr
		}
		if object.IsSignal(cond) {
			return nil, e.errf(c.Condition, "%s cannot be used as a value", signalName(cond))
		}
		if object.Truthy(cond) {
			return e.Eval(c.Body, env)
		}
	}
	if node.HasElse {
		return e.Eval(node.ElseBody, env)
	}
	return &object.Null{}, nil
}
