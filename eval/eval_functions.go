/*
File    : zephyr/eval/eval_functions.go
Package : eval

Function definition and invocation. A FuncDef evaluates to a
function.Function value that captures the environment it was defined in
(not the one it's later called from) — that captured pointer is what
makes closures work. A named definition also binds its own name in the
defining scope before returning, so direct recursion resolves through
the same lookup path as any other variable.
*/
package eval

import (
	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/environment"
	"github.com/zephyrlang/zephyr/function"
	"github.com/zephyrlang/zephyr/object"
)

func (e *Evaluator) evalFuncDef(node *ast.FuncDef, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	fn := &function.Function{
		Name:         node.Name,
		ArgNames:     node.ArgNames,
		Body:         node.Body,
		Env:          env,
		IsExpression: node.IsExpression,
	}
	if node.Name != "" {
		env.Define(node.Name, fn)
	}
	return fn, nil
}

func (e *Evaluator) evalCall(node *ast.Call, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	callee, rerr := e.Eval(node.Callee, env)
	if rerr != nil {
		return nil, rerr
	}
	if object.IsSignal(callee) {
		return nil, e.errf(node.Callee, "%s is not callable", signalName(callee))
	}

	args := make([]object.Value, 0, len(node.Args))
	for _, argNode := range node.Args {
		val, rerr := e.Eval(argNode, env)
		if rerr != nil {
			return nil, rerr
		}
		if object.IsSignal(val) {
			return nil, e.errf(argNode, "%s cannot be used as an argument", signalName(val))
		}
		args = append(args, val)
	}

	switch fn := callee.(type) {
	case *function.Function:
		return e.callFunction(node, fn, args)
	case *object.Builtin:
		result, err := fn.Fn(args)
		if err != nil {
			return nil, e.errf(node, "%s", err.Error())
		}
		return result, nil
	default:
		return nil, e.errf(node.Callee, "%s is not callable", callee.Type())
	}
}

func (e *Evaluator) callFunction(node *ast.Call, fn *function.Function, args []object.Value) (object.Value, *diag.RuntimeError) {
	if len(args) != len(fn.ArgNames) {
		return nil, e.errf(node, "%s expects %d argument(s), got %d", fn.Inspect(), len(fn.ArgNames), len(args))
	}

	callEnv := environment.NewChild(fn.Env)
	for i, name := range fn.ArgNames {
		callEnv.Define(name, args[i])
	}

	result, rerr := e.Eval(fn.Body, callEnv)
	if rerr != nil {
		return nil, rerr
	}

	switch v := result.(type) {
	case *object.ReturnSignal:
		return v.Value, nil
	case *object.BreakSignal, *object.ContinueSignal:
		return nil, e.errf(node, "%s escaped %s without an enclosing loop", signalName(result), fn.Inspect())
	default:
		return result, nil
	}
}
