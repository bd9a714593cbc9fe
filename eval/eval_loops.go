/*
File    : zephyr/eval/eval_loops.go
Package : eval

for/while evaluation. Both constructs share the same value-collection
rule: a block-form body always evaluates to Null, so the loop as a whole
evaluates to Null; an expression-form body produces a value on every
iteration, so the loop evaluates to a List of those values, in order.
break stops the loop immediately (truncating the collected list where it
stands); continue skips straight to the next iteration. A `return`
escaping the body propagates out of the loop unchanged, to be caught by
the enclosing function call.
*/
package eval

import (
	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/environment"
	"github.com/zephyrlang/zephyr/object"
)

// evalFor evaluates `for name = start to end (step s)? do body`. The end
// bound is exclusive; step defaults to Integer(1) when omitted. A step
// of zero is a runtime error regardless of direction.
func (e *Evaluator) evalFor(node *ast.ForNode, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	startVal, rerr := e.Eval(node.Start, env)
	if rerr != nil {
		return nil, rerr
	}
	endVal, rerr := e.Eval(node.End, env)
	if rerr != nil {
		return nil, rerr
	}
	var stepVal object.Value = &object.Integer{Value: 1}
	if node.Step != nil {
		stepVal, rerr = e.Eval(node.Step, env)
		if rerr != nil {
			return nil, rerr
		}
	}
	if !isNumber(startVal) || !isNumber(endVal) || !isNumber(stepVal) {
		return nil, e.errf(node, "for loop bounds and step must be numbers")
	}

	loopEnv := environment.NewChild(env)
	var results []object.Value

	startI, startIsInt := startVal.(*object.Integer)
	endI, endIsInt := endVal.(*object.Integer)
	stepI, stepIsInt := stepVal.(*object.Integer)

	if startIsInt && endIsInt && stepIsInt {
		if stepI.Value == 0 {
			return nil, e.errf(node, "for loop step must not be zero")
		}
		for i := startI.Value; (stepI.Value > 0 && i < endI.Value) || (stepI.Value < 0 && i > endI.Value); i += stepI.Value {
			loopEnv.Define(node.VarName, &object.Integer{Value: i})
			val, rerr, done := e.runLoopBody(node.Body, node.BlockForm, loopEnv)
			if rerr != nil {
				return nil, rerr
			}
			if ret, ok := val.(*object.ReturnSignal); ok {
				return ret, nil
			}
			if done {
				break
			}
			if val != nil {
				results = append(results, val)
			}
		}
	} else {
		start, end, step := asFloat(startVal), asFloat(endVal), asFloat(stepVal)
		if step == 0 {
			return nil, e.errf(node, "for loop step must not be zero")
		}
		for i := start; (step > 0 && i < end) || (step < 0 && i > end); i += step {
			loopEnv.Define(node.VarName, &object.Float{Value: i})
			val, rerr, done := e.runLoopBody(node.Body, node.BlockForm, loopEnv)
			if rerr != nil {
				return nil, rerr
			}
			if ret, ok := val.(*object.ReturnSignal); ok {
				return ret, nil
			}
			if done {
				break
			}
			if val != nil {
				results = append(results, val)
			}
		}
	}

	if node.BlockForm {
		return &object.Null{}, nil
	}
	return &object.List{Elements: results}, nil
}

// evalWhile evaluates `while cond do body`, re-checking cond before each
// iteration.
func (e *Evaluator) evalWhile(node *ast.WhileNode, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	loopEnv := environment.NewChild(env)
	var results []object.Value

	for {
		cond, rerr := e.Eval(node.Condition, loopEnv)
		if rerr != nil {
			return nil, rerr
		}
		if object.IsSignal(cond) {
			return nil, e.errf(node.Condition, "%s cannot be used as a value", signalName(cond))
		}
		if !object.Truthy(cond) {
			break
		}

		val, rerr, done := e.runLoopBody(node.Body, node.BlockForm, loopEnv)
		if rerr != nil {
			return nil, rerr
		}
		if ret, ok := val.(*object.ReturnSignal); ok {
			return ret, nil
		}
		if done {
			break
		}
		if val != nil {
			results = append(results, val)
		}
	}

	if node.BlockForm {
		return &object.Null{}, nil
	}
	return &object.List{Elements: results}, nil
}

// runLoopBody evaluates one iteration of a loop body and interprets its
// result against the control-flow signals: it returns the value to
// collect (nil if nothing should be collected this iteration), any
// runtime error, and whether the loop should stop.
func (e *Evaluator) runLoopBody(body ast.Node, blockForm bool, env *environment.Environment) (object.Value, *diag.RuntimeError, bool) {
	val, rerr := e.Eval(body, env)
	if rerr != nil {
		return nil, rerr, true
	}
	switch val.(type) {
	case *object.BreakSignal:
		return nil, nil, true
	case *object.ContinueSignal:
		return nil, nil, false
	case *object.ReturnSignal:
		return val, nil, true
	}
	if blockForm {
		return nil, nil, false
	}
	return val, nil, false
}
