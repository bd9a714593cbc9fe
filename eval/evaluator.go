/*
File    : zephyr/eval/evaluator.go
Package : eval

Evaluator walks an AST against an Environment and produces a runtime
Value, the tree-walking interpreter at the center of the language. There
is no bytecode, no compilation pass: Eval recurses straight over the
nodes the parser built.

Errors are reported as a normal second return value (*diag.RuntimeError),
not by panicking — unlike the parser, which can only discover a failure
once and must unwind immediately, the evaluator's callers (the REPL, the
batch runner, `run()`) want to keep going after a failed statement, so
every eval* method threads the error back up explicitly.
*/
package eval

import (
	"fmt"

	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/environment"
	"github.com/zephyrlang/zephyr/object"
)

// Evaluator holds no state of its own — every piece of mutable state
// (variable bindings, the call stack) lives in the Environment chain the
// caller passes in. It exists as a named type so the package can grow
// configuration (a recursion-depth limit, a cancellation hook) without
// changing every call site's signature.
type Evaluator struct{}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator { return &Evaluator{} }

// Evaluate is the package's external entry point (spec's `evaluate`):
// run a parsed Program against env and return its value or the first
// runtime error encountered.
func Evaluate(prog *ast.Program, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	return NewEvaluator().evalProgram(prog, env)
}

// Eval dispatches a single AST node to its evaluation rule. Every node
// type the parser can produce has a case here; there is no visitor
// pattern, just a type switch, since adding an evaluation rule should
// never require touching ast.
func (e *Evaluator) Eval(n ast.Node, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	switch node := n.(type) {
	case *ast.Program:
		return e.evalProgram(node, env)
	case *ast.Block:
		return e.evalBlock(node, env)
	case *ast.NumberLiteral:
		if node.IsFloat {
			return &object.Float{Value: node.Float}, nil
		}
		return &object.Integer{Value: node.Int}, nil
	case *ast.StringLiteral:
		return &object.String{Value: node.Value}, nil
	case *ast.ListLiteral:
		return e.evalListLiteral(node, env)
	case *ast.VarAccess:
		return e.evalVarAccess(node, env)
	case *ast.VarAssign:
		return e.evalVarAssign(node, env)
	case *ast.BinOp:
		return e.evalBinOp(node, env)
	case *ast.UnaryOp:
		return e.evalUnaryOp(node, env)
	case *ast.IfNode:
		return e.evalIf(node, env)
	case *ast.ForNode:
		return e.evalFor(node, env)
	case *ast.WhileNode:
		return e.evalWhile(node, env)
	case *ast.FuncDef:
		return e.evalFuncDef(node, env)
	case *ast.Call:
		return e.evalCall(node, env)
	case *ast.Return:
		return e.evalReturn(node, env)
	case *ast.Continue:
		return &object.ContinueSignal{}, nil
	case *ast.Break:
		return &object.BreakSignal{}, nil
	default:
		return nil, e.errf(n, "internal error: no evaluation rule for %T", n)
	}
}

// evalProgram runs the statements of a whole script. A single-statement
// program evaluates to that statement's value directly; a multi-statement
// program collects every statement's value into a List, in order. A
// control-flow signal reaching this level (break/continue/return with no
// enclosing loop or function) is a runtime error — there is nothing left
// to catch it.
func (e *Evaluator) evalProgram(prog *ast.Program, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	var results []object.Value
	for _, stmt := range prog.Statements {
		val, rerr := e.Eval(stmt, env)
		if rerr != nil {
			return nil, rerr
		}
		if object.IsSignal(val) {
			return nil, e.errf(stmt, "%s outside of its enclosing construct", signalName(val))
		}
		results = append(results, val)
	}
	switch len(results) {
	case 0:
		return &object.Null{}, nil
	case 1:
		return results[0], nil
	default:
		return &object.List{Elements: results}, nil
	}
}

// evalBlock runs a block-form body for effect. Per ast.Block's own
// contract, a block that runs to completion evaluates to Null; the one
// exception is a control-flow signal, which short-circuits the remaining
// statements and is itself returned so the enclosing construct (loop,
// function call, if) can react to it.
func (e *Evaluator) evalBlock(block *ast.Block, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	for _, stmt := range block.Statements {
		val, rerr := e.Eval(stmt, env)
		if rerr != nil {
			return nil, rerr
		}
		if object.IsSignal(val) {
			return val, nil
		}
	}
	return &object.Null{}, nil
}

func (e *Evaluator) evalReturn(node *ast.Return, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	if node.Expr == nil {
		return &object.ReturnSignal{Value: &object.Null{}}, nil
	}
	val, rerr := e.Eval(node.Expr, env)
	if rerr != nil {
		return nil, rerr
	}
	if object.IsSignal(val) {
		return nil, e.errf(node.Expr, "%s cannot be used as a return value", signalName(val))
	}
	return &object.ReturnSignal{Value: val}, nil
}

func signalName(v object.Value) string {
	switch v.(type) {
	case *object.BreakSignal:
		return "break"
	case *object.ContinueSignal:
		return "continue"
	case *object.ReturnSignal:
		return "return"
	default:
		return "signal"
	}
}

// errf builds a RuntimeError anchored at n's span.
func (e *Evaluator) errf(n ast.Node, format string, args ...interface{}) *diag.RuntimeError {
	return &diag.RuntimeError{Span: n.Span(), Detail: fmt.Sprintf(format, args...)}
}
