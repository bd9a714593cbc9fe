/*
File    : zephyr/eval/eval_expressions.go
Package : eval

Literal, variable, and operator evaluation: list construction, name
resolution/assignment, and the full binary/unary operator table,
including type promotion (Integer -> Float) and the list-specific
meanings of + - * /.
*/
package eval

import (
	"math"
	"strings"

	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/environment"
	"github.com/zephyrlang/zephyr/object"
)

func (e *Evaluator) evalListLiteral(node *ast.ListLiteral, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	elements := make([]object.Value, 0, len(node.Elements))
	for _, elemNode := range node.Elements {
		val, rerr := e.Eval(elemNode, env)
		if rerr != nil {
			return nil, rerr
		}
		if object.IsSignal(val) {
			return nil, e.errf(elemNode, "%s cannot be used as a value", signalName(val))
		}
		elements = append(elements, val)
	}
	return &object.List{Elements: elements}, nil
}

func (e *Evaluator) evalVarAccess(node *ast.VarAccess, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	val, ok := env.Get(node.Name)
	if !ok {
		return nil, e.errf(node, "undefined name %q", node.Name)
	}
	return val, nil
}

func (e *Evaluator) evalVarAssign(node *ast.VarAssign, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	val, rerr := e.Eval(node.Value, env)
	if rerr != nil {
		return nil, rerr
	}
	if object.IsSignal(val) {
		return nil, e.errf(node.Value, "%s cannot be assigned to a variable", signalName(val))
	}
	env.Define(node.Name, val)
	return val, nil
}

func (e *Evaluator) evalUnaryOp(node *ast.UnaryOp, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	operand, rerr := e.Eval(node.Operand, env)
	if rerr != nil {
		return nil, rerr
	}
	if object.IsSignal(operand) {
		return nil, e.errf(node.Operand, "%s cannot be used as a value", signalName(operand))
	}

	switch node.Op.Literal {
	case "not":
		return object.Bool(!object.Truthy(operand)), nil
	case "-":
		switch v := operand.(type) {
		case *object.Integer:
			return &object.Integer{Value: -v.Value}, nil
		case *object.Float:
			return &object.Float{Value: -v.Value}, nil
		}
		return nil, e.errf(node, "unary '-' is not defined for %s", operand.Type())
	case "+":
		switch operand.(type) {
		case *object.Integer, *object.Float:
			return operand, nil
		}
		return nil, e.errf(node, "unary '+' is not defined for %s", operand.Type())
	}
	return nil, e.errf(node, "unknown unary operator %q", node.Op.Literal)
}

func (e *Evaluator) evalBinOp(node *ast.BinOp, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	// 'and'/'or' short-circuit and never evaluate the right operand
	// unless needed, so they are handled before either side is evaluated.
	if node.Op.Literal == "and" || node.Op.Literal == "or" {
		return e.evalShortCircuit(node, env)
	}

	left, rerr := e.Eval(node.Left, env)
	if rerr != nil {
		return nil, rerr
	}
	if object.IsSignal(left) {
		return nil, e.errf(node.Left, "%s cannot be used as a value", signalName(left))
	}
	right, rerr := e.Eval(node.Right, env)
	if rerr != nil {
		return nil, rerr
	}
	if object.IsSignal(right) {
		return nil, e.errf(node.Right, "%s cannot be used as a value", signalName(right))
	}

	switch node.Op.Literal {
	case "+":
		return e.evalAdd(node, left, right)
	case "-":
		return e.evalSub(node, left, right)
	case "*":
		return e.evalMul(node, left, right)
	case "/":
		return e.evalDiv(node, left, right)
	case "^":
		return e.evalPow(node, left, right)
	case "==":
		return object.Bool(valuesEqual(left, right)), nil
	case "!=":
		return object.Bool(!valuesEqual(left, right)), nil
	case "<", ">", "<=", ">=":
		return e.evalCompare(node, left, right)
	}
	return nil, e.errf(node, "unknown binary operator %q", node.Op.Literal)
}

func (e *Evaluator) evalShortCircuit(node *ast.BinOp, env *environment.Environment) (object.Value, *diag.RuntimeError) {
	left, rerr := e.Eval(node.Left, env)
	if rerr != nil {
		return nil, rerr
	}
	if object.IsSignal(left) {
		return nil, e.errf(node.Left, "%s cannot be used as a value", signalName(left))
	}

	if node.Op.Literal == "and" && !object.Truthy(left) {
		return object.Bool(false), nil
	}
	if node.Op.Literal == "or" && object.Truthy(left) {
		return object.Bool(true), nil
	}

	right, rerr := e.Eval(node.Right, env)
	if rerr != nil {
		return nil, rerr
	}
	if object.IsSignal(right) {
		return nil, e.errf(node.Right, "%s cannot be used as a value", signalName(right))
	}
	return object.Bool(object.Truthy(right)), nil
}

func isNumber(v object.Value) bool {
	switch v.(type) {
	case *object.Integer, *object.Float:
		return true
	default:
		return false
	}
}

func asFloat(v object.Value) float64 {
	switch n := v.(type) {
	case *object.Integer:
		return float64(n.Value)
	case *object.Float:
		return n.Value
	default:
		return 0
	}
}

// evalAdd implements `+`: numeric addition (with Integer -> Float
// promotion when either side is a Float), string concatenation, and
// list append (the right operand becomes one new trailing element).
func (e *Evaluator) evalAdd(node *ast.BinOp, left, right object.Value) (object.Value, *diag.RuntimeError) {
	if isNumber(left) && isNumber(right) {
		if li, lok := left.(*object.Integer); lok {
			if ri, rok := right.(*object.Integer); rok {
				return &object.Integer{Value: li.Value + ri.Value}, nil
			}
		}
		return &object.Float{Value: asFloat(left) + asFloat(right)}, nil
	}
	if ls, ok := left.(*object.String); ok {
		if rs, ok := right.(*object.String); ok {
			return &object.String{Value: ls.Value + rs.Value}, nil
		}
		return nil, e.errf(node, "'+' is not defined for string and %s", right.Type())
	}
	if ll, ok := left.(*object.List); ok {
		elems := append(append([]object.Value{}, ll.Elements...), right)
		return &object.List{Elements: elems}, nil
	}
	return nil, e.errf(node, "'+' is not defined for %s and %s", left.Type(), right.Type())
}

// evalSub implements `-`: numeric subtraction, and list removal —
// `list - i` returns a new list with the element at index i removed.
func (e *Evaluator) evalSub(node *ast.BinOp, left, right object.Value) (object.Value, *diag.RuntimeError) {
	if isNumber(left) && isNumber(right) {
		if li, lok := left.(*object.Integer); lok {
			if ri, rok := right.(*object.Integer); rok {
				return &object.Integer{Value: li.Value - ri.Value}, nil
			}
		}
		return &object.Float{Value: asFloat(left) - asFloat(right)}, nil
	}
	if ll, ok := left.(*object.List); ok {
		ri, ok := right.(*object.Integer)
		if !ok {
			return nil, e.errf(node, "list removal index must be an int, got %s", right.Type())
		}
		idx := int(ri.Value)
		if idx < 0 || idx >= len(ll.Elements) {
			return nil, e.errf(node, "list index %d out of range (length %d)", idx, len(ll.Elements))
		}
		elems := make([]object.Value, 0, len(ll.Elements)-1)
		elems = append(elems, ll.Elements[:idx]...)
		elems = append(elems, ll.Elements[idx+1:]...)
		return &object.List{Elements: elems}, nil
	}
	return nil, e.errf(node, "'-' is not defined for %s and %s", left.Type(), right.Type())
}

// evalMul implements `*`: numeric multiplication, string repetition
// (`"ab" * 3 == "ababab"`), list repetition (`[1,2] * 3`), and list
// concatenation (`[1,2] * [3,4]`).
func (e *Evaluator) evalMul(node *ast.BinOp, left, right object.Value) (object.Value, *diag.RuntimeError) {
	if isNumber(left) && isNumber(right) {
		if li, lok := left.(*object.Integer); lok {
			if ri, rok := right.(*object.Integer); rok {
				return &object.Integer{Value: li.Value * ri.Value}, nil
			}
		}
		return &object.Float{Value: asFloat(left) * asFloat(right)}, nil
	}
	if ls, ok := left.(*object.String); ok {
		ri, ok := right.(*object.Integer)
		if !ok || ri.Value < 0 {
			return nil, e.errf(node, "string repetition count must be a non-negative int")
		}
		return &object.String{Value: strings.Repeat(ls.Value, int(ri.Value))}, nil
	}
	if ll, ok := left.(*object.List); ok {
		switch r := right.(type) {
		case *object.List:
			elems := append(append([]object.Value{}, ll.Elements...), r.Elements...)
			return &object.List{Elements: elems}, nil
		case *object.Integer:
			if r.Value < 0 {
				return nil, e.errf(node, "list repetition count must be non-negative")
			}
			var elems []object.Value
			for i := int64(0); i < r.Value; i++ {
				elems = append(elems, ll.Elements...)
			}
			return &object.List{Elements: elems}, nil
		}
	}
	return nil, e.errf(node, "'*' is not defined for %s and %s", left.Type(), right.Type())
}

// evalDiv implements `/`: numeric division (Integer / Integer stays an
// Integer when it divides evenly, otherwise promotes to Float) and list
// indexing (`list / i` returns the i-th element, 0-based, out-of-range
// errors rather than wrapping).
func (e *Evaluator) evalDiv(node *ast.BinOp, left, right object.Value) (object.Value, *diag.RuntimeError) {
	if isNumber(left) && isNumber(right) {
		if asFloat(right) == 0 {
			return nil, e.errf(node, "division by zero")
		}
		if li, lok := left.(*object.Integer); lok {
			if ri, rok := right.(*object.Integer); rok {
				if li.Value%ri.Value == 0 {
					return &object.Integer{Value: li.Value / ri.Value}, nil
				}
			}
		}
		return &object.Float{Value: asFloat(left) / asFloat(right)}, nil
	}
	if ll, ok := left.(*object.List); ok {
		ri, ok := right.(*object.Integer)
		if !ok {
			return nil, e.errf(node, "list index must be an int, got %s", right.Type())
		}
		idx := int(ri.Value)
		if idx < 0 || idx >= len(ll.Elements) {
			return nil, e.errf(node, "list index %d out of range (length %d)", idx, len(ll.Elements))
		}
		return ll.Elements[idx], nil
	}
	return nil, e.errf(node, "'/' is not defined for %s and %s", left.Type(), right.Type())
}

// evalPow implements `^`. An Integer raised to a non-negative Integer
// power stays an Integer (computed by repeated squaring rather than
// math.Pow, which would round-trip through float64 and risk precision
// loss); any other combination promotes to Float via math.Pow.
func (e *Evaluator) evalPow(node *ast.BinOp, left, right object.Value) (object.Value, *diag.RuntimeError) {
	if !isNumber(left) || !isNumber(right) {
		return nil, e.errf(node, "'^' is not defined for %s and %s", left.Type(), right.Type())
	}
	if li, lok := left.(*object.Integer); lok {
		if ri, rok := right.(*object.Integer); rok && ri.Value >= 0 {
			return &object.Integer{Value: integerPow(li.Value, ri.Value)}, nil
		}
	}
	return &object.Float{Value: math.Pow(asFloat(left), asFloat(right))}, nil
}

func integerPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

func (e *Evaluator) evalCompare(node *ast.BinOp, left, right object.Value) (object.Value, *diag.RuntimeError) {
	if isNumber(left) && isNumber(right) {
		l, r := asFloat(left), asFloat(right)
		switch node.Op.Literal {
		case "<":
			return object.Bool(l < r), nil
		case ">":
			return object.Bool(l > r), nil
		case "<=":
			return object.Bool(l <= r), nil
		case ">=":
			return object.Bool(l >= r), nil
		}
	}
	// Strings are only comparable with == and !=; ordering comparisons
	// fall through to the type-error path below.
	return nil, e.errf(node, "%q is not defined for %s and %s", node.Op.Literal, left.Type(), right.Type())
}

// valuesEqual implements `==`/`!=` structural equality: mismatched types
// are simply unequal rather than an error (except an Integer against a
// Float, which compare numerically), lists compare elementwise,
// and two Nulls are always equal.
func valuesEqual(left, right object.Value) bool {
	if left.Type() != right.Type() {
		if isNumber(left) && isNumber(right) {
			return asFloat(left) == asFloat(right)
		}
		return false
	}
	switch l := left.(type) {
	case *object.Integer:
		return l.Value == right.(*object.Integer).Value
	case *object.Float:
		return l.Value == right.(*object.Float).Value
	case *object.String:
		return l.Value == right.(*object.String).Value
	case *object.Null:
		return true
	case *object.List:
		r := right.(*object.List)
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	default:
		return left == right
	}
}
