/*
File    : zephyr/stdlib/math_builtins.go
Package : stdlib

abs/min/max/floor/ceil/sqrt/pow, each accepting Integer or Float.
abs/min/max return an Integer when every argument is an Integer and a
Float otherwise; floor/ceil always return an Integer; sqrt and pow always
return a Float, even for Integer arguments.
*/
package stdlib

import (
	"fmt"
	"math"

	"github.com/zephyrlang/zephyr/object"
)

var mathBuiltins = []*object.Builtin{
	{Name: "abs", Fn: absFn},
	{Name: "min", Fn: minFn},
	{Name: "max", Fn: maxFn},
	{Name: "floor", Fn: floorFn},
	{Name: "ceil", Fn: ceilFn},
	{Name: "sqrt", Fn: sqrtFn},
	{Name: "pow", Fn: powFn},
}

func numArg(name string, args []object.Value, i int) (float64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	switch v := args[i].(type) {
	case *object.Integer:
		return float64(v.Value), nil
	case *object.Float:
		return v.Value, nil
	default:
		return 0, fmt.Errorf("%s: argument %d must be a number, got %s", name, i+1, args[i].Type())
	}
}

// absFn preserves Integer-ness: abs(-5) is Integer(5), not Float(5.0).
func absFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("abs", 1, len(args))
	}
	if i, ok := args[0].(*object.Integer); ok {
		if i.Value < 0 {
			return &object.Integer{Value: -i.Value}, nil
		}
		return i, nil
	}
	f, err := numArg("abs", args, 0)
	if err != nil {
		return nil, err
	}
	return &object.Float{Value: math.Abs(f)}, nil
}

func minFn(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityError("min", 2, len(args))
	}
	a, ok1 := args[0].(*object.Integer)
	b, ok2 := args[1].(*object.Integer)
	if ok1 && ok2 {
		if a.Value < b.Value {
			return a, nil
		}
		return b, nil
	}
	fa, err := numArg("min", args, 0)
	if err != nil {
		return nil, err
	}
	fb, err := numArg("min", args, 1)
	if err != nil {
		return nil, err
	}
	return &object.Float{Value: math.Min(fa, fb)}, nil
}

func maxFn(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityError("max", 2, len(args))
	}
	a, ok1 := args[0].(*object.Integer)
	b, ok2 := args[1].(*object.Integer)
	if ok1 && ok2 {
		if a.Value > b.Value {
			return a, nil
		}
		return b, nil
	}
	fa, err := numArg("max", args, 0)
	if err != nil {
		return nil, err
	}
	fb, err := numArg("max", args, 1)
	if err != nil {
		return nil, err
	}
	return &object.Float{Value: math.Max(fa, fb)}, nil
}

func floorFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("floor", 1, len(args))
	}
	f, err := numArg("floor", args, 0)
	if err != nil {
		return nil, err
	}
	return &object.Integer{Value: int64(math.Floor(f))}, nil
}

func ceilFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("ceil", 1, len(args))
	}
	f, err := numArg("ceil", args, 0)
	if err != nil {
		return nil, err
	}
	return &object.Integer{Value: int64(math.Ceil(f))}, nil
}

func sqrtFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("sqrt", 1, len(args))
	}
	f, err := numArg("sqrt", args, 0)
	if err != nil {
		return nil, err
	}
	if f < 0 {
		return nil, fmt.Errorf("sqrt: argument must be non-negative, got %g", f)
	}
	return &object.Float{Value: math.Sqrt(f)}, nil
}

func powFn(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityError("pow", 2, len(args))
	}
	base, err := numArg("pow", args, 0)
	if err != nil {
		return nil, err
	}
	exp, err := numArg("pow", args, 1)
	if err != nil {
		return nil, err
	}
	return &object.Float{Value: math.Pow(base, exp)}, nil
}
