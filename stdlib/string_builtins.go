/*
File    : zephyr/stdlib/string_builtins.go
Package : stdlib

upper/lower/split/join/trim.
*/
package stdlib

import (
	"fmt"
	"strings"

	"github.com/zephyrlang/zephyr/object"
)

var stringBuiltins = []*object.Builtin{
	{Name: "upper", Fn: upperFn},
	{Name: "lower", Fn: lowerFn},
	{Name: "split", Fn: splitFn},
	{Name: "join", Fn: joinFn},
	{Name: "trim", Fn: trimFn},
}

func strArg(name string, args []object.Value, i int) (string, error) {
	if i >= len(args) {
		return "", fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	s, ok := args[i].(*object.String)
	if !ok {
		return "", fmt.Errorf("%s: argument %d must be a string, got %s", name, i+1, args[i].Type())
	}
	return s.Value, nil
}

func upperFn(args []object.Value) (object.Value, error) {
	s, err := strArg("upper", args, 0)
	if err != nil {
		return nil, err
	}
	return &object.String{Value: strings.ToUpper(s)}, nil
}

func lowerFn(args []object.Value) (object.Value, error) {
	s, err := strArg("lower", args, 0)
	if err != nil {
		return nil, err
	}
	return &object.String{Value: strings.ToLower(s)}, nil
}

func trimFn(args []object.Value) (object.Value, error) {
	s, err := strArg("trim", args, 0)
	if err != nil {
		return nil, err
	}
	return &object.String{Value: strings.TrimSpace(s)}, nil
}

// splitFn splits on a separator string into a List of Strings.
func splitFn(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityError("split", 2, len(args))
	}
	s, err := strArg("split", args, 0)
	if err != nil {
		return nil, err
	}
	sep, err := strArg("split", args, 1)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(s, sep)
	elems := make([]object.Value, len(parts))
	for i, p := range parts {
		elems[i] = &object.String{Value: p}
	}
	return &object.List{Elements: elems}, nil
}

// joinFn joins a List of Strings with a separator string.
func joinFn(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityError("join", 2, len(args))
	}
	list, ok := args[0].(*object.List)
	if !ok {
		return nil, fmt.Errorf("join: argument 1 must be a list, got %s", args[0].Type())
	}
	sep, err := strArg("join", args, 1)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(list.Elements))
	for i, e := range list.Elements {
		s, ok := e.(*object.String)
		if !ok {
			return nil, fmt.Errorf("join: element %d is not a string, got %s", i, e.Type())
		}
		parts[i] = s.Value
	}
	return &object.String{Value: strings.Join(parts, sep)}, nil
}
