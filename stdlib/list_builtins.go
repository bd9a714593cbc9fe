/*
File    : zephyr/stdlib/list_builtins.go
Package : stdlib

push/pop/first/last/rest — list construction and decomposition that
doesn't fit the + - * / operator table. Every one of these returns a new
list (or element) rather than mutating its argument in place, consistent
with the language's value semantics for lists.
*/
package stdlib

import (
	"fmt"

	"github.com/zephyrlang/zephyr/object"
)

var listBuiltins = []*object.Builtin{
	{Name: "push", Fn: pushFn},
	{Name: "pop", Fn: popFn},
	{Name: "first", Fn: firstFn},
	{Name: "last", Fn: lastFn},
	{Name: "rest", Fn: restFn},
}

func listArg(name string, args []object.Value, i int) (*object.List, error) {
	if i >= len(args) {
		return nil, fmt.Errorf("%s: missing argument %d", name, i+1)
	}
	l, ok := args[i].(*object.List)
	if !ok {
		return nil, fmt.Errorf("%s: argument %d must be a list, got %s", name, i+1, args[i].Type())
	}
	return l, nil
}

// pushFn appends a value to the end of a list, returning a new list.
func pushFn(args []object.Value) (object.Value, error) {
	if len(args) != 2 {
		return nil, arityError("push", 2, len(args))
	}
	l, err := listArg("push", args, 0)
	if err != nil {
		return nil, err
	}
	elems := append(append([]object.Value{}, l.Elements...), args[1])
	return &object.List{Elements: elems}, nil
}

// popFn removes and returns the last element, as a 2-element list
// [rest, last]; calling pop on an empty list is an error.
func popFn(args []object.Value) (object.Value, error) {
	l, err := listArg("pop", args, 0)
	if err != nil {
		return nil, err
	}
	if len(l.Elements) == 0 {
		return nil, fmt.Errorf("pop: list is empty")
	}
	last := l.Elements[len(l.Elements)-1]
	rest := append([]object.Value{}, l.Elements[:len(l.Elements)-1]...)
	return &object.List{Elements: []object.Value{&object.List{Elements: rest}, last}}, nil
}

func firstFn(args []object.Value) (object.Value, error) {
	l, err := listArg("first", args, 0)
	if err != nil {
		return nil, err
	}
	if len(l.Elements) == 0 {
		return nil, fmt.Errorf("first: list is empty")
	}
	return l.Elements[0], nil
}

func lastFn(args []object.Value) (object.Value, error) {
	l, err := listArg("last", args, 0)
	if err != nil {
		return nil, err
	}
	if len(l.Elements) == 0 {
		return nil, fmt.Errorf("last: list is empty")
	}
	return l.Elements[len(l.Elements)-1], nil
}

// restFn returns every element after the first.
func restFn(args []object.Value) (object.Value, error) {
	l, err := listArg("rest", args, 0)
	if err != nil {
		return nil, err
	}
	if len(l.Elements) == 0 {
		return &object.List{}, nil
	}
	return &object.List{Elements: append([]object.Value{}, l.Elements[1:]...)}, nil
}
