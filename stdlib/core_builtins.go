/*
File    : zephyr/stdlib/core_builtins.go
Package : stdlib

print/println (the host's text-output collaborator, spec §6), the
type-inspection and conversion builtins (type, len, str, int, float),
and run (the host's "load and evaluate another script" collaborator).
*/
package stdlib

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/environment"
	"github.com/zephyrlang/zephyr/eval"
	"github.com/zephyrlang/zephyr/lexer"
	"github.com/zephyrlang/zephyr/object"
	"github.com/zephyrlang/zephyr/parser"
)

func coreBuiltins(w io.Writer) []*object.Builtin {
	return []*object.Builtin{
		{Name: "print", Fn: printFn(w, false)},
		{Name: "println", Fn: printFn(w, true)},
		{Name: "type", Fn: typeFn},
		{Name: "len", Fn: lenFn},
		{Name: "str", Fn: strFn},
		{Name: "int", Fn: intFn},
		{Name: "float", Fn: floatFn},
	}
}

// printFn renders every argument with Inspect, space-separated, and
// writes it to w. println additionally appends a trailing newline;
// print does not.
func printFn(w io.Writer, newline bool) object.BuiltinFunction {
	return func(args []object.Value) (object.Value, error) {
		for i, a := range args {
			if i > 0 {
				fmt.Fprint(w, " ")
			}
			fmt.Fprint(w, a.Inspect())
		}
		if newline {
			fmt.Fprintln(w)
		}
		return &object.Null{}, nil
	}
}

// typeFn implements `type(v)`, returning its ValueType as a String
// (e.g. "int", "list", "function").
func typeFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("type", 1, len(args))
	}
	return &object.String{Value: string(args[0].Type())}, nil
}

// lenFn returns the element count of a List or the byte length of a
// String.
func lenFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("len", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.List:
		return &object.Integer{Value: int64(len(v.Elements))}, nil
	case *object.String:
		return &object.Integer{Value: int64(len(v.Value))}, nil
	default:
		return nil, fmt.Errorf("len is not defined for %s", args[0].Type())
	}
}

// strFn converts any value to its string representation, the same text
// print() would emit for it.
func strFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("str", 1, len(args))
	}
	return &object.String{Value: args[0].Inspect()}, nil
}

// intFn converts a Float to an Integer, truncating any fractional part,
// or parses a String holding a base-10 integer ("3.9" is an error).
func intFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("int", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Integer:
		return v, nil
	case *object.Float:
		return &object.Integer{Value: int64(v.Value)}, nil
	case *object.String:
		n, err := strconv.ParseInt(v.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("int() cannot parse %q", v.Value)
		}
		return &object.Integer{Value: n}, nil
	default:
		return nil, fmt.Errorf("int() is not defined for %s", args[0].Type())
	}
}

// floatFn converts an Integer or a numeric String to a Float.
func floatFn(args []object.Value) (object.Value, error) {
	if len(args) != 1 {
		return nil, arityError("float", 1, len(args))
	}
	switch v := args[0].(type) {
	case *object.Float:
		return v, nil
	case *object.Integer:
		return &object.Float{Value: float64(v.Value)}, nil
	case *object.String:
		f, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("float() cannot parse %q", v.Value)
		}
		return &object.Float{Value: f}, nil
	default:
		return nil, fmt.Errorf("float() is not defined for %s", args[0].Type())
	}
}

// runBuiltin implements `run(path)`: read, tokenize, parse, and evaluate
// another script file against the caller's own global environment, so
// a library script's top-level vars and funcs are still defined after
// run() returns and the caller can use them. It returns the value of the
// script's last statement (Null for an empty script). It's the one builtin that
// reaches outside the interpreter (the filesystem), which is why it's
// wired up here rather than in the core eval package.
func runBuiltin(globalEnv *environment.Environment) *object.Builtin {
	return &object.Builtin{
		Name: "run",
		Fn: func(args []object.Value) (object.Value, error) {
			if len(args) != 1 {
				return nil, arityError("run", 1, len(args))
			}
			pathArg, ok := args[0].(*object.String)
			if !ok {
				return nil, fmt.Errorf("run() expects a string path, got %s", args[0].Type())
			}
			src, err := os.ReadFile(pathArg.Value)
			if err != nil {
				return nil, fmt.Errorf("run(%q): %w", pathArg.Value, err)
			}
			tokens, lexErr := lexer.Tokenize(pathArg.Value, string(src))
			if lexErr != nil {
				return nil, fmt.Errorf("run(%q): %w", pathArg.Value, lexErr)
			}
			prog, synErr := parser.Parse(tokens)
			if synErr != nil {
				return nil, fmt.Errorf("run(%q): %w", pathArg.Value, synErr)
			}
			result, runErr := eval.Evaluate(prog, globalEnv)
			if runErr != nil {
				return nil, runErrAsError(pathArg.Value, runErr)
			}
			if len(prog.Statements) > 1 {
				// A multi-statement script evaluates to a List of every
				// statement's value; run() returns only the last one.
				list := result.(*object.List)
				return list.Elements[len(list.Elements)-1], nil
			}
			return result, nil
		},
	}
}

func runErrAsError(path string, e *diag.RuntimeError) error {
	return fmt.Errorf("run(%q): %w", path, e)
}
