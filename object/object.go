/*
File    : zephyr/object/object.go
Package : object

Value is the runtime value model: Integer, Float, String, List, Function,
Null, plus three sentinel kinds (ReturnSignal, BreakSignal, ContinueSignal)
that carry control-flow effects up through the interpreter. Control
signals implement Value on purpose — every evaluation rule that could
produce one already type-switches on its result to decide what to do with
an ordinary value, so checking for a signal is the same kind of check,
not a second channel.
*/
package object

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueType names a Value's runtime kind, for dispatch and for the
// `type()` builtin.
type ValueType string

const (
	IntegerType  ValueType = "int"
	FloatType    ValueType = "float"
	StringType   ValueType = "string"
	ListType     ValueType = "list"
	FunctionType ValueType = "function"
	NullType     ValueType = "null"

	ReturnType   ValueType = "return"
	BreakType    ValueType = "break"
	ContinueType ValueType = "continue"

	BuiltinType ValueType = "builtin"
)

// Value is implemented by every runtime value and every control signal.
type Value interface {
	// Type reports the value's runtime kind.
	Type() ValueType
	// Inspect renders the value's plain text form: decimal numbers,
	// strings without quotes, bracketed lists (elements rendered with
	// Echo), `<function NAME>`, and "null" for Null. Echo gives the
	// quoted form the shell prints.
	Inspect() string
}

// Truthy implements this language's booleanness rule: Integer(0),
// Float(0.0), empty String, empty List, and Null are false; everything
// else is true.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case *Integer:
		return val.Value != 0
	case *Float:
		return val.Value != 0
	case *String:
		return val.Value != ""
	case *List:
		return len(val.Elements) != 0
	case *Null:
		return false
	default:
		return true
	}
}

// Bool returns Integer(1) for true and Integer(0) for false: comparisons
// and booleans are represented as Integer, never a distinct boolean kind.
func Bool(b bool) *Integer {
	if b {
		return &Integer{Value: 1}
	}
	return &Integer{Value: 0}
}

// Integer is a 64-bit signed integer value.
type Integer struct{ Value int64 }

func (i *Integer) Type() ValueType { return IntegerType }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

// Float is a 64-bit floating-point value. Inspect always prints at least
// one fractional digit so 2.0 doesn't print as "2" and get confused with
// an Integer in shell output.
type Float struct{ Value float64 }

func (f *Float) Type() ValueType { return FloatType }
func (f *Float) Inspect() string {
	s := strconv.FormatFloat(f.Value, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// String is an immutable text value.
type String struct{ Value string }

func (s *String) Type() ValueType { return StringType }
func (s *String) Inspect() string { return s.Value }

// QuotedRepr renders the string the way the REPL echoes a result: quoted,
// with \n \t \" escapes reversed back into their two-character form.
func (s *String) QuotedRepr() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.Value {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// List is an ordered, heterogeneous, mutable-identity sequence. The
// binary operators (+ - * /) all return *new* lists rather than
// mutating Elements in place.
type List struct{ Elements []Value }

func (l *List) Type() ValueType { return ListType }
func (l *List) Inspect() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = Echo(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Echo renders a value the way the shell echoes a top-level result:
// strings come out quoted, everything else is its plain Inspect form.
// List uses it for nested elements too, so `["a", 1]` prints with the
// string quoted the same way a bare `"a"` result would.
func Echo(v Value) string {
	if s, ok := v.(*String); ok {
		return s.QuotedRepr()
	}
	return v.Inspect()
}

// Null is the absence of a value: an empty `return`, or a statement
// evaluated for effect only.
type Null struct{}

func (n *Null) Type() ValueType { return NullType }
func (n *Null) Inspect() string { return "null" }

// ReturnSignal carries the value of a `return` statement up through
// enclosing blocks, loops, and the function call that catches it.
type ReturnSignal struct{ Value Value }

func (r *ReturnSignal) Type() ValueType { return ReturnType }
func (r *ReturnSignal) Inspect() string { return r.Value.Inspect() }

// BreakSignal unwinds the nearest enclosing loop.
type BreakSignal struct{}

func (b *BreakSignal) Type() ValueType { return BreakType }
func (b *BreakSignal) Inspect() string { return "break" }

// ContinueSignal skips to the next iteration of the nearest enclosing
// loop.
type ContinueSignal struct{}

func (c *ContinueSignal) Type() ValueType { return ContinueType }
func (c *ContinueSignal) Inspect() string { return "continue" }

// BuiltinFunction is the Go implementation of a host-provided callable.
// It reports errors as plain errors; the eval package is responsible for
// attaching a call-site span and wrapping them into a *diag.RuntimeError,
// since object deliberately has no dependency on diag/lexer.
type BuiltinFunction func(args []Value) (Value, error)

// Builtin wraps a BuiltinFunction as an ordinary Value so it can be
// bound into an environment and invoked through the same Call path as a
// user-defined Function.
type Builtin struct {
	Name string
	Fn   BuiltinFunction
}

func (b *Builtin) Type() ValueType { return BuiltinType }
func (b *Builtin) Inspect() string { return fmt.Sprintf("<builtin %s>", b.Name) }

// IsSignal reports whether v is one of the three control-flow signals,
// the check every statement-sequencing point in eval makes before
// continuing to the next statement.
func IsSignal(v Value) bool {
	switch v.(type) {
	case *ReturnSignal, *BreakSignal, *ContinueSignal:
		return true
	default:
		return false
	}
}
