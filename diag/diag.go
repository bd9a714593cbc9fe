/*
File    : zephyr/diag/diag.go
Package : diag

Two of the three fatal error families this language needs: SyntaxError
and RuntimeError. (The third, lex errors, is defined in the lexer package
itself as lexer.LexError — diag cannot define it too, since lexer.Span is
diag's own dependency and the reverse import would cycle. Render works
against any error satisfying the standard error interface, so it renders
lexer.LexError exactly the same way.) Each carries a span and a
human-readable detail, and each can Render itself as a source line with a
caret underline, going one step further than a plain "[line:col] message"
prefix into a full diagnostic.
*/
package diag

import (
	"fmt"
	"strings"

	"github.com/zephyrlang/zephyr/lexer"
)

// SyntaxError reports a parser expectation failure.
type SyntaxError struct {
	Span   lexer.Span
	Detail string
}

func (e *SyntaxError) Error() string { return format("syntax error", e.Span, e.Detail) }

// RuntimeError reports a failure during evaluation: undefined name, type
// mismatch, arity mismatch, division by zero, index out of range,
// illegal zero step, a non-callable in call position, or a control-flow
// signal escaping its enclosing construct.
type RuntimeError struct {
	Span   lexer.Span
	Detail string
}

func (e *RuntimeError) Error() string { return format("runtime error", e.Span, e.Detail) }

func format(kind string, span lexer.Span, detail string) string {
	return fmt.Sprintf("%s: %s: %s", span.Start, kind, detail)
}

// Render produces a multi-line diagnostic: the error message, the
// offending source line, and a caret underline spanning from the start
// column to the end column, clamped to the line's own length. A span that
// ends on a different line than it started gets a single caret at its
// start column.
func Render(err error, span lexer.Span, source string) string {
	lines := strings.Split(source, "\n")
	lineNo := span.Start.Line - 1
	if lineNo < 0 || lineNo >= len(lines) {
		return err.Error()
	}
	line := lines[lineNo]

	startCol := span.Start.Column - 1
	endCol := span.End.Column
	if span.End.Line != span.Start.Line || endCol <= startCol {
		endCol = startCol + 1
	}
	if startCol < 0 {
		startCol = 0
	}
	if endCol > len(line) {
		endCol = len(line)
	}
	if startCol > len(line) {
		startCol = len(line)
	}

	caret := strings.Repeat(" ", startCol) + strings.Repeat("^", max(1, endCol-startCol))

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", err.Error())
	fmt.Fprintf(&b, "  %s\n", line)
	fmt.Fprintf(&b, "  %s\n", caret)
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
