/*
File    : zephyr/lexer/position.go
Package : lexer

Position & Span are the smallest building blocks of the pipeline: every
token and every AST node carries one, and nothing downstream trusts a
node that doesn't.
*/
package lexer

import "fmt"

// Position locates a single point in a source file.
//
// Line and Column are 1-based, matching how editors and most compiler
// diagnostics report locations. Offset is the 0-based byte offset into
// the source text and is what the diagnostics renderer uses to slice out
// the offending line without re-scanning from the start.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int
}

// String renders a position as "file:line:column" for error messages.
func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Span delimits a syntactic construct between two positions. Start is the
// position of its first character. For identifier, keyword, number and
// string tokens End is the position just past the last character; for
// operator and delimiter tokens (including two-character ones such as
// "==") End == Start.
//
// Every AST node's span must enclose the spans of all its children —
// callers building larger spans out of smaller ones should take Start
// from the leftmost child and End from the rightmost.
type Span struct {
	Start Position
	End   Position
}

// Merge returns the smallest span covering both a and b.
func Merge(a, b Span) Span {
	return Span{Start: a.Start, End: b.End}
}
