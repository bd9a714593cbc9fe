/*
File    : zephyr/ast/ast.go
Package : ast

Tagged AST node types for every syntactic form in the grammar. Every node
carries the Span it occupies in the source; the interpreter dispatches on
concrete type via a type switch rather than a visitor, so adding an
evaluation rule never requires touching this file.
*/
package ast

import "github.com/zephyrlang/zephyr/lexer"

// Node is the minimal contract every AST node satisfies: a source span.
type Node interface {
	Span() lexer.Span
}

// Block groups the statements of a block-form body (`do`/`then`/header
// NEWLINE ... `end`). Evaluating a Block always yields Null; its
// statements run for effect only, not for the value of the block.
type Block struct {
	Statements []Node
	SpanVal    lexer.Span
}

func (n *Block) Span() lexer.Span { return n.SpanVal }

// Program is the root of a parsed script: zero or more statements
// separated by one or more NEWLINEs.
type Program struct {
	Statements []Node
	SpanVal    lexer.Span
}

func (p *Program) Span() lexer.Span { return p.SpanVal }

// NumberLiteral is an integer or float literal. IsFloat distinguishes
// "3" (Integer) from "3.0" (Float) — the lexer already decided this by
// whether it saw a '.'.
type NumberLiteral struct {
	IsFloat bool
	Int     int64
	Float   float64
	SpanVal lexer.Span
}

func (n *NumberLiteral) Span() lexer.Span { return n.SpanVal }

// StringLiteral is a double-quoted string with escapes already resolved
// by the lexer.
type StringLiteral struct {
	Value   string
	SpanVal lexer.Span
}

func (n *StringLiteral) Span() lexer.Span { return n.SpanVal }

// ListLiteral is `[ ]` or `[ expr (, expr)* ]`.
type ListLiteral struct {
	Elements []Node
	SpanVal  lexer.Span
}

func (n *ListLiteral) Span() lexer.Span { return n.SpanVal }

// VarAccess resolves an identifier against the current environment.
type VarAccess struct {
	Name    string
	SpanVal lexer.Span
}

func (n *VarAccess) Span() lexer.Span { return n.SpanVal }

// VarAssign is `var IDENT = expr`. It always binds Name in the current
// scope, shadowing any outer binding of the same name.
type VarAssign struct {
	Name    string
	Value   Node
	SpanVal lexer.Span
}

func (n *VarAssign) Span() lexer.Span { return n.SpanVal }

// BinOp is a binary operator application. Op is the operator token's
// literal ("+", "and", "==", ...) — both arithmetic operators and the
// keyword connectives `and`/`or` are represented the same way, since
// both are binary infix forms syntactically.
type BinOp struct {
	Left    Node
	Op      lexer.Token
	Right   Node
	SpanVal lexer.Span
}

func (n *BinOp) Span() lexer.Span { return n.SpanVal }

// UnaryOp is a prefix operator application: `+x`, `-x`, or `not x`.
type UnaryOp struct {
	Op      lexer.Token
	Operand Node
	SpanVal lexer.Span
}

func (n *UnaryOp) Span() lexer.Span { return n.SpanVal }

// IfCase is one `if`/`elif` arm: a condition and the body to run when it
// is the first truthy one. BlockForm records which surface syntax this
// body used — header-then-single-statement ("expression form") or
// header-NEWLINE-statements-end ("block form") — because only the
// expression form contributes a value.
type IfCase struct {
	Condition Node
	Body      Node
	BlockForm bool
}

// IfNode is `if`/`elif`*/`else`?. ElseBody is nil when there is no else
// branch.
type IfNode struct {
	Cases         []IfCase
	ElseBody      Node
	ElseBlockForm bool
	HasElse       bool
	SpanVal       lexer.Span
}

func (n *IfNode) Span() lexer.Span { return n.SpanVal }

// ForNode is `for IDENT = start to end (step step)? do body`. Step is
// nil when omitted, in which case evaluation defaults it to Integer(1).
type ForNode struct {
	VarName   string
	Start     Node
	End       Node
	Step      Node
	Body      Node
	BlockForm bool
	SpanVal   lexer.Span
}

func (n *ForNode) Span() lexer.Span { return n.SpanVal }

// WhileNode is `while condition do body`.
type WhileNode struct {
	Condition Node
	Body      Node
	BlockForm bool
	SpanVal   lexer.Span
}

func (n *WhileNode) Span() lexer.Span { return n.SpanVal }

// FuncDef is a function literal/declaration. Name is empty for anonymous
// functions (`func (a, b) -> a + b`). IsExpression mirrors the
// expression-vs-block surface form. A block-form Body is a *Block, which
// must hit a `return` to produce a non-null value; the interpreter
// evaluates Body directly and does not read IsExpression.
type FuncDef struct {
	Name         string
	ArgNames     []string
	Body         Node
	IsExpression bool
	SpanVal      lexer.Span
}

func (n *FuncDef) Span() lexer.Span { return n.SpanVal }

// Call is a function invocation: `callee(args...)`. Only one call suffix
// is ever parsed per call expression — `f(1)(2)` is a syntax error.
type Call struct {
	Callee  Node
	Args    []Node
	SpanVal lexer.Span
}

func (n *Call) Span() lexer.Span { return n.SpanVal }

// Return is `return expr?`. Expr is nil for a bare `return`, which
// evaluates to Null.
type Return struct {
	Expr    Node
	SpanVal lexer.Span
}

func (n *Return) Span() lexer.Span { return n.SpanVal }

// Continue is the `continue` statement.
type Continue struct {
	SpanVal lexer.Span
}

func (n *Continue) Span() lexer.Span { return n.SpanVal }

// Break is the `break` statement.
type Break struct {
	SpanVal lexer.Span
}

func (n *Break) Span() lexer.Span { return n.SpanVal }
