/*
File    : zephyr/parser/expr.go
Package : parser

The expression precedence ladder, lowest to highest: assignment,
and/or, not, comparisons, additive, multiplicative, unary, power, call,
atom. Each level's parse function calls the next level up for its
operands, the standard recursive-descent precedence-climbing shape.
*/
package parser

import (
	"strconv"

	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/lexer"
)

// parseExpr is the entry point for any expression context. It only
// special-cases `var IDENT = expr`; everything else falls through to the
// and/or level.
func (p *Parser) parseExpr() ast.Node {
	if p.isKeyword("var") {
		return p.parseVarAssign()
	}
	return p.parseOrAnd()
}

func (p *Parser) parseVarAssign() ast.Node {
	start := p.cur.Span
	p.advance() // consume 'var'
	nameTok := p.expectType(lexer.IDENT)
	p.expectType(lexer.EQ)
	value := p.parseExpr() // right-associative: rhs may itself be `var ...`
	return &ast.VarAssign{Name: nameTok.Literal, Value: value, SpanVal: lexer.Merge(start, value.Span())}
}

// parseOrAnd handles `and`/`or`, left-associative, sharing one
// precedence level.
func (p *Parser) parseOrAnd() ast.Node {
	left := p.parseNot()
	for p.isKeyword("and") || p.isKeyword("or") {
		op := p.cur
		p.advance()
		right := p.parseNot()
		left = &ast.BinOp{Left: left, Op: op, Right: right, SpanVal: lexer.Merge(left.Span(), right.Span())}
	}
	return left
}

func (p *Parser) parseNot() ast.Node {
	if p.isKeyword("not") {
		op := p.cur
		p.advance()
		operand := p.parseNot()
		return &ast.UnaryOp{Op: op, Operand: operand, SpanVal: lexer.Merge(op.Span, operand.Span())}
	}
	return p.parseComparison()
}

var comparisonOps = map[lexer.TokenType]bool{
	lexer.EE: true, lexer.NE: true, lexer.LT: true,
	lexer.GT: true, lexer.LTE: true, lexer.GTE: true,
}

func (p *Parser) parseComparison() ast.Node {
	left := p.parseAdditive()
	for comparisonOps[p.cur.Type] {
		op := p.cur
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinOp{Left: left, Op: op, Right: right, SpanVal: lexer.Merge(left.Span(), right.Span())}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Node {
	left := p.parseMultiplicative()
	for p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op := p.cur
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinOp{Left: left, Op: op, Right: right, SpanVal: lexer.Merge(left.Span(), right.Span())}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Node {
	left := p.parseUnary()
	for p.cur.Type == lexer.MUL || p.cur.Type == lexer.DIV {
		op := p.cur
		p.advance()
		right := p.parseUnary()
		left = &ast.BinOp{Left: left, Op: op, Right: right, SpanVal: lexer.Merge(left.Span(), right.Span())}
	}
	return left
}

// parseUnary handles prefix `+`/`-`. It sits below `^` in binding power,
// so `-2^2` parses as `-(2^2)`: parseUnary recurses on itself for a run
// of prefix operators, then hands off to parsePower for the operand.
func (p *Parser) parseUnary() ast.Node {
	if p.cur.Type == lexer.PLUS || p.cur.Type == lexer.MINUS {
		op := p.cur
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryOp{Op: op, Operand: operand, SpanVal: lexer.Merge(op.Span, operand.Span())}
	}
	return p.parsePower()
}

// parsePower handles right-associative `^`. The right operand is parsed
// at the unary level (not power) so that `2^-3` and chained towers like
// `2^3^2` (== `2^(3^2)`) both parse correctly.
func (p *Parser) parsePower() ast.Node {
	left := p.parseCall()
	if p.cur.Type == lexer.POW {
		op := p.cur
		p.advance()
		right := p.parseUnary()
		return &ast.BinOp{Left: left, Op: op, Right: right, SpanVal: lexer.Merge(left.Span(), right.Span())}
	}
	return left
}

// parseCall parses an atom followed by at most one call suffix —
// `f(1)(2)` is rejected by construction, since there is no loop here.
func (p *Parser) parseCall() ast.Node {
	callee := p.parseAtom()
	if p.cur.Type != lexer.LPAREN {
		return callee
	}
	start := callee.Span()
	p.advance()
	var args []ast.Node
	if p.cur.Type != lexer.RPAREN {
		args = append(args, p.parseExpr())
		for p.cur.Type == lexer.COMMA {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	endTok := p.expectType(lexer.RPAREN)
	return &ast.Call{Callee: callee, Args: args, SpanVal: lexer.Merge(start, endTok.Span)}
}

// parseAtom parses literals, identifiers, parenthesized expressions,
// list literals, and the if/for/while/func constructs, all of which are
// valid at the highest precedence level.
func (p *Parser) parseAtom() ast.Node {
	switch {
	case p.cur.Type == lexer.INT:
		tok := p.cur
		p.advance()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail("malformed integer literal %q", tok.Literal)
		}
		return &ast.NumberLiteral{Int: n, SpanVal: tok.Span}

	case p.cur.Type == lexer.FLOAT:
		tok := p.cur
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fail("malformed float literal %q", tok.Literal)
		}
		return &ast.NumberLiteral{IsFloat: true, Float: f, SpanVal: tok.Span}

	case p.cur.Type == lexer.STRING:
		tok := p.cur
		p.advance()
		return &ast.StringLiteral{Value: tok.Literal, SpanVal: tok.Span}

	case p.cur.Type == lexer.IDENT:
		tok := p.cur
		p.advance()
		return &ast.VarAccess{Name: tok.Literal, SpanVal: tok.Span}

	case p.cur.Type == lexer.LPAREN:
		p.advance()
		expr := p.parseExpr()
		p.expectType(lexer.RPAREN)
		return expr // keep the inner node's own span; parens add no semantics

	case p.cur.Type == lexer.LSQUARE:
		return p.parseListLiteral()

	case p.isKeyword("if"):
		return p.parseIf()

	case p.isKeyword("for"):
		return p.parseFor()

	case p.isKeyword("while"):
		return p.parseWhile()

	case p.isKeyword("func"):
		return p.parseFuncDef()
	}

	p.fail("unexpected token %s %q", p.cur.Type, p.cur.Literal)
	return nil
}

func (p *Parser) parseListLiteral() ast.Node {
	start := p.cur.Span
	p.advance() // consume '['
	var elems []ast.Node
	if p.cur.Type != lexer.RSQUARE {
		elems = append(elems, p.parseExpr())
		for p.cur.Type == lexer.COMMA {
			p.advance()
			elems = append(elems, p.parseExpr())
		}
	}
	endTok := p.expectType(lexer.RSQUARE)
	return &ast.ListLiteral{Elements: elems, SpanVal: lexer.Merge(start, endTok.Span)}
}
