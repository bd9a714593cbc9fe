/*
File    : zephyr/parser/statements.go
Package : parser

Statement-level productions: `return expr?`, `continue`, `break`, and the
bare-expression statement, plus the shared block/expression body parser
used by if/for/while (func parses its own body).
*/
package parser

import (
	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/lexer"
)

func (p *Parser) parseStatement() ast.Node {
	switch {
	case p.isKeyword("return"):
		return p.parseReturn()
	case p.isKeyword("continue"):
		tok := p.cur
		p.advance()
		return &ast.Continue{SpanVal: tok.Span}
	case p.isKeyword("break"):
		tok := p.cur
		p.advance()
		return &ast.Break{SpanVal: tok.Span}
	default:
		return p.parseExpr()
	}
}

func (p *Parser) parseReturn() ast.Node {
	start := p.cur.Span
	p.advance()
	if p.isNewline() || p.atEOF() || p.isKeyword("end") || p.isKeyword("elif") || p.isKeyword("else") {
		return &ast.Return{SpanVal: start}
	}
	expr := p.parseExpr()
	return &ast.Return{Expr: expr, SpanVal: lexer.Merge(start, expr.Span())}
}

// parseBody parses the shared expression-form/block-form body used by
// if/for/while, after the header's introducing keyword (`then`, `do`,
// `else`) has already been consumed. It returns the body node and
// whether block form was used; block form additionally consumes nothing
// past the final statement — callers are responsible for requiring a
// trailing `end` once the whole surrounding construct is known to be in
// block form.
func (p *Parser) parseBody(terminators ...string) (ast.Node, bool) {
	if !p.isNewline() {
		return p.parseStatement(), false
	}
	p.skipNewlines()
	start := p.cur.Span
	block := &ast.Block{}
	for !p.atTerminator(terminators) {
		if p.atEOF() {
			p.fail("unexpected end of input inside block")
		}
		block.Statements = append(block.Statements, p.parseStatement())
		if p.atTerminator(terminators) {
			break
		}
		if !p.isNewline() {
			p.fail("expected end of statement, got %s %q", p.cur.Type, p.cur.Literal)
		}
		p.skipNewlines()
	}
	end := start
	if len(block.Statements) > 0 {
		end = block.Statements[len(block.Statements)-1].Span()
	}
	block.SpanVal = lexer.Merge(start, end)
	return block, true
}

func (p *Parser) atTerminator(words []string) bool {
	for _, w := range words {
		if p.isKeyword(w) {
			return true
		}
	}
	return false
}
