/*
File    : zephyr/parser/control.go
Package : parser

Parsing for the four control constructs that are simultaneously
expressions and statements: if/elif/else, for, while, and func. Each one
is expression-form when its body is a single statement on the same line,
block-form when its body starts with a NEWLINE — see parseBody in
statements.go. A construct that uses block form anywhere in its chain
(any branch of an if, the body of a for/while/func) requires a trailing
`end`; pure expression form does not.
*/
package parser

import (
	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/lexer"
)

// parseIf parses `if cond then body (elif cond then body)* (else body)? end?`.
func (p *Parser) parseIf() ast.Node {
	start := p.cur.Span
	p.advance() // consume 'if'

	node := &ast.IfNode{}
	sawBlock := false

	for {
		cond := p.parseExpr()
		p.expectKeyword("then")
		body, isBlock := p.parseBody("elif", "else", "end")
		sawBlock = sawBlock || isBlock
		node.Cases = append(node.Cases, ast.IfCase{Condition: cond, Body: body, BlockForm: isBlock})
		if !p.isKeyword("elif") {
			break
		}
		p.advance() // consume 'elif'
	}

	end := node.Cases[len(node.Cases)-1].Body.Span()

	if p.isKeyword("else") {
		p.advance()
		elseBody, isBlock := p.parseBody("end")
		sawBlock = sawBlock || isBlock
		node.HasElse = true
		node.ElseBody = elseBody
		node.ElseBlockForm = isBlock
		end = elseBody.Span()
	}

	if sawBlock {
		endTok := p.expectKeyword("end")
		end = endTok.Span
	}

	node.SpanVal = lexer.Merge(start, end)
	return node
}

// parseFor parses `for IDENT = start to end (step step)? do body end?`,
// with an exclusive end bound and a default step of Integer(1).
func (p *Parser) parseFor() ast.Node {
	start := p.cur.Span
	p.advance() // consume 'for'
	nameTok := p.expectType(lexer.IDENT)
	p.expectType(lexer.EQ)
	from := p.parseExpr()
	p.expectKeyword("to")
	to := p.parseExpr()

	var step ast.Node
	if p.isKeyword("step") {
		p.advance()
		step = p.parseExpr()
	}

	p.expectKeyword("do")
	body, isBlock := p.parseBody("end")
	end := body.Span()
	if isBlock {
		endTok := p.expectKeyword("end")
		end = endTok.Span
	}

	return &ast.ForNode{
		VarName:   nameTok.Literal,
		Start:     from,
		End:       to,
		Step:      step,
		Body:      body,
		BlockForm: isBlock,
		SpanVal:   lexer.Merge(start, end),
	}
}

// parseWhile parses `while cond do body end?`.
func (p *Parser) parseWhile() ast.Node {
	start := p.cur.Span
	p.advance() // consume 'while'
	cond := p.parseExpr()
	p.expectKeyword("do")
	body, isBlock := p.parseBody("end")
	end := body.Span()
	if isBlock {
		endTok := p.expectKeyword("end")
		end = endTok.Span
	}

	return &ast.WhileNode{
		Condition: cond,
		Body:      body,
		BlockForm: isBlock,
		SpanVal:   lexer.Merge(start, end),
	}
}

// parseFuncDef parses `func IDENT? ( params ) (-> expr | NEWLINE stmts end)`.
// An anonymous function (no name) is a first-class value; a named one
// also binds its name in the enclosing environment when the definition is
// evaluated (see the eval package).
func (p *Parser) parseFuncDef() ast.Node {
	start := p.cur.Span
	p.advance() // consume 'func'

	name := ""
	if p.cur.Type == lexer.IDENT {
		name = p.cur.Literal
		p.advance()
	}

	p.expectType(lexer.LPAREN)
	var args []string
	if p.cur.Type != lexer.RPAREN {
		args = append(args, p.expectType(lexer.IDENT).Literal)
		for p.cur.Type == lexer.COMMA {
			p.advance()
			args = append(args, p.expectType(lexer.IDENT).Literal)
		}
	}
	p.expectType(lexer.RPAREN)

	var body ast.Node
	isExpression := false
	end := p.cur.Span

	if p.cur.Type == lexer.ARROW {
		p.advance()
		body = p.parseExpr()
		isExpression = true
		end = body.Span()
	} else {
		p.skipNewlines()
		blockStart := p.cur.Span
		block := &ast.Block{}
		for !p.isKeyword("end") {
			if p.atEOF() {
				p.fail("unexpected end of input inside function body")
			}
			block.Statements = append(block.Statements, p.parseStatement())
			if p.isKeyword("end") {
				break
			}
			if !p.isNewline() {
				p.fail("expected end of statement, got %s %q", p.cur.Type, p.cur.Literal)
			}
			p.skipNewlines()
		}
		blockEnd := blockStart
		if len(block.Statements) > 0 {
			blockEnd = block.Statements[len(block.Statements)-1].Span()
		}
		block.SpanVal = lexer.Merge(blockStart, blockEnd)
		body = block
		endTok := p.expectKeyword("end")
		end = endTok.Span
	}

	return &ast.FuncDef{
		Name:         name,
		ArgNames:     args,
		Body:         body,
		IsExpression: isExpression,
		SpanVal:      lexer.Merge(start, end),
	}
}
