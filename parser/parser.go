/*
File    : zephyr/parser/parser.go
Package : parser

A recursive-descent parser with one token of lookahead, following a
fixed precedence ladder (lowest `var IDENT = expr` down to `atom`). The
Parser carries a two-token window (cur/peek) the way a Pratt parser
does, but drives expression parsing through one recursive parseExpr
chain per precedence level rather than a Pratt function-table, since
the grammar here is a fixed numbered ladder rather than open-ended
operator precedence.

The parser never produces a partial tree: the first error it hits aborts
construction and is returned to the caller.
*/
package parser

import (
	"fmt"

	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/diag"
	"github.com/zephyrlang/zephyr/lexer"
)

// Parser holds the token stream and the lookahead window.
type Parser struct {
	tokens []lexer.Token
	pos    int
	cur    lexer.Token
	peek   lexer.Token
}

// Parse tokenizes nothing itself — it consumes an already-lexed token
// stream and returns the Program or the first SyntaxError encountered.
func Parse(tokens []lexer.Token) (prog *ast.Program, err *diag.SyntaxError) {
	p := &Parser{tokens: tokens}
	p.advance()
	p.advance()

	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*diag.SyntaxError); ok {
				prog, err = nil, se
				return
			}
			panic(r)
		}
	}()

	return p.parseProgram(), nil
}

func (p *Parser) advance() {
	p.cur = p.peek
	if p.pos < len(p.tokens) {
		p.peek = p.tokens[p.pos]
		p.pos++
	} else {
		p.peek = lexer.Token{Type: lexer.EOF}
	}
}

func (p *Parser) atEOF() bool { return p.cur.Type == lexer.EOF }

func (p *Parser) isNewline() bool { return p.cur.Type == lexer.NEWLINE }

func (p *Parser) isKeyword(word string) bool { return p.cur.Is(word) }

// fail aborts the parse with a SyntaxError at the current token's span.
// It panics rather than returning an error through every call frame:
// the parser never produces a partial tree, so any failure unwinds
// straight out of Parse.
func (p *Parser) fail(format string, args ...interface{}) {
	panic(&diag.SyntaxError{Span: p.cur.Span, Detail: fmt.Sprintf(format, args...)})
}

// expect checks the current token against a type/literal and advances
// past it, failing otherwise.
func (p *Parser) expectType(tt lexer.TokenType) lexer.Token {
	if p.cur.Type != tt {
		p.fail("expected %s, got %s %q", tt, p.cur.Type, p.cur.Literal)
	}
	tok := p.cur
	p.advance()
	return tok
}

func (p *Parser) expectKeyword(word string) lexer.Token {
	if !p.cur.Is(word) {
		p.fail("expected keyword %q, got %s %q", word, p.cur.Type, p.cur.Literal)
	}
	tok := p.cur
	p.advance()
	return tok
}

// skipNewlines consumes zero or more NEWLINE tokens.
func (p *Parser) skipNewlines() {
	for p.isNewline() {
		p.advance()
	}
}

// parseProgram parses the whole token stream: optional leading/trailing
// NEWLINEs, statements separated by one or more NEWLINEs.
func (p *Parser) parseProgram() *ast.Program {
	start := p.cur.Span
	prog := &ast.Program{}
	p.skipNewlines()
	for !p.atEOF() {
		stmt := p.parseStatement()
		prog.Statements = append(prog.Statements, stmt)
		if p.atEOF() {
			break
		}
		if !p.isNewline() {
			p.fail("expected end of statement, got %s %q", p.cur.Type, p.cur.Literal)
		}
		p.skipNewlines()
	}
	end := start
	if len(prog.Statements) > 0 {
		end = prog.Statements[len(prog.Statements)-1].Span()
	}
	prog.SpanVal = lexer.Merge(start, end)
	return prog
}
