/*
File    : zephyr/lexer/lexer.go
Package : lexer

Lexer turns source text into an ordered token stream. It advances one
byte at a time, tracking line/column/offset as it goes, and hands back a
fully formed Token from NextToken on every call.
*/
package lexer

import (
	"fmt"
	"strings"
)

// LexError is returned by NextToken/Tokenize when the source contains a
// malformed token: an unterminated string, a stray '!', more than one '.'
// in a numeric literal, or any other unrecognized character.
type LexError struct {
	Span   Span
	Detail string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: lex error: %s", e.Span.Start, e.Detail)
}

// Lexer scans a single source file. Current holds the byte under the
// cursor (0 past end of input); Pos/Line/Col/Offset track where that byte
// sits.
type Lexer struct {
	file    string
	src     string
	pos     int
	line    int
	col     int
	current byte
}

// New creates a Lexer positioned at the start of src. fileName is carried
// into every Position for diagnostics; it need not correspond to a real
// file (the REPL uses "<repl>").
func New(fileName, src string) *Lexer {
	lx := &Lexer{file: fileName, src: src, pos: 0, line: 1, col: 1}
	if len(src) > 0 {
		lx.current = src[0]
	}
	return lx
}

func (lx *Lexer) pos0() Position {
	return Position{File: lx.file, Line: lx.line, Column: lx.col, Offset: lx.pos}
}

// peek looks one byte ahead without consuming it; returns 0 at end of
// input.
func (lx *Lexer) peek() byte {
	if lx.pos+1 >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+1]
}

// advance consumes the current byte and moves the cursor forward,
// updating line/column bookkeeping. Newlines are handled by the caller
// (NextToken, readString) since the column must reset to 1 on the
// byte *after* the newline, not on the newline itself when it is being
// emitted as a NEWLINE token.
func (lx *Lexer) advance() {
	lx.pos++
	lx.col++
	if lx.pos >= len(lx.src) {
		lx.current = 0
		lx.pos = len(lx.src)
		return
	}
	lx.current = lx.src[lx.pos]
}

func (lx *Lexer) newline() {
	lx.line++
	lx.col = 1
}

// skipWhitespaceAndComments consumes spaces, tabs, and `#`-to-end-of-line
// comments. It stops at a newline character so the caller can still emit
// a NEWLINE token for it, and stops at ';' for the same reason.
func (lx *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case lx.current == ' ' || lx.current == '\t' || lx.current == '\r':
			lx.advance()
		case lx.current == '#':
			for lx.current != '\n' && lx.current != 0 {
				lx.advance()
			}
		default:
			return
		}
	}
}

// Tokenize runs NextToken to completion, returning every token up to and
// including the terminal EOF token.
func Tokenize(fileName, src string) ([]Token, *LexError) {
	lx := New(fileName, src)
	var tokens []Token
	for {
		tok, err := lx.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

// NextToken scans and returns the next token in the stream.
func (lx *Lexer) NextToken() (Token, *LexError) {
	lx.skipWhitespaceAndComments()

	start := lx.pos0()

	switch {
	case lx.current == 0:
		return Token{Type: EOF, Span: Span{start, start}}, nil

	case lx.current == '\n':
		lx.advance()
		lx.newline()
		return Token{Type: NEWLINE, Literal: "\n", Span: Span{start, start}}, nil

	case lx.current == ';':
		lx.advance()
		return Token{Type: NEWLINE, Literal: ";", Span: Span{start, start}}, nil

	case isDigit(lx.current):
		return lx.readNumber()

	case isIdentStart(lx.current):
		return lx.readIdentifier()

	case lx.current == '"':
		return lx.readString()
	}

	// Multi-character operators, then single-character tokens.
	two := func(tt TokenType, lit string) (Token, *LexError) {
		lx.advance()
		lx.advance()
		return Token{Type: tt, Literal: lit, Span: Span{start, start}}, nil
	}
	one := func(tt TokenType, lit string) (Token, *LexError) {
		lx.advance()
		return Token{Type: tt, Literal: lit, Span: Span{start, start}}, nil
	}

	switch lx.current {
	case '+':
		return one(PLUS, "+")
	case '-':
		if lx.peek() == '>' {
			return two(ARROW, "->")
		}
		return one(MINUS, "-")
	case '*':
		return one(MUL, "*")
	case '/':
		return one(DIV, "/")
	case '^':
		return one(POW, "^")
	case '(':
		return one(LPAREN, "(")
	case ')':
		return one(RPAREN, ")")
	case '[':
		return one(LSQUARE, "[")
	case ']':
		return one(RSQUARE, "]")
	case ',':
		return one(COMMA, ",")
	case '=':
		if lx.peek() == '=' {
			return two(EE, "==")
		}
		return one(EQ, "=")
	case '!':
		if lx.peek() == '=' {
			return two(NE, "!=")
		}
		lx.advance()
		return Token{}, &LexError{Span: Span{start, start}, Detail: "unexpected '!' (did you mean '!='?)"}
	case '<':
		if lx.peek() == '=' {
			return two(LTE, "<=")
		}
		return one(LT, "<")
	case '>':
		if lx.peek() == '=' {
			return two(GTE, ">=")
		}
		return one(GT, ">")
	}

	bad := lx.current
	lx.advance()
	return Token{}, &LexError{Span: Span{start, start}, Detail: fmt.Sprintf("unexpected character %q", bad)}
}

// readNumber scans a run of digits optionally containing exactly one '.'.
func (lx *Lexer) readNumber() (Token, *LexError) {
	start := lx.pos0()
	var b strings.Builder
	dots := 0
	for isDigit(lx.current) || lx.current == '.' {
		if lx.current == '.' {
			dots++
		}
		b.WriteByte(lx.current)
		lx.advance()
	}
	if dots > 1 {
		return Token{}, &LexError{Span: Span{start, lx.pos0()}, Detail: "malformed number: more than one '.'"}
	}
	typ := INT
	if dots == 1 {
		typ = FLOAT
	}
	return Token{Type: typ, Literal: b.String(), Span: Span{start, lx.pos0()}}, nil
}

// readIdentifier scans an identifier or keyword.
func (lx *Lexer) readIdentifier() (Token, *LexError) {
	start := lx.pos0()
	var b strings.Builder
	for isIdentPart(lx.current) {
		b.WriteByte(lx.current)
		lx.advance()
	}
	lit := b.String()
	return Token{Type: lookupIdent(lit), Literal: lit, Span: Span{start, lx.pos0()}}, nil
}

// readString scans a double-quoted string literal, recognizing the
// escapes \n, \t, and \" (a literal quote). An unterminated string is a
// lex error.
func (lx *Lexer) readString() (Token, *LexError) {
	start := lx.pos0()
	lx.advance() // consume opening '"'

	var b strings.Builder
	for lx.current != '"' {
		if lx.current == 0 {
			return Token{}, &LexError{Span: Span{start, lx.pos0()}, Detail: "unterminated string literal"}
		}
		if lx.current == '\\' {
			lx.advance()
			switch lx.current {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case 0:
				return Token{}, &LexError{Span: Span{start, lx.pos0()}, Detail: "unterminated string literal"}
			default:
				b.WriteByte('\\')
				b.WriteByte(lx.current)
			}
			lx.advance()
			continue
		}
		b.WriteByte(lx.current)
		if lx.current == '\n' {
			lx.advance()
			lx.newline()
			continue
		}
		lx.advance()
	}
	lx.advance() // consume closing '"'
	return Token{Type: STRING, Literal: b.String(), Span: Span{start, lx.pos0()}}, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}
