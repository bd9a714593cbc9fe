/*
File    : zephyr/lexer/lexer_test.go
Package : lexer
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func types(tokens []Token) []TokenType {
	out := make([]TokenType, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestTokenize_Arithmetic(t *testing.T) {
	tokens, err := Tokenize("<test>", "1 + 2 * 3")
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{INT, PLUS, INT, MUL, INT, EOF}, types(tokens))
}

func TestTokenize_Keywords(t *testing.T) {
	tokens, err := Tokenize("<test>", "var x = if x then 1 else 2 end")
	assert.Nil(t, err)
	for _, kw := range []string{"var", "if", "then", "else", "end"} {
		found := false
		for _, tok := range tokens {
			if tok.Is(kw) {
				found = true
			}
		}
		assert.True(t, found, "expected keyword %q in token stream", kw)
	}
}

func TestTokenize_StatementSeparators(t *testing.T) {
	tokens, err := Tokenize("<test>", "1;2\n3")
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{INT, NEWLINE, INT, NEWLINE, INT, EOF}, types(tokens))
}

func TestTokenize_Operators(t *testing.T) {
	tokens, err := Tokenize("<test>", "== != <= >= < > = -> ^")
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{EE, NE, LTE, GTE, LT, GT, EQ, ARROW, POW, EOF}, types(tokens))
}

func TestTokenize_String(t *testing.T) {
	tokens, err := Tokenize("<test>", `"hello\nworld\t\""`)
	assert.Nil(t, err)
	assert.Equal(t, STRING, tokens[0].Type)
	assert.Equal(t, "hello\nworld\t\"", tokens[0].Literal)
}

func TestTokenize_UnterminatedStringIsLexError(t *testing.T) {
	_, err := Tokenize("<test>", `"unterminated`)
	assert.NotNil(t, err)
}

func TestTokenize_BareBangIsLexError(t *testing.T) {
	_, err := Tokenize("<test>", `!true`)
	assert.NotNil(t, err)
}

func TestTokenize_MalformedNumberIsLexError(t *testing.T) {
	_, err := Tokenize("<test>", `1.2.3`)
	assert.NotNil(t, err)
}

func TestTokenize_Comment(t *testing.T) {
	tokens, err := Tokenize("<test>", "1 # a comment\n+ 2")
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{INT, NEWLINE, PLUS, INT, EOF}, types(tokens))
}

func TestTokenize_FloatVsInt(t *testing.T) {
	tokens, err := Tokenize("<test>", "1 1.5")
	assert.Nil(t, err)
	assert.Equal(t, INT, tokens[0].Type)
	assert.Equal(t, FLOAT, tokens[1].Type)
}

func TestTokenize_LineColumnTracking(t *testing.T) {
	tokens, err := Tokenize("<test>", "1\n22")
	assert.Nil(t, err)
	assert.Equal(t, 1, tokens[0].Span.Start.Line)
	assert.Equal(t, 2, tokens[2].Span.Start.Line)
	assert.Equal(t, 1, tokens[2].Span.Start.Column)
}
