package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zephyrlang/zephyr/diag"
)

func TestNeedsMoreInput_UnterminatedBlockWaitsForMoreLines(t *testing.T) {
	err := &diag.SyntaxError{Detail: "unexpected end of input inside function body"}
	assert.True(t, needsMoreInput(err))
}

func TestNeedsMoreInput_MissingEndKeywordWaitsForMoreLines(t *testing.T) {
	err := &diag.SyntaxError{Detail: `expected keyword "end", got EOF ""`}
	assert.True(t, needsMoreInput(err))
}

func TestNeedsMoreInput_GenuineMistakeIsReportedImmediately(t *testing.T) {
	err := &diag.SyntaxError{Detail: `expected RPAREN, got NEWLINE "\n"`}
	assert.False(t, needsMoreInput(err))
}

func TestPrintBanner_IncludesVersionAndPrompt(t *testing.T) {
	r := NewREPL("BANNER", "v0.0.0-test", "----", "zp> ")
	assert.Equal(t, "BANNER", r.Banner)
	assert.Equal(t, "v0.0.0-test", r.Version)
	assert.Equal(t, "zp> ", r.Prompt)
}
