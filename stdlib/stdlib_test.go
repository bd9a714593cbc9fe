package stdlib_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrlang/zephyr/eval"
	"github.com/zephyrlang/zephyr/lexer"
	"github.com/zephyrlang/zephyr/object"
	"github.com/zephyrlang/zephyr/parser"
	"github.com/zephyrlang/zephyr/stdlib"
)

func runWithGlobals(t *testing.T, src string) (object.Value, string) {
	t.Helper()
	var buf bytes.Buffer
	env := stdlib.NewGlobalEnvironment(&buf)
	tokens, lexErr := lexer.Tokenize("test.zp", src)
	require.Nil(t, lexErr)
	prog, synErr := parser.Parse(tokens)
	require.Nil(t, synErr)
	val, runErr := eval.Evaluate(prog, env)
	require.Nil(t, runErr, "runtime error: %v", runErr)
	return val, buf.String()
}

func TestStdlib_PrintWritesToProvidedWriter(t *testing.T) {
	_, out := runWithGlobals(t, `print("hello")`)
	assert.Equal(t, "hello", out)
}

func TestStdlib_PrintlnAddsNewline(t *testing.T) {
	_, out := runWithGlobals(t, `println("hi")`)
	assert.Equal(t, "hi\n", out)
}

func TestStdlib_TypeAndLen(t *testing.T) {
	v, _ := runWithGlobals(t, `type([1,2,3])`)
	assert.Equal(t, "list", v.(*object.String).Value)

	v, _ = runWithGlobals(t, `len([1,2,3])`)
	assert.Equal(t, int64(3), v.(*object.Integer).Value)

	v, _ = runWithGlobals(t, `len("hello")`)
	assert.Equal(t, int64(5), v.(*object.Integer).Value)
}

func TestStdlib_StrIntFloatConversions(t *testing.T) {
	v, _ := runWithGlobals(t, `str(42)`)
	assert.Equal(t, "42", v.(*object.String).Value)

	v, _ = runWithGlobals(t, `int(3.9)`)
	assert.Equal(t, int64(3), v.(*object.Integer).Value)

	v, _ = runWithGlobals(t, `float(3)`)
	assert.Equal(t, 3.0, v.(*object.Float).Value)
}

func TestStdlib_MathBuiltins(t *testing.T) {
	v, _ := runWithGlobals(t, `abs(-5)`)
	assert.Equal(t, int64(5), v.(*object.Integer).Value)

	v, _ = runWithGlobals(t, `max(3, 7)`)
	assert.Equal(t, int64(7), v.(*object.Integer).Value)

	v, _ = runWithGlobals(t, `sqrt(16.0)`)
	assert.Equal(t, 4.0, v.(*object.Float).Value)

	v, _ = runWithGlobals(t, `pow(2, 10)`)
	assert.Equal(t, 1024.0, v.(*object.Float).Value)
}

func TestStdlib_StringBuiltins(t *testing.T) {
	v, _ := runWithGlobals(t, `upper("abc")`)
	assert.Equal(t, "ABC", v.(*object.String).Value)

	v, _ = runWithGlobals(t, `trim("  hi  ")`)
	assert.Equal(t, "hi", v.(*object.String).Value)

	v, _ = runWithGlobals(t, `join(split("a,b,c", ","), "-")`)
	assert.Equal(t, "a-b-c", v.(*object.String).Value)
}

func TestStdlib_ListBuiltins(t *testing.T) {
	v, _ := runWithGlobals(t, `push([1,2], 3)`)
	assert.Equal(t, "[1, 2, 3]", v.Inspect())

	v, _ = runWithGlobals(t, `first([1,2,3])`)
	assert.Equal(t, int64(1), v.(*object.Integer).Value)

	v, _ = runWithGlobals(t, `last([1,2,3])`)
	assert.Equal(t, int64(3), v.(*object.Integer).Value)

	v, _ = runWithGlobals(t, `rest([1,2,3])`)
	assert.Equal(t, "[2, 3]", v.Inspect())
}

func TestStdlib_SqrtOfNegativeIsError(t *testing.T) {
	var buf bytes.Buffer
	env := stdlib.NewGlobalEnvironment(&buf)
	tokens, lexErr := lexer.Tokenize("test.zp", `sqrt(-4)`)
	require.Nil(t, lexErr)
	prog, synErr := parser.Parse(tokens)
	require.Nil(t, synErr)
	_, runErr := eval.Evaluate(prog, env)
	require.NotNil(t, runErr)
	assert.Contains(t, runErr.Error(), "sqrt")
}

func TestStdlib_PopOnEmptyListIsError(t *testing.T) {
	var buf bytes.Buffer
	env := stdlib.NewGlobalEnvironment(&buf)
	tokens, lexErr := lexer.Tokenize("test.zp", `pop([])`)
	require.Nil(t, lexErr)
	prog, synErr := parser.Parse(tokens)
	require.Nil(t, synErr)
	_, runErr := eval.Evaluate(prog, env)
	require.NotNil(t, runErr)
	assert.Contains(t, runErr.Error(), "pop")
}

func TestStdlib_RunLoadsAndEvaluatesAnotherScript(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/helper.zp"
	require.NoError(t, os.WriteFile(path, []byte("var x = 40\nx + 2"), 0o644))

	var buf bytes.Buffer
	env := stdlib.NewGlobalEnvironment(&buf)
	tokens, lexErr := lexer.Tokenize("test.zp", `run("`+path+`")`)
	require.Nil(t, lexErr)
	prog, synErr := parser.Parse(tokens)
	require.Nil(t, synErr)
	val, runErr := eval.Evaluate(prog, env)
	require.Nil(t, runErr)
	assert.Equal(t, int64(42), val.(*object.Integer).Value)
}

func TestStdlib_RunSeesDefinitionsFromEarlierRunCalls(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/helper.zp"
	require.NoError(t, os.WriteFile(path, []byte("func double(n) -> n * 2"), 0o644))

	var buf bytes.Buffer
	env := stdlib.NewGlobalEnvironment(&buf)
	tokens, lexErr := lexer.Tokenize("test.zp", `run("`+path+`")
double(21)`)
	require.Nil(t, lexErr)
	prog, synErr := parser.Parse(tokens)
	require.Nil(t, synErr)
	val, runErr := eval.Evaluate(prog, env)
	require.Nil(t, runErr)
	// Two top-level statements evaluate to a List; check the last one.
	list, ok := val.(*object.List)
	require.True(t, ok)
	require.Len(t, list.Elements, 2)
	assert.Equal(t, int64(42), list.Elements[1].(*object.Integer).Value)
}

func TestStdlib_RunDoesNotSeeCallersFunctionLocals(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/helper.zp"
	require.NoError(t, os.WriteFile(path, []byte(`secret`), 0o644))

	var buf bytes.Buffer
	env := stdlib.NewGlobalEnvironment(&buf)
	tokens, lexErr := lexer.Tokenize("test.zp", "func wrapper()\n    var secret = 1\n    run(\""+path+"\")\nend\nwrapper()")
	require.Nil(t, lexErr)
	prog, synErr := parser.Parse(tokens)
	require.Nil(t, synErr)
	_, runErr := eval.Evaluate(prog, env)
	require.NotNil(t, runErr)
}
