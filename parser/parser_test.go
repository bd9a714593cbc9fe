package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrlang/zephyr/ast"
	"github.com/zephyrlang/zephyr/lexer"
	"github.com/zephyrlang/zephyr/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	toks, lexErr := lexer.Tokenize("test.zp", src)
	require.Nil(t, lexErr, "lex error: %v", lexErr)
	prog, err := parser.Parse(toks)
	require.Nil(t, err, "syntax error: %v", err)
	return prog
}

func TestParse_ArithmeticPrecedence(t *testing.T) {
	prog := parse(t, "1 + 2 * 3")
	require.Len(t, prog.Statements, 1)
	bin, ok := prog.Statements[0].(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "+", bin.Op.Literal)
	_, leftIsNumber := bin.Left.(*ast.NumberLiteral)
	assert.True(t, leftIsNumber)
	mul, ok := bin.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Op.Literal)
}

func TestParse_PowerIsRightAssociativeAndBindsTighterThanUnary(t *testing.T) {
	prog := parse(t, "-2^2")
	unary, ok := prog.Statements[0].(*ast.UnaryOp)
	require.True(t, ok, "expected top-level UnaryOp, got %T", prog.Statements[0])
	assert.Equal(t, "-", unary.Op.Literal)
	pow, ok := unary.Operand.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "^", pow.Op.Literal)

	prog2 := parse(t, "2^3^2")
	top, ok := prog2.Statements[0].(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "^", top.Op.Literal)
	rightTower, ok := top.Right.(*ast.BinOp)
	require.True(t, ok, "expected right-associative nesting, got %T", top.Right)
	assert.Equal(t, "^", rightTower.Op.Literal)
}

func TestParse_CallDoesNotChain(t *testing.T) {
	_, lexErr := lexer.Tokenize("test.zp", "f(1)(2)")
	require.Nil(t, lexErr)
	toks, _ := lexer.Tokenize("test.zp", "f(1)(2)")
	_, err := parser.Parse(toks)
	require.NotNil(t, err, "f(1)(2) should be a syntax error: only one call suffix is parsed")
}

func TestParse_VarAssignIsRightAssociative(t *testing.T) {
	prog := parse(t, "var x = var y = 5")
	outer, ok := prog.Statements[0].(*ast.VarAssign)
	require.True(t, ok)
	assert.Equal(t, "x", outer.Name)
	inner, ok := outer.Value.(*ast.VarAssign)
	require.True(t, ok)
	assert.Equal(t, "y", inner.Name)
}

func TestParse_IfExpressionFormNoEnd(t *testing.T) {
	prog := parse(t, "if x > 0 then 1 else 0")
	ifNode, ok := prog.Statements[0].(*ast.IfNode)
	require.True(t, ok)
	require.Len(t, ifNode.Cases, 1)
	assert.False(t, ifNode.Cases[0].BlockForm)
	assert.True(t, ifNode.HasElse)
	assert.False(t, ifNode.ElseBlockForm)
}

func TestParse_IfBlockFormRequiresEnd(t *testing.T) {
	src := "if x > 0 then\nvar y = 1\ny\nelse\nvar y = 2\ny\nend"
	prog := parse(t, src)
	ifNode, ok := prog.Statements[0].(*ast.IfNode)
	require.True(t, ok)
	assert.True(t, ifNode.Cases[0].BlockForm)
	assert.True(t, ifNode.ElseBlockForm)
}

func TestParse_IfElifElseChain(t *testing.T) {
	src := "if x == 1 then 1 elif x == 2 then 2 else 3"
	prog := parse(t, src)
	ifNode := prog.Statements[0].(*ast.IfNode)
	require.Len(t, ifNode.Cases, 2)
	assert.True(t, ifNode.HasElse)
}

func TestParse_ForLoopExpressionForm(t *testing.T) {
	prog := parse(t, "for i = 1 to 5 do i * i")
	forNode, ok := prog.Statements[0].(*ast.ForNode)
	require.True(t, ok)
	assert.Equal(t, "i", forNode.VarName)
	assert.Nil(t, forNode.Step)
	assert.False(t, forNode.BlockForm)
}

func TestParse_ForLoopWithStep(t *testing.T) {
	prog := parse(t, "for i = 0 to 10 step 2 do i")
	forNode := prog.Statements[0].(*ast.ForNode)
	require.NotNil(t, forNode.Step)
}

func TestParse_WhileLoopBlockForm(t *testing.T) {
	src := "while i < 10 do\nvar i = i + 1\nend"
	prog := parse(t, src)
	whileNode, ok := prog.Statements[0].(*ast.WhileNode)
	require.True(t, ok)
	assert.True(t, whileNode.BlockForm)
}

func TestParse_FuncDefExpressionForm(t *testing.T) {
	prog := parse(t, "func add(a, b) -> a + b")
	fn, ok := prog.Statements[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, []string{"a", "b"}, fn.ArgNames)
	assert.True(t, fn.IsExpression)
}

func TestParse_FuncDefBlockForm(t *testing.T) {
	src := "func fact(n)\nif n <= 1 then return 1\nreturn n * fact(n - 1)\nend"
	prog := parse(t, src)
	fn, ok := prog.Statements[0].(*ast.FuncDef)
	require.True(t, ok)
	assert.False(t, fn.IsExpression)
	block, ok := fn.Body.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, block.Statements, 2)
}

func TestParse_AnonymousFunc(t *testing.T) {
	prog := parse(t, "var square = func(x) -> x ^ 2")
	assign := prog.Statements[0].(*ast.VarAssign)
	fn, ok := assign.Value.(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "", fn.Name)
}

func TestParse_ListLiteral(t *testing.T) {
	prog := parse(t, `[1, 2, "three"]`)
	list, ok := prog.Statements[0].(*ast.ListLiteral)
	require.True(t, ok)
	assert.Len(t, list.Elements, 3)
}

func TestParse_MultipleStatementsSeparatedByNewlineOrSemicolon(t *testing.T) {
	prog := parse(t, "1 + 2;3 * 4\n5 + 6 * 7")
	require.Len(t, prog.Statements, 3)
}

func TestParse_ReturnContinueBreak(t *testing.T) {
	src := "func f()\nreturn 1\nend"
	prog := parse(t, src)
	fn := prog.Statements[0].(*ast.FuncDef)
	block := fn.Body.(*ast.Block)
	ret, ok := block.Statements[0].(*ast.Return)
	require.True(t, ok)
	require.NotNil(t, ret.Expr)
}

func TestParse_BareReturnIsNull(t *testing.T) {
	src := "func f()\nreturn\nend"
	prog := parse(t, src)
	fn := prog.Statements[0].(*ast.FuncDef)
	block := fn.Body.(*ast.Block)
	ret := block.Statements[0].(*ast.Return)
	assert.Nil(t, ret.Expr)
}

func TestParse_CallExpression(t *testing.T) {
	prog := parse(t, "add(1, 2)")
	call, ok := prog.Statements[0].(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestParse_ComparisonAndLogicalPrecedence(t *testing.T) {
	prog := parse(t, "a > 1 and b < 2 or not c")
	top, ok := prog.Statements[0].(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "or", top.Op.Literal)
}

func TestParse_UnterminatedIfIsSyntaxError(t *testing.T) {
	toks, _ := lexer.Tokenize("test.zp", "if x > 0 then\nvar y = 1\n")
	_, err := parser.Parse(toks)
	assert.NotNil(t, err)
}

func TestParse_ParenthesizedExpression(t *testing.T) {
	prog := parse(t, "(1 + 2) * 3")
	top, ok := prog.Statements[0].(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, "*", top.Op.Literal)
	_, innerIsBinOp := top.Left.(*ast.BinOp)
	assert.True(t, innerIsBinOp)
}
