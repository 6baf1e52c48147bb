package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/errs"
)

func TestParseProgramReturnsBlockOfStatements(t *testing.T) {
	block, err := Parse("var x = 1; var y = 2;")
	require.NoError(t, err)
	assert.Len(t, block.Statements, 2)
}

func TestParseBinaryPrecedence(t *testing.T) {
	block, err := Parse("1 + 2 * 3;")
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)
	stmt := block.Statements[0].(*ast.ExpressionStatement)
	top, ok := stmt.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", top.OpTok.Text)
	right, ok := top.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", right.OpTok.Text)
}

func TestParseFunctionCallChaining(t *testing.T) {
	block, err := Parse("a.b(1, 2)[0];")
	require.NoError(t, err)
	stmt := block.Statements[0].(*ast.ExpressionStatement)
	_, ok := stmt.Expr.(*ast.ArrayIndex)
	assert.True(t, ok)
}

func TestParseLetQualifiedForOf(t *testing.T) {
	block, err := Parse("for (let x of arr) { }")
	assert.NoError(t, err)
	_, ok := block.Statements[0].(*ast.ForOf)
	assert.True(t, ok)
}

func TestParseClassicForFallsBackWhenNoOf(t *testing.T) {
	block, err := Parse("for (var i = 0; i < 10; i = i + 1) { }")
	require.NoError(t, err)
	_, ok := block.Statements[0].(*ast.For)
	assert.True(t, ok)
}

func TestParseClassicForWithBareIdentifierInitFallsBack(t *testing.T) {
	block, err := Parse("for (i = 0; i < 10; i = i + 1) { }")
	require.NoError(t, err)
	_, ok := block.Statements[0].(*ast.For)
	assert.True(t, ok)
}

func TestParseBareForOfRequiresNoQualifier(t *testing.T) {
	block, err := Parse("for (key of arr) { }")
	require.NoError(t, err)
	forOf, ok := block.Statements[0].(*ast.ForOf)
	require.True(t, ok)
	assert.Equal(t, []string{"key"}, forOf.Names)
}

func TestParseBreakOutsideLoopIsCompileError(t *testing.T) {
	_, err := Parse("break;")
	require.Error(t, err)
	_, ok := err.(*errs.CompileError)
	assert.True(t, ok)
}

func TestParseContinueOutsideLoopIsCompileError(t *testing.T) {
	_, err := Parse("continue;")
	require.Error(t, err)
	_, ok := err.(*errs.CompileError)
	assert.True(t, ok)
}

func TestParseLabeledWhileAttachesLabel(t *testing.T) {
	block, err := Parse("outer: while (true) { break outer; }")
	require.NoError(t, err)
	w, ok := block.Statements[0].(*ast.While)
	require.True(t, ok)
	assert.Equal(t, "outer", w.Label)
}

func TestParseTryCatchRequiresCatchClause(t *testing.T) {
	_, err := Parse("try { foo(); }")
	assert.Error(t, err)
}

func TestParseObjectLiteralWithIdentifierKeys(t *testing.T) {
	block, err := Parse("var o = {x: 1, y: 2};")
	require.NoError(t, err)
	decl := block.Statements[0].(*ast.VarDeclaration)
	lit := decl.Decls[0].Init.(*ast.ObjectLiteral)
	assert.Equal(t, []string{"x", "y"}, lit.Keys)
}

func TestParseUnterminatedStringFails(t *testing.T) {
	_, err := Parse(`"abc`)
	assert.Error(t, err)
}

func TestParseFunctionLiteralAsExpression(t *testing.T) {
	block, err := Parse("var f = function(a, b) { return a + b; };")
	require.NoError(t, err)
	decl := block.Statements[0].(*ast.VarDeclaration)
	lit, ok := decl.Decls[0].Init.(*ast.FunctionLiteral)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lit.ArgNames)
}
