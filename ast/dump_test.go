package ast_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlang/rift/ast"
	"github.com/riftlang/rift/parser"
)

func TestDumpRendersOneLinePerStatement(t *testing.T) {
	block, err := parser.Parse(`
		var x = 1;
		if (x) {
			x = x + 1;
		}
	`)
	require.NoError(t, err)

	out := ast.Dump(block.Statements)
	assert.Contains(t, out, "VarDeclaration var x")
	assert.Contains(t, out, "If VarAccess(x)")
	assert.Contains(t, out, "ExpressionStatement")
}

func TestDumpIndentsNestedBodies(t *testing.T) {
	block, err := parser.Parse(`while (true) { break; }`)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(ast.Dump(block.Statements), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "While"))
	assert.True(t, strings.HasPrefix(lines[1], "  Block"))
	assert.True(t, strings.HasPrefix(lines[2], "    Break"))
}
