package displace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yul2ewasm/ast"
)

func TestRunRenamesCollidingFunction(t *testing.T) {
	block := &ast.Block{Statements: []ast.Statement{
		&ast.FunctionDefinition{
			Name: "add", // collides with a polyfill function
			Body: &ast.Block{Statements: []ast.Statement{
				&ast.FunctionCall{Name: "add", Arguments: nil},
			}},
		},
		&ast.FunctionCall{Name: "add"},
	}}

	out := Run(block, map[string]bool{"add": true})

	def := out.Statements[0].(*ast.FunctionDefinition)
	assert.Equal(t, "add_user", def.Name)

	innerCall := def.Body.Statements[0].(*ast.FunctionCall)
	assert.Equal(t, "add_user", innerCall.Name, "recursive call inside the renamed function must follow the rename")

	outerCall := out.Statements[1].(*ast.FunctionCall)
	assert.Equal(t, "add_user", outerCall.Name, "every call site must be updated consistently")
}

func TestRunLeavesNonCollidingNamesAlone(t *testing.T) {
	block := &ast.Block{Statements: []ast.Statement{
		&ast.FunctionDefinition{Name: "myHelper", Body: &ast.Block{}},
	}}
	out := Run(block, map[string]bool{"add": true})
	require.Len(t, out.Statements, 1)
	assert.Equal(t, "myHelper", out.Statements[0].(*ast.FunctionDefinition).Name)
}
