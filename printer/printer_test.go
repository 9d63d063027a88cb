package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yul2ewasm/ast"
	"yul2ewasm/yulparse"
)

func TestBlockRendersDeclarationAndCall(t *testing.T) {
	b := &ast.Block{Statements: []ast.Statement{
		&ast.VariableDeclaration{
			Variables: []*ast.TypedName{{Name: "x"}},
			Value:     &ast.FunctionCall{Name: "add", Arguments: []ast.Expression{&ast.Literal{Value: "1"}, &ast.Literal{Value: "2"}}},
		},
		&ast.Assignment{
			Variables: []*ast.Identifier{{Name: "x"}},
			Value:     &ast.FunctionCall{Name: "mul", Arguments: []ast.Expression{&ast.Identifier{Name: "x"}, &ast.Literal{Value: "3"}}},
		},
	}}

	out := Block(b)
	assert.Contains(t, out, "let x := add(1, 2)")
	assert.Contains(t, out, "x := mul(x, 3)")
}

func TestBlockOutputReparsesToEquivalentAST(t *testing.T) {
	b := &ast.Block{Statements: []ast.Statement{
		&ast.VariableDeclaration{Variables: []*ast.TypedName{{Name: "x"}}, Value: &ast.Literal{Value: "0"}},
		&ast.FunctionDefinition{
			Name:       "double",
			Parameters: []*ast.TypedName{{Name: "a"}},
			Returns:    []*ast.TypedName{{Name: "r"}},
			Body: &ast.Block{Statements: []ast.Statement{
				&ast.Assignment{
					Variables: []*ast.Identifier{{Name: "r"}},
					Value:     &ast.FunctionCall{Name: "add", Arguments: []ast.Expression{&ast.Identifier{Name: "a"}, &ast.Identifier{Name: "a"}}},
				},
			}},
		},
		&ast.If{
			Condition: &ast.FunctionCall{Name: "iszero", Arguments: []ast.Expression{&ast.Identifier{Name: "x"}}},
			Body:      &ast.Block{Statements: []ast.Statement{&ast.Leave{}}},
		},
	}}

	text := Block(b)
	reparsed, err := yulparse.ParseBlock("roundtrip.yul", text)
	require.NoError(t, err)
	require.Len(t, reparsed.Statements, 3)

	decl, ok := reparsed.Statements[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Variables[0].Name)

	fn, ok := reparsed.Statements[1].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "double", fn.Name)
	require.Len(t, fn.Parameters, 1)
	require.Len(t, fn.Returns, 1)

	ifStmt, ok := reparsed.Statements[2].(*ast.If)
	require.True(t, ok)
	cond, ok := ifStmt.Condition.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "iszero", cond.Name)
}

func TestObjectRendersDataAndSubobjects(t *testing.T) {
	inner := &ast.Object{Name: "Inner", Code: &ast.Block{}, SubIndexByName: map[string]int{}}
	data := &ast.Data{Name: "blob", Content: []byte("hello")}
	outer := &ast.Object{
		Name:           "Outer",
		Code:           &ast.Block{Statements: []ast.Statement{&ast.Leave{}}},
		SubObjects:     []ast.Node{inner, data},
		SubIndexByName: map[string]int{"Inner": 0, "blob": 1},
	}

	out := Object(outer)
	assert.True(t, strings.Contains(out, `object "Outer"`))
	assert.True(t, strings.Contains(out, `object "Inner"`))
	assert.True(t, strings.Contains(out, `data "blob" "hello"`))
}
