package yulparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yul2ewasm/ast"
)

func TestParseBlockSimpleDeclaration(t *testing.T) {
	block, err := ParseBlock("t.yul", `{ let x := 0 }`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)

	decl, ok := block.Statements[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	require.Len(t, decl.Variables, 1)
	assert.Equal(t, "x", decl.Variables[0].Name)
	lit, ok := decl.Value.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "0", lit.Value)
}

func TestParseBlockCallAndAssignment(t *testing.T) {
	block, err := ParseBlock("t.yul", `{
		let x := add(1, 2)
		x := mul(x, 3)
	}`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 2)

	decl := block.Statements[0].(*ast.VariableDeclaration)
	call := decl.Value.(*ast.FunctionCall)
	assert.Equal(t, "add", call.Name)
	require.Len(t, call.Arguments, 2)

	assign := block.Statements[1].(*ast.Assignment)
	assert.Equal(t, "x", assign.Variables[0].Name)
	call2 := assign.Value.(*ast.FunctionCall)
	assert.Equal(t, "mul", call2.Name)
}

func TestParseFunctionDefinitionWithReturns(t *testing.T) {
	block, err := ParseBlock("t.yul", `
		function add4(a1, a2, a3, a4, b1, b2, b3, b4) -> r1, r2, r3, r4 {
			r4 := add(a4, b4)
		}
	`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 1)
	fn := block.Statements[0].(*ast.FunctionDefinition)
	assert.Equal(t, "add4", fn.Name)
	assert.Len(t, fn.Parameters, 8)
	assert.Len(t, fn.Returns, 4)
}

func TestParseDialectQualifiedBuiltin(t *testing.T) {
	block, err := ParseBlock("t.yul", `{ let r := i64.add(a, b) }`)
	require.NoError(t, err)
	decl := block.Statements[0].(*ast.VariableDeclaration)
	call := decl.Value.(*ast.FunctionCall)
	assert.Equal(t, "i64.add", call.Name)
}

func TestParseIfForSwitch(t *testing.T) {
	block, err := ParseBlock("t.yul", `{
		if lt(x, 10) { x := add(x, 1) }
		for { let i := 0 } lt(i, 10) { i := add(i, 1) } { x := add(x, i) }
		switch x
		case 0 { y := 1 }
		case 1 { y := 2 }
		default { y := 3 }
	}`)
	require.NoError(t, err)
	require.Len(t, block.Statements, 3)

	_, ok := block.Statements[0].(*ast.If)
	assert.True(t, ok)
	_, ok = block.Statements[1].(*ast.ForLoop)
	assert.True(t, ok)
	sw, ok := block.Statements[2].(*ast.Switch)
	require.True(t, ok)
	assert.Len(t, sw.Cases, 2)
	assert.NotNil(t, sw.Default)
}

func TestParseObjectWithSubobjectsAndData(t *testing.T) {
	obj, err := ParseObject("t.yul", `
		object "Main" {
			code { let x := 0 }
			object "Sub" {
				code { }
			}
			data "Table" "hello"
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "Main", obj.Name)
	require.Len(t, obj.SubObjects, 2)
	assert.Equal(t, 0, obj.SubIndexByName["Sub"])
	assert.Equal(t, 1, obj.SubIndexByName["Table"])
}
