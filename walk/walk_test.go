package walk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yul2ewasm/ast"
)

func TestMapBlockExpandsOneToMany(t *testing.T) {
	block := &ast.Block{Statements: []ast.Statement{
		&ast.FunctionCall{Name: "add", Arguments: []ast.Expression{&ast.Identifier{Name: "x"}}},
	}}

	out := MapBlock(block, func(s ast.Statement) []ast.Statement {
		if call, ok := s.(*ast.FunctionCall); ok && call.Name == "add" {
			return []ast.Statement{s, s}
		}
		return []ast.Statement{s}
	})

	assert.Len(t, out.Statements, 2)
}

func TestMapBlockRecursesIntoIf(t *testing.T) {
	inner := &ast.FunctionCall{Name: "target"}
	block := &ast.Block{Statements: []ast.Statement{
		&ast.If{Condition: &ast.Literal{Value: "1"}, Body: &ast.Block{Statements: []ast.Statement{inner}}},
	}}

	seen := 0
	MapBlock(block, func(s ast.Statement) []ast.Statement {
		if call, ok := s.(*ast.FunctionCall); ok && call.Name == "target" {
			seen++
		}
		return []ast.Statement{s}
	})

	assert.Equal(t, 1, seen)
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	orig := &ast.Block{Statements: []ast.Statement{
		&ast.Assignment{
			Variables: []*ast.Identifier{{Name: "x"}},
			Value:     &ast.Literal{Value: "1"},
		},
	}}

	cloned := Clone(orig).(*ast.Block)
	require.Len(t, cloned.Statements, 1)

	assign := cloned.Statements[0].(*ast.Assignment)
	assign.Variables[0].Name = "mutated"

	original := orig.Statements[0].(*ast.Assignment)
	assert.Equal(t, "x", original.Variables[0].Name, "mutating the clone must not affect the original")
}

func TestCloneObjectPreservesSubIndex(t *testing.T) {
	obj := &ast.Object{
		Name:           "Main",
		Code:           &ast.Block{},
		SubObjects:     []ast.Node{&ast.Data{Name: "blob", Content: []byte{1, 2, 3}}},
		SubIndexByName: map[string]int{"blob": 0},
	}
	cloned := Clone(obj).(*ast.Object)
	assert.Equal(t, obj.SubIndexByName, cloned.SubIndexByName)
	data := cloned.SubObjects[0].(*ast.Data)
	assert.Equal(t, []byte{1, 2, 3}, data.Content)
}
