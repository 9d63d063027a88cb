package passes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yul2ewasm/ast"
)

func TestTopHoisterPreservesOrder(t *testing.T) {
	decl := &ast.VariableDeclaration{Variables: []*ast.TypedName{{Name: "x"}}, Value: &ast.Literal{Value: "0"}}
	fn1 := &ast.FunctionDefinition{Name: "f1", Body: &ast.Block{}}
	fn2 := &ast.FunctionDefinition{Name: "f2", Body: &ast.Block{}}
	call := &ast.FunctionCall{Name: "f1"}
	b := &ast.Block{Statements: []ast.Statement{decl, fn1, call, fn2}}

	out, err := TopHoister{}.Hoist(b)
	require.NoError(t, err)
	require.Len(t, out.Statements, 4)
	assert.Same(t, fn1, out.Statements[0])
	assert.Same(t, fn2, out.Statements[1])
	assert.Same(t, decl, out.Statements[2])
	assert.Same(t, call, out.Statements[3])
}

func TestWrapTopLevelSynthesizesMain(t *testing.T) {
	fn := &ast.FunctionDefinition{Name: "helper", Body: &ast.Block{}}
	decl := &ast.VariableDeclaration{Variables: []*ast.TypedName{{Name: "x"}}, Value: &ast.Literal{Value: "0"}}
	b := &ast.Block{Statements: []ast.Statement{fn, decl}}

	out, err := WrapTopLevel{}.Synthesize(b, "main")
	require.NoError(t, err)
	require.Len(t, out.Statements, 2)
	assert.Same(t, fn, out.Statements[0])
	main, ok := out.Statements[1].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, "main", main.Name)
	require.Len(t, main.Body.Statements, 1)
	assert.Same(t, decl, main.Body.Statements[0])
}

func TestWrapTopLevelNoBodyLeavesOnlyFunctions(t *testing.T) {
	fn := &ast.FunctionDefinition{Name: "helper", Body: &ast.Block{}}
	b := &ast.Block{Statements: []ast.Statement{fn}}

	out, err := WrapTopLevel{}.Synthesize(b, "main")
	require.NoError(t, err)
	require.Len(t, out.Statements, 1)
	assert.Same(t, fn, out.Statements[0])
}

func TestWrapTopLevelDispensesFreshNameOnCollision(t *testing.T) {
	fn := &ast.FunctionDefinition{Name: "main", Body: &ast.Block{}}
	decl := &ast.VariableDeclaration{Variables: []*ast.TypedName{{Name: "x"}}, Value: &ast.Literal{Value: "0"}}
	b := &ast.Block{Statements: []ast.Statement{fn, decl}}

	out, err := WrapTopLevel{}.Synthesize(b, "main")
	require.NoError(t, err)
	require.Len(t, out.Statements, 2)
	assert.Same(t, fn, out.Statements[0])
	synthesized, ok := out.Statements[1].(*ast.FunctionDefinition)
	require.True(t, ok)
	assert.NotEqual(t, "main", synthesized.Name)
	assert.Equal(t, "main", fn.Name, "the user's own main function keeps its name")
}

func TestWrapTopLevelUsesProvidedDispenser(t *testing.T) {
	fn := &ast.FunctionDefinition{Name: "main", Body: &ast.Block{}}
	decl := &ast.VariableDeclaration{Variables: []*ast.TypedName{{Name: "x"}}, Value: &ast.Literal{Value: "0"}}
	b := &ast.Block{Statements: []ast.Statement{fn, decl}}

	dispenser := NewCounterDispenser(map[string]bool{})
	out, err := WrapTopLevel{Dispenser: dispenser}.Synthesize(b, "main")
	require.NoError(t, err)
	synthesized := out.Statements[1].(*ast.FunctionDefinition)
	assert.Equal(t, "main_1", synthesized.Name)
}

func TestAssertAlreadySplitAcceptsFlatArguments(t *testing.T) {
	decl := &ast.VariableDeclaration{
		Variables: []*ast.TypedName{{Name: "x"}},
		Value:     &ast.FunctionCall{Name: "add", Arguments: []ast.Expression{&ast.Identifier{Name: "a"}, &ast.Literal{Value: "1"}}},
	}
	b := &ast.Block{Statements: []ast.Statement{decl}}
	assert.NoError(t, AssertAlreadySplit{}.CheckSplit(b))
}

func TestAssertAlreadySplitRejectsNestedCall(t *testing.T) {
	decl := &ast.VariableDeclaration{
		Variables: []*ast.TypedName{{Name: "x"}},
		Value: &ast.FunctionCall{Name: "add", Arguments: []ast.Expression{
			&ast.FunctionCall{Name: "mul", Arguments: []ast.Expression{&ast.Identifier{Name: "a"}, &ast.Identifier{Name: "b"}}},
			&ast.Literal{Value: "1"},
		}},
	}
	b := &ast.Block{Statements: []ast.Statement{decl}}
	assert.Error(t, AssertAlreadySplit{}.CheckSplit(b))
}

func TestCounterDispenserAvoidsCollisions(t *testing.T) {
	reserved := map[string]bool{"tmp_1": true}
	d := NewCounterDispenser(reserved)
	first := d.Fresh("tmp")
	assert.NotEqual(t, "tmp_1", first)
	second := d.Fresh("tmp")
	assert.NotEqual(t, first, second)
}
