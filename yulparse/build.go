package yulparse

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"yul2ewasm/ast"
)

var programParser = participle.MustBuild[gProgram](
	participle.Lexer(yulLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

var objectParser = participle.MustBuild[gObject](
	participle.Lexer(yulLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(4),
)

// ParseBlock parses a bare sequence of top-level statements, the shape
// the polyfill library and simple function-only fixtures use.
func ParseBlock(filename, source string) (*ast.Block, error) {
	prog, err := programParser.ParseString(filename, source)
	if err != nil {
		return nil, fmt.Errorf("yulparse: %w", err)
	}
	return toBlockFromStatements(prog.Statements), nil
}

// ParseObject parses a full `object "Name" { code { ... } ... }` unit.
func ParseObject(filename, source string) (*ast.Object, error) {
	obj, err := objectParser.ParseString(filename, source)
	if err != nil {
		return nil, fmt.Errorf("yulparse: %w", err)
	}
	return toObject(obj), nil
}

func unquote(s string) string {
	return strings.Trim(s, `"`)
}

func toObject(o *gObject) *ast.Object {
	out := &ast.Object{
		Name:           unquote(o.Name),
		Code:           toBlock(o.Code.Body),
		SubIndexByName: map[string]int{},
	}
	for _, sub := range o.Subs {
		switch {
		case sub.Object != nil:
			child := toObject(sub.Object)
			out.SubIndexByName[child.Name] = len(out.SubObjects)
			out.SubObjects = append(out.SubObjects, child)
		case sub.Data != nil:
			data := &ast.Data{Name: unquote(sub.Data.Name), Content: []byte(unquote(sub.Data.Content))}
			out.SubIndexByName[data.Name] = len(out.SubObjects)
			out.SubObjects = append(out.SubObjects, data)
		}
	}
	return out
}

func toBlock(b *gBlock) *ast.Block {
	if b == nil {
		return &ast.Block{}
	}
	return toBlockFromStatements(b.Statements)
}

func toBlockFromStatements(stmts []*gStatement) *ast.Block {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		out = append(out, toStatement(s))
	}
	return &ast.Block{Statements: out}
}

func toStatement(s *gStatement) ast.Statement {
	switch {
	case s.FunctionDef != nil:
		return toFunctionDef(s.FunctionDef)
	case s.VarDecl != nil:
		return toVarDecl(s.VarDecl)
	case s.If != nil:
		return &ast.If{Condition: toExpr(s.If.Cond), Body: toBlock(s.If.Body)}
	case s.Switch != nil:
		return toSwitch(s.Switch)
	case s.ForLoop != nil:
		return &ast.ForLoop{
			Init:      toBlock(s.ForLoop.Init),
			Condition: toExpr(s.ForLoop.Cond),
			Post:      toBlock(s.ForLoop.Post),
			Body:      toBlock(s.ForLoop.Body),
		}
	case s.Break != nil:
		return &ast.Break{}
	case s.Continue != nil:
		return &ast.Continue{}
	case s.Leave != nil:
		return &ast.Leave{}
	case s.Assign != nil:
		return toAssign(s.Assign)
	case s.Block != nil:
		return toBlock(s.Block)
	case s.ExprStmt != nil:
		return toCall(s.ExprStmt)
	default:
		panic("yulparse: empty statement alternative")
	}
}

func toFunctionDef(f *gFunctionDef) *ast.FunctionDefinition {
	return &ast.FunctionDefinition{
		Name:       f.Name,
		Parameters: toTypedNames(f.Params),
		Returns:    toTypedNames(f.Returns),
		Body:       toBlock(f.Body),
	}
}

func toTypedNames(names []string) []*ast.TypedName {
	out := make([]*ast.TypedName, len(names))
	for i, n := range names {
		out[i] = &ast.TypedName{Name: n}
	}
	return out
}

func toVarDecl(d *gVarDecl) *ast.VariableDeclaration {
	var value ast.Expression
	if d.Value != nil {
		value = toExpr(d.Value)
	}
	return &ast.VariableDeclaration{Variables: toTypedNames(d.Names), Value: value}
}

func toAssign(a *gAssign) *ast.Assignment {
	vars := make([]*ast.Identifier, len(a.Names))
	for i, n := range a.Names {
		vars[i] = &ast.Identifier{Name: n}
	}
	return &ast.Assignment{Variables: vars, Value: toExpr(a.Value)}
}

func toSwitch(s *gSwitch) *ast.Switch {
	cases := make([]*ast.Case, len(s.Cases))
	for i, c := range s.Cases {
		cases[i] = &ast.Case{Value: &ast.Literal{Value: c.Value}, Body: toBlock(c.Body)}
	}
	var def *ast.Block
	if s.Default != nil {
		def = toBlock(s.Default)
	}
	return &ast.Switch{Expr: toExpr(s.Expr), Cases: cases, Default: def}
}

func toCall(c *gCall) *ast.FunctionCall {
	args := make([]ast.Expression, len(c.Args))
	for i, a := range c.Args {
		args[i] = toExpr(a)
	}
	return &ast.FunctionCall{Name: c.Name, Arguments: args}
}

func toExpr(e *gExpr) ast.Expression {
	switch {
	case e.Call != nil:
		return toCall(e.Call)
	case e.Number != nil:
		return &ast.Literal{Value: *e.Number}
	case e.Ident != nil:
		return &ast.Identifier{Name: *e.Ident}
	default:
		panic("yulparse: empty expression alternative")
	}
}
