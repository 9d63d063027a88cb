// Package displace implements the name displacer (spec.md §4.3):
// user-defined identifiers that collide with a polyfill function name
// are renamed, consistently across every use site, before the polyfill
// is spliced in.
package displace

import (
	"strconv"

	"yul2ewasm/ast"
	"yul2ewasm/walk"
)

// Run renames every user-declared function or variable in b whose name
// is in reserved, returning a new Block. Renaming adds a numeric suffix
// and re-checks against reserved until the candidate is free.
func Run(b *ast.Block, reserved map[string]bool) *ast.Block {
	renames := collect(b, reserved)
	if len(renames) == 0 {
		return b
	}
	return substitute(b, renames)
}

func collect(b *ast.Block, reserved map[string]bool) map[string]string {
	renames := make(map[string]string)
	var visit func(*ast.Block)
	visit = func(blk *ast.Block) {
		if blk == nil {
			return
		}
		for _, stmt := range blk.Statements {
			switch s := stmt.(type) {
			case *ast.FunctionDefinition:
				rename(s.Name, reserved, renames)
				for _, p := range s.Parameters {
					rename(p.Name, reserved, renames)
				}
				for _, r := range s.Returns {
					rename(r.Name, reserved, renames)
				}
				visit(s.Body)
			case *ast.VariableDeclaration:
				for _, v := range s.Variables {
					rename(v.Name, reserved, renames)
				}
			case *ast.Block:
				visit(s)
			case *ast.If:
				visit(s.Body)
			case *ast.Switch:
				for _, c := range s.Cases {
					visit(c.Body)
				}
				visit(s.Default)
			case *ast.ForLoop:
				visit(s.Init)
				visit(s.Post)
				visit(s.Body)
			}
		}
	}
	visit(b)
	return renames
}

func rename(name string, reserved map[string]bool, renames map[string]string) {
	if !reserved[name] {
		return
	}
	if _, already := renames[name]; already {
		return
	}
	candidate := name + "_user"
	for n := 2; reserved[candidate] || hasValue(renames, candidate); n++ {
		candidate = name + "_user" + strconv.Itoa(n)
	}
	renames[name] = candidate
}

func hasValue(m map[string]string, v string) bool {
	for _, existing := range m {
		if existing == v {
			return true
		}
	}
	return false
}

// substitute applies the rename map to every identifier/function-name
// occurrence in b. walk.MapBlock already handles recursing into every
// nested Block/If/Switch/ForLoop/FunctionDefinition body and rebuilding
// the enclosing statement with the rewritten children, so fixStmt only
// ever has to rename names attached directly to the statement it is
// handed -- its Body/Init/Post fields have already been processed by
// the time walk calls it.
func substitute(b *ast.Block, renames map[string]string) *ast.Block {
	fix := func(name string) string {
		if r, ok := renames[name]; ok {
			return r
		}
		return name
	}

	var fixExpr func(ast.Expression) ast.Expression
	fixExpr = func(e ast.Expression) ast.Expression {
		switch v := e.(type) {
		case *ast.Identifier:
			return &ast.Identifier{Name: fix(v.Name)}
		case *ast.FunctionCall:
			args := make([]ast.Expression, len(v.Arguments))
			for i, a := range v.Arguments {
				args[i] = fixExpr(a)
			}
			return &ast.FunctionCall{Name: fix(v.Name), Arguments: args}
		default:
			return e
		}
	}

	fixStmt := func(stmt ast.Statement) []ast.Statement {
		switch s := stmt.(type) {
		case *ast.FunctionCall:
			return []ast.Statement{fixExpr(s).(ast.Statement)}
		case *ast.Assignment:
			vars := make([]*ast.Identifier, len(s.Variables))
			for i, v := range s.Variables {
				vars[i] = &ast.Identifier{Name: fix(v.Name)}
			}
			return []ast.Statement{&ast.Assignment{Variables: vars, Value: fixExpr(s.Value)}}
		case *ast.VariableDeclaration:
			vars := make([]*ast.TypedName, len(s.Variables))
			for i, v := range s.Variables {
				vars[i] = &ast.TypedName{Name: fix(v.Name), Type: v.Type}
			}
			var val ast.Expression
			if s.Value != nil {
				val = fixExpr(s.Value)
			}
			return []ast.Statement{&ast.VariableDeclaration{Variables: vars, Value: val}}
		case *ast.If:
			return []ast.Statement{&ast.If{Condition: fixExpr(s.Condition), Body: s.Body}}
		case *ast.Switch:
			cases := make([]*ast.Case, len(s.Cases))
			for i, c := range s.Cases {
				cases[i] = &ast.Case{Value: c.Value, Body: c.Body}
			}
			return []ast.Statement{&ast.Switch{Expr: fixExpr(s.Expr), Cases: cases, Default: s.Default}}
		case *ast.ForLoop:
			return []ast.Statement{&ast.ForLoop{Init: s.Init, Condition: fixExpr(s.Condition), Post: s.Post, Body: s.Body}}
		case *ast.FunctionDefinition:
			params := make([]*ast.TypedName, len(s.Parameters))
			for i, p := range s.Parameters {
				params[i] = &ast.TypedName{Name: fix(p.Name), Type: p.Type}
			}
			rets := make([]*ast.TypedName, len(s.Returns))
			for i, r := range s.Returns {
				rets[i] = &ast.TypedName{Name: fix(r.Name), Type: r.Type}
			}
			return []ast.Statement{&ast.FunctionDefinition{Name: fix(s.Name), Parameters: params, Returns: rets, Body: s.Body}}
		default:
			return []ast.Statement{stmt}
		}
	}

	return walk.MapBlock(b, fixStmt)
}
