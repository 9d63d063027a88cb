// Package walk provides the generic rewrite primitives the word-size
// transform and the stand-in passes build on: a statement-level map
// that lets one statement expand into several, an expression-level map
// with the same fan-out property, and a full structural clone.
package walk

import "yul2ewasm/ast"

// StatementFn rewrites one statement into zero or more replacement
// statements; returning nil drops the statement.
type StatementFn func(ast.Statement) []ast.Statement

// MapBlock applies fn to every statement of b, recursing into nested
// blocks first (so fn always sees already-rewritten children), and
// returns a new Block built from the concatenated replacements.
func MapBlock(b *ast.Block, fn StatementFn) *ast.Block {
	if b == nil {
		return nil
	}
	out := make([]ast.Statement, 0, len(b.Statements))
	for _, stmt := range b.Statements {
		rewritten := descend(stmt, fn)
		out = append(out, fn(rewritten)...)
	}
	return &ast.Block{Statements: out}
}

// descend recurses MapBlock into any nested blocks a statement carries,
// returning a copy of stmt with those blocks replaced. Leaf statements
// are returned unchanged.
func descend(stmt ast.Statement, fn StatementFn) ast.Statement {
	switch s := stmt.(type) {
	case *ast.Block:
		return MapBlock(s, fn)
	case *ast.If:
		return &ast.If{Condition: s.Condition, Body: MapBlock(s.Body, fn)}
	case *ast.Switch:
		cases := make([]*ast.Case, len(s.Cases))
		for i, c := range s.Cases {
			cases[i] = &ast.Case{Value: c.Value, Body: MapBlock(c.Body, fn)}
		}
		return &ast.Switch{Expr: s.Expr, Cases: cases, Default: MapBlock(s.Default, fn)}
	case *ast.ForLoop:
		return &ast.ForLoop{
			Init:      MapBlock(s.Init, fn),
			Condition: s.Condition,
			Post:      MapBlock(s.Post, fn),
			Body:      MapBlock(s.Body, fn),
		}
	case *ast.FunctionDefinition:
		return &ast.FunctionDefinition{
			Name:       s.Name,
			Parameters: s.Parameters,
			Returns:    s.Returns,
			Body:       MapBlock(s.Body, fn),
		}
	default:
		return stmt
	}
}

// ExpressionFn rewrites one expression into zero or more replacement
// expressions, used for call-argument expansion.
type ExpressionFn func(ast.Expression) []ast.Expression

// MapExpressions applies fn to every expression in exprs, concatenating
// the results, without recursing into call arguments itself (callers
// that need post-order expression rewriting call MapExpressions again
// on each FunctionCall's Arguments before invoking it on the outer list).
func MapExpressions(exprs []ast.Expression, fn ExpressionFn) []ast.Expression {
	out := make([]ast.Expression, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, fn(e)...)
	}
	return out
}

// Clone performs a full structural deep copy of n, used before splicing
// a shared AST (the polyfill library) into more than one output object.
func Clone(n ast.Node) ast.Node {
	switch v := n.(type) {
	case nil:
		return nil
	case *ast.Literal:
		c := *v
		return &c
	case *ast.Identifier:
		c := *v
		return &c
	case *ast.FunctionCall:
		args := make([]ast.Expression, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = Clone(a).(ast.Expression)
		}
		return &ast.FunctionCall{Name: v.Name, Arguments: args}
	case *ast.Assignment:
		vars := make([]*ast.Identifier, len(v.Variables))
		for i, id := range v.Variables {
			vars[i] = Clone(id).(*ast.Identifier)
		}
		var value ast.Expression
		if v.Value != nil {
			value = Clone(v.Value).(ast.Expression)
		}
		return &ast.Assignment{Variables: vars, Value: value}
	case *ast.VariableDeclaration:
		vars := make([]*ast.TypedName, len(v.Variables))
		for i, tn := range v.Variables {
			cp := *tn
			vars[i] = &cp
		}
		var value ast.Expression
		if v.Value != nil {
			value = Clone(v.Value).(ast.Expression)
		}
		return &ast.VariableDeclaration{Variables: vars, Value: value}
	case *ast.Block:
		stmts := make([]ast.Statement, len(v.Statements))
		for i, s := range v.Statements {
			stmts[i] = Clone(s).(ast.Statement)
		}
		return &ast.Block{Statements: stmts}
	case *ast.If:
		return &ast.If{Condition: Clone(v.Condition).(ast.Expression), Body: Clone(v.Body).(*ast.Block)}
	case *ast.Switch:
		cases := make([]*ast.Case, len(v.Cases))
		for i, c := range v.Cases {
			val := *c.Value
			cases[i] = &ast.Case{Value: &val, Body: Clone(c.Body).(*ast.Block)}
		}
		var def *ast.Block
		if v.Default != nil {
			def = Clone(v.Default).(*ast.Block)
		}
		return &ast.Switch{Expr: Clone(v.Expr).(ast.Expression), Cases: cases, Default: def}
	case *ast.ForLoop:
		return &ast.ForLoop{
			Init:      Clone(v.Init).(*ast.Block),
			Condition: Clone(v.Condition).(ast.Expression),
			Post:      Clone(v.Post).(*ast.Block),
			Body:      Clone(v.Body).(*ast.Block),
		}
	case *ast.Break:
		c := *v
		return &c
	case *ast.Continue:
		c := *v
		return &c
	case *ast.Leave:
		c := *v
		return &c
	case *ast.FunctionDefinition:
		params := make([]*ast.TypedName, len(v.Parameters))
		for i, p := range v.Parameters {
			cp := *p
			params[i] = &cp
		}
		rets := make([]*ast.TypedName, len(v.Returns))
		for i, r := range v.Returns {
			cp := *r
			rets[i] = &cp
		}
		return &ast.FunctionDefinition{Name: v.Name, Parameters: params, Returns: rets, Body: Clone(v.Body).(*ast.Block)}
	case *ast.Data:
		content := make([]byte, len(v.Content))
		copy(content, v.Content)
		return &ast.Data{Name: v.Name, Content: content}
	case *ast.Object:
		subs := make([]ast.Node, len(v.SubObjects))
		for i, s := range v.SubObjects {
			subs[i] = Clone(s)
		}
		idx := make(map[string]int, len(v.SubIndexByName))
		for k, i := range v.SubIndexByName {
			idx[k] = i
		}
		return &ast.Object{Name: v.Name, Code: Clone(v.Code).(*ast.Block), SubObjects: subs, SubIndexByName: idx}
	default:
		panic("walk: Clone: unhandled node type")
	}
}
