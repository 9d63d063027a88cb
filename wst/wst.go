// Package wst implements the word-size transform (spec.md §4.5): the
// rewrite that replaces every 256-bit value in an EVM256-dialect AST
// with a four-limb bundle of 64-bit values, producing an AST typable
// under the WASM64 dialect.
package wst

import (
	"fmt"

	"yul2ewasm/ast"
	"yul2ewasm/dialect"
	"yul2ewasm/ident"
	"yul2ewasm/limb256"
)

// Dialects bundles the source and target dialects a transform run
// needs: the source table tells Run which callees are builtins (and
// therefore get their arguments expanded positionally rather than
// looked up as user functions), the target width is asserted on the
// output for documentation purposes only.
type Dialects struct {
	Source dialect.Dialect
	Target dialect.Dialect
}

// limbType is the declared type every expanded variable carries, since
// after the transform every value is a 64-bit word (invariant 4).
const limbType = "i64"

// transform carries the per-run state: the identifier allocator and the
// set of polyfill function names, consulted to turn an "unsupported
// builtin" into a fatal UnsupportedBuiltinError rather than silently
// treating the unknown callee as a user function.
type transform struct {
	dialects      Dialects
	alloc         *ident.Allocator
	polyfillNames map[string]bool
	tmpCounter    int
}

// Run rewrites b, an EVM256-dialect block, into an equivalent WASM64-dialect
// block. polyfillNames must contain the name of every function the
// polyfill defines, used to validate builtin closure (invariant 5)
// before splicing (splicing itself happens in package translator).
func Run(ds Dialects, polyfillNames map[string]bool, b *ast.Block, alloc *ident.Allocator) (*ast.Block, error) {
	t := &transform{dialects: ds, alloc: alloc, polyfillNames: polyfillNames}
	return t.block(b)
}

func (t *transform) freshTemp(hint string) string {
	t.tmpCounter++
	name := fmt.Sprintf("%s_cond_%d", hint, t.tmpCounter)
	for t.alloc.IsReserved(name) {
		t.tmpCounter++
		name = fmt.Sprintf("%s_cond_%d", hint, t.tmpCounter)
	}
	t.alloc.Reserve(name)
	return name
}

// block rewrites every statement of b in source order, rule 12.
func (t *transform) block(b *ast.Block) (*ast.Block, error) {
	if b == nil {
		return nil, nil
	}
	out := make([]ast.Statement, 0, len(b.Statements))
	for _, stmt := range b.Statements {
		rewritten, err := t.statement(stmt)
		if err != nil {
			return nil, err
		}
		out = append(out, rewritten...)
	}
	return &ast.Block{Statements: out}, nil
}

func (t *transform) statement(stmt ast.Statement) ([]ast.Statement, error) {
	switch s := stmt.(type) {
	case *ast.VariableDeclaration:
		return t.declaration(s)
	case *ast.Assignment:
		return t.assignment(s)
	case *ast.FunctionCall:
		call, err := t.call(s)
		if err != nil {
			return nil, err
		}
		return []ast.Statement{call}, nil
	case *ast.Block:
		inner, err := t.block(s)
		if err != nil {
			return nil, err
		}
		return []ast.Statement{inner}, nil
	case *ast.If:
		return t.ifStatement(s)
	case *ast.Switch:
		return t.switchStatement(s)
	case *ast.ForLoop:
		return t.forLoop(s)
	case *ast.Break, *ast.Continue, *ast.Leave:
		return []ast.Statement{stmt}, nil // rule 11: unchanged
	case *ast.FunctionDefinition:
		def, err := t.functionDefinition(s)
		if err != nil {
			return nil, err
		}
		return []ast.Statement{def}, nil
	default:
		return nil, &InvariantError{Reason: fmt.Sprintf("unsupported statement shape %T", stmt)}
	}
}

// names expands a list of declaration/assignment target names into
// their concatenated limb TypedNames, in source order (rule 2).
func (t *transform) typedNames(names []*ast.TypedName) []*ast.TypedName {
	out := make([]*ast.TypedName, 0, len(names)*4)
	for _, n := range names {
		limbs := t.alloc.Expand(n.Name)
		for _, l := range limbs {
			out = append(out, &ast.TypedName{Name: l, Type: limbType})
		}
	}
	return out
}

func (t *transform) identifierLimbs(names []*ast.Identifier) []*ast.Identifier {
	out := make([]*ast.Identifier, 0, len(names)*4)
	for _, n := range names {
		limbs := t.alloc.Expand(n.Name)
		for _, l := range limbs {
			out = append(out, &ast.Identifier{Name: l})
		}
	}
	return out
}

// declaration implements rules 1 and 2.
func (t *transform) declaration(decl *ast.VariableDeclaration) ([]ast.Statement, error) {
	limbNames := t.typedNames(decl.Variables)

	if decl.Value == nil {
		return []ast.Statement{&ast.VariableDeclaration{Variables: limbNames}}, nil
	}

	if call, ok := decl.Value.(*ast.FunctionCall); ok {
		expanded, err := t.call(call)
		if err != nil {
			return nil, err
		}
		return []ast.Statement{&ast.VariableDeclaration{Variables: limbNames, Value: expanded}}, nil
	}

	if len(decl.Variables) != 1 {
		return nil, &InvariantError{Reason: "multi-name declaration without a call initializer"}
	}
	limbs, err := t.expandValue(decl.Value)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Statement, len(limbNames))
	for i, n := range limbNames {
		out[i] = &ast.VariableDeclaration{Variables: []*ast.TypedName{n}, Value: limbs[i]}
	}
	return out, nil
}

// assignment implements rule 3.
func (t *transform) assignment(a *ast.Assignment) ([]ast.Statement, error) {
	limbVars := t.identifierLimbs(a.Variables)

	if call, ok := a.Value.(*ast.FunctionCall); ok {
		expanded, err := t.call(call)
		if err != nil {
			return nil, err
		}
		return []ast.Statement{&ast.Assignment{Variables: limbVars, Value: expanded}}, nil
	}

	if len(a.Variables) != 1 {
		return nil, &InvariantError{Reason: "multi-target assignment without a call right-hand side"}
	}
	limbs, err := t.expandValue(a.Value)
	if err != nil {
		return nil, err
	}
	out := make([]ast.Statement, len(limbVars))
	for i, v := range limbVars {
		out[i] = &ast.Assignment{Variables: []*ast.Identifier{v}, Value: limbs[i]}
	}
	return out, nil
}

// expandValue implements rules 4 and 5: a literal or identifier expands
// to its four-limb tuple. Per invariant 2 no other expression shape can
// appear here.
func (t *transform) expandValue(e ast.Expression) ([]ast.Expression, error) {
	switch v := e.(type) {
	case *ast.Literal:
		n, err := limb256.ParseDecimalOrHex(v.Value)
		if err != nil {
			return nil, &InvariantError{Reason: fmt.Sprintf("literal %q is not a valid 256-bit constant: %v", v.Value, err)}
		}
		limbs := limb256.Split(n)
		out := make([]ast.Expression, 4)
		for i, l := range limbs {
			out[i] = &ast.Literal{Value: fmt.Sprintf("%d", l), Type: limbType}
		}
		return out, nil
	case *ast.Identifier:
		limbs := t.alloc.Expand(v.Name)
		out := make([]ast.Expression, 4)
		for i, l := range limbs {
			out[i] = &ast.Identifier{Name: l}
		}
		return out, nil
	default:
		return nil, &InvariantError{Reason: fmt.Sprintf("argument/value position held a non-literal, non-identifier expression (%T); expression splitting must run first", e)}
	}
}

// call implements rules 6 and 7: every argument, whether destined for a
// builtin or a user function, expands positionally by a factor of 4.
// The callee name is preserved; its polyfill or expanded user
// definition supplies the matching arity.
func (t *transform) call(call *ast.FunctionCall) (*ast.FunctionCall, error) {
	if _, isBuiltin := t.dialects.Source.Lookup(call.Name); isBuiltin {
		if t.polyfillNames != nil && !t.polyfillNames[call.Name] {
			return nil, &UnsupportedBuiltinError{Name: call.Name}
		}
	}

	args := make([]ast.Expression, 0, len(call.Arguments)*4)
	for _, a := range call.Arguments {
		limbs, err := t.expandValue(a)
		if err != nil {
			return nil, err
		}
		args = append(args, limbs...)
	}
	return &ast.FunctionCall{Name: call.Name, Arguments: args}, nil
}

// functionDefinition implements rule 8.
func (t *transform) functionDefinition(def *ast.FunctionDefinition) (*ast.FunctionDefinition, error) {
	body, err := t.block(def.Body)
	if err != nil {
		return nil, err
	}
	return &ast.FunctionDefinition{
		Name:       def.Name,
		Parameters: t.typedNames(def.Parameters),
		Returns:    t.typedNames(def.Returns),
		Body:       body,
	}, nil
}

// condition implements rule 9: reduces an EVM-level condition
// expression to the single 64-bit least-significant-limb value the
// WASM64 `if`/`for` condition slot requires, returning any statements
// that must be evaluated immediately beforehand to materialize it.
func (t *transform) condition(e ast.Expression) ([]ast.Statement, ast.Expression, error) {
	switch v := e.(type) {
	case *ast.Identifier:
		limbs := t.alloc.Expand(v.Name)
		return nil, &ast.Identifier{Name: limbs[3]}, nil
	case *ast.Literal:
		limbs, err := t.expandValue(v)
		if err != nil {
			return nil, nil, err
		}
		return nil, limbs[3], nil
	case *ast.FunctionCall:
		expanded, err := t.call(v)
		if err != nil {
			return nil, nil, err
		}
		tmp := t.freshTemp("cond")
		limbNames := t.alloc.Expand(tmp)
		typed := make([]*ast.TypedName, 4)
		for i, l := range limbNames {
			typed[i] = &ast.TypedName{Name: l, Type: limbType}
		}
		decl := &ast.VariableDeclaration{Variables: typed, Value: expanded}
		return []ast.Statement{decl}, &ast.Identifier{Name: limbNames[3]}, nil
	default:
		return nil, nil, &InvariantError{Reason: fmt.Sprintf("unsupported condition expression %T", e)}
	}
}

func (t *transform) ifStatement(s *ast.If) ([]ast.Statement, error) {
	pre, cond, err := t.condition(s.Condition)
	if err != nil {
		return nil, err
	}
	body, err := t.block(s.Body)
	if err != nil {
		return nil, err
	}
	return append(pre, &ast.If{Condition: cond, Body: body}), nil
}

// forLoop implements rule 9 for loops by rotating the condition check
// into the top of the body: `for {init} cond {post} {body}` becomes
// `for {init'} 1 {post'} { <cond-materialization> if iszero(cond) { break } body' }`,
// since WASM64's `for` condition slot, like `if`'s, can only hold a
// single already-computed 64-bit value and the original condition may
// need recomputing every iteration.
func (t *transform) forLoop(s *ast.ForLoop) ([]ast.Statement, error) {
	init, err := t.block(s.Init)
	if err != nil {
		return nil, err
	}
	post, err := t.block(s.Post)
	if err != nil {
		return nil, err
	}
	pre, cond, err := t.condition(s.Condition)
	if err != nil {
		return nil, err
	}
	body, err := t.block(s.Body)
	if err != nil {
		return nil, err
	}

	guard := &ast.If{
		Condition: &ast.FunctionCall{Name: "i64.eqz", Arguments: []ast.Expression{cond}},
		Body:      &ast.Block{Statements: []ast.Statement{&ast.Break{}}},
	}
	newBody := &ast.Block{Statements: append(append(pre, guard), body.Statements...)}

	return []ast.Statement{&ast.ForLoop{
		Init:      init,
		Condition: &ast.Literal{Value: "1", Type: limbType},
		Post:      post,
		Body:      newBody,
	}}, nil
}

// switchDiscriminant expands the switch expression to its full four-limb
// value. Unlike condition (rule 9), which keeps only the
// least-significant limb for an if/for slot, a switch discriminant is
// not guaranteed single-limb: two case values that differ only above
// bit 63 would otherwise collide on a truncated compare, so every limb
// is kept and a temporary is materialized for call expressions the same
// way condition does.
func (t *transform) switchDiscriminant(e ast.Expression) ([]ast.Statement, []ast.Expression, error) {
	switch v := e.(type) {
	case *ast.Identifier, *ast.Literal:
		limbs, err := t.expandValue(v)
		if err != nil {
			return nil, nil, err
		}
		return nil, limbs, nil
	case *ast.FunctionCall:
		expanded, err := t.call(v)
		if err != nil {
			return nil, nil, err
		}
		tmp := t.freshTemp("switch_disc")
		limbNames := t.alloc.Expand(tmp)
		typed := make([]*ast.TypedName, 4)
		limbs := make([]ast.Expression, 4)
		for i, l := range limbNames {
			typed[i] = &ast.TypedName{Name: l, Type: limbType}
			limbs[i] = &ast.Identifier{Name: l}
		}
		decl := &ast.VariableDeclaration{Variables: typed, Value: expanded}
		return []ast.Statement{decl}, limbs, nil
	default:
		return nil, nil, &InvariantError{Reason: fmt.Sprintf("unsupported switch expression %T", e)}
	}
}

// limbsEqual builds the four-limb equality cascade rule 10 requires:
// i64.eq on every limb pair, folded together with i64.and.
func limbsEqual(a, b []ast.Expression) ast.Expression {
	eq := &ast.FunctionCall{Name: "i64.eq", Arguments: []ast.Expression{a[0], b[0]}}
	for i := 1; i < 4; i++ {
		eq = &ast.FunctionCall{
			Name: "i64.and",
			Arguments: []ast.Expression{eq, &ast.FunctionCall{Name: "i64.eq", Arguments: []ast.Expression{a[i], b[i]}}},
		}
	}
	return eq
}

// switchStatement implements rule 10's cascade fallback: since this
// repo's canonicalization collaborators (passes.NoOpDisambiguator and
// friends) cannot prove a discriminator is single-limb, every case
// compares all four limbs, and each case becomes a guarded if using a
// "matched" flag so the default arm runs only when no case matched.
func (t *transform) switchStatement(s *ast.Switch) ([]ast.Statement, error) {
	pre, discriminant, err := t.switchDiscriminant(s.Expr)
	if err != nil {
		return nil, err
	}

	matched := t.freshTemp("switch_matched")
	out := append([]ast.Statement{}, pre...)
	out = append(out, &ast.VariableDeclaration{
		Variables: []*ast.TypedName{{Name: matched, Type: limbType}},
		Value:     &ast.Literal{Value: "0", Type: limbType},
	})

	for _, c := range s.Cases {
		caseLimbs, err := t.expandValue(c.Value)
		if err != nil {
			return nil, err
		}
		caseBody, err := t.block(c.Body)
		if err != nil {
			return nil, err
		}
		guardCond := &ast.FunctionCall{
			Name: "i64.and",
			Arguments: []ast.Expression{
				&ast.FunctionCall{Name: "i64.eqz", Arguments: []ast.Expression{&ast.Identifier{Name: matched}}},
				limbsEqual(discriminant, caseLimbs),
			},
		}
		markAndRun := &ast.Block{Statements: append([]ast.Statement{
			&ast.Assignment{
				Variables: []*ast.Identifier{{Name: matched}},
				Value:     &ast.Literal{Value: "1", Type: limbType},
			},
		}, caseBody.Statements...)}
		out = append(out, &ast.If{Condition: guardCond, Body: markAndRun})
	}

	if s.Default != nil {
		defBody, err := t.block(s.Default)
		if err != nil {
			return nil, err
		}
		out = append(out, &ast.If{
			Condition: &ast.FunctionCall{Name: "i64.eqz", Arguments: []ast.Expression{&ast.Identifier{Name: matched}}},
			Body:      defBody,
		})
	}

	return out, nil
}
