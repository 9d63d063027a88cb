// Package analysis provides a bounded static check over a translated
// AST: that every call site's callee is known (a WASM64 builtin, a
// polyfill function, or a function defined in the object itself) and,
// where the callee's arity is statically known, that the call site
// matches it. It intentionally stops there — no control-flow,
// shadowing, or literal-range checking — the full analyzer spec.md
// places out of scope.
package analysis

import (
	"fmt"

	"yul2ewasm/ast"
	"yul2ewasm/dialect"
)

// CheckWASM64 walks obj.Code (and every subobject recursively) and
// returns one error per call site whose callee is not in the union of
// the WASM64 builtin table, polyfillNames, and the object's own
// function definitions, or whose static argument/return count
// disagrees with a builtin's declared arity.
func CheckWASM64(obj *ast.Object, polyfillNames map[string]bool) []error {
	var errs []error
	walkObject(obj, polyfillNames, &errs)
	return errs
}

func walkObject(obj *ast.Object, polyfillNames map[string]bool, errs *[]error) {
	known := collectFunctionNames(obj.Code)
	checkBlock(obj.Code, known, polyfillNames, errs)
	for _, sub := range obj.SubObjects {
		if child, ok := sub.(*ast.Object); ok {
			walkObject(child, polyfillNames, errs)
		}
	}
}

func collectFunctionNames(b *ast.Block) map[string]bool {
	names := map[string]bool{}
	var visit func(*ast.Block)
	visit = func(blk *ast.Block) {
		if blk == nil {
			return
		}
		for _, s := range blk.Statements {
			switch st := s.(type) {
			case *ast.FunctionDefinition:
				names[st.Name] = true
				visit(st.Body)
			case *ast.If:
				visit(st.Body)
			case *ast.Switch:
				for _, c := range st.Cases {
					visit(c.Body)
				}
				visit(st.Default)
			case *ast.ForLoop:
				visit(st.Init)
				visit(st.Post)
				visit(st.Body)
			case *ast.Block:
				visit(st)
			}
		}
	}
	visit(b)
	return names
}

func checkBlock(b *ast.Block, known, polyfillNames map[string]bool, errs *[]error) {
	if b == nil {
		return
	}
	for _, s := range b.Statements {
		checkStatement(s, known, polyfillNames, errs)
	}
}

func checkStatement(s ast.Statement, known, polyfillNames map[string]bool, errs *[]error) {
	switch st := s.(type) {
	case *ast.VariableDeclaration:
		checkExprTree(st.Value, len(st.Variables), known, polyfillNames, errs)
	case *ast.Assignment:
		checkExprTree(st.Value, len(st.Variables), known, polyfillNames, errs)
	case *ast.FunctionCall:
		checkCall(st, -1, known, polyfillNames, errs)
	case *ast.If:
		checkExprTree(st.Condition, -1, known, polyfillNames, errs)
		checkBlock(st.Body, known, polyfillNames, errs)
	case *ast.Switch:
		checkExprTree(st.Expr, -1, known, polyfillNames, errs)
		for _, c := range st.Cases {
			checkBlock(c.Body, known, polyfillNames, errs)
		}
		checkBlock(st.Default, known, polyfillNames, errs)
	case *ast.ForLoop:
		checkBlock(st.Init, known, polyfillNames, errs)
		checkExprTree(st.Condition, -1, known, polyfillNames, errs)
		checkBlock(st.Post, known, polyfillNames, errs)
		checkBlock(st.Body, known, polyfillNames, errs)
	case *ast.Block:
		checkBlock(st, known, polyfillNames, errs)
	case *ast.FunctionDefinition:
		checkBlock(st.Body, known, polyfillNames, errs)
	}
}

func checkExprTree(e ast.Expression, wantOutputs int, known, polyfillNames map[string]bool, errs *[]error) {
	call, ok := e.(*ast.FunctionCall)
	if !ok {
		return
	}
	checkCall(call, wantOutputs, known, polyfillNames, errs)
}

func checkCall(call *ast.FunctionCall, wantOutputs int, known, polyfillNames map[string]bool, errs *[]error) {
	for _, arg := range call.Arguments {
		checkExprTree(arg, -1, known, polyfillNames, errs)
	}

	wasm := dialect.WASM64()
	if b, ok := wasm.Lookup(call.Name); ok {
		if !b.Variadic && b.Inputs != len(call.Arguments) {
			*errs = append(*errs, fmt.Errorf("analysis: %q called with %d arguments, wants %d", call.Name, len(call.Arguments), b.Inputs))
		}
		if wantOutputs >= 0 && b.Outputs != wantOutputs {
			*errs = append(*errs, fmt.Errorf("analysis: %q produces %d results, %d expected at call site", call.Name, b.Outputs, wantOutputs))
		}
		return
	}
	if polyfillNames[call.Name] || known[call.Name] {
		return
	}
	*errs = append(*errs, fmt.Errorf("analysis: call to undefined function %q", call.Name))
}
