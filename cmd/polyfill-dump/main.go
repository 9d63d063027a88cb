// Command polyfill-dump parses the embedded 64-bit polyfill library once
// and prints the signature of every function it provides, sorted by
// name, as a quick way to check which EVM256 builtins have a WASM64
// implementation to splice in.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"yul2ewasm/ast"
	"yul2ewasm/polyfill"
)

func main() {
	lib, err := polyfill.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading polyfill: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(lib.Names))
	for name := range lib.Names {
		names = append(names, name)
	}
	sort.Strings(names)

	byName := make(map[string]*ast.FunctionDefinition, len(lib.Statements))
	for _, stmt := range lib.Statements {
		if fn, ok := stmt.(*ast.FunctionDefinition); ok {
			byName[fn.Name] = fn
		}
	}

	fmt.Printf("%d polyfill function(s):\n", len(names))
	for _, name := range names {
		fmt.Println(signature(byName[name]))
	}
}

func signature(fn *ast.FunctionDefinition) string {
	params := make([]string, len(fn.Parameters))
	for i, p := range fn.Parameters {
		params[i] = p.Name
	}
	rets := make([]string, len(fn.Returns))
	for i, r := range fn.Returns {
		rets[i] = r.Name
	}

	sig := fmt.Sprintf("function %s(%s)", fn.Name, strings.Join(params, ", "))
	if len(rets) > 0 {
		sig += " -> " + strings.Join(rets, ", ")
	}
	return sig
}
