// Package polyfill loads the fixed 64-bit Yul library every lowered
// EVM256 builtin call dispatches to. The source text lives in
// polyfill.yul and is embedded into the binary the same way the
// teacher embeds its proving resources.
package polyfill

import (
	_ "embed"
	"fmt"

	"yul2ewasm/ast"
	"yul2ewasm/yulparse"
)

//go:embed polyfill.yul
var source string

// Library is the parsed polyfill: its function definitions plus the
// set of names it provides, used by wst and analysis to check builtin
// closure without re-parsing the source on every lookup.
type Library struct {
	Statements []ast.Statement
	Names      map[string]bool
}

// Load parses the embedded polyfill source. Each call reparses: caching
// is the caller's responsibility, deliberately, since the cache is
// instance-scoped (every *translator.Translator parses the polyfill at
// most once and keeps the result on itself) rather than a package-wide
// singleton every translator would otherwise share.
func Load() (*Library, error) {
	block, err := yulparse.ParseBlock("polyfill.yul", source)
	if err != nil {
		return nil, fmt.Errorf("polyfill: %w", err)
	}
	names := make(map[string]bool, len(block.Statements))
	for _, stmt := range block.Statements {
		fn, ok := stmt.(*ast.FunctionDefinition)
		if !ok {
			return nil, fmt.Errorf("polyfill: unexpected top-level statement %T", stmt)
		}
		names[fn.Name] = true
	}
	return &Library{Statements: block.Statements, Names: names}, nil
}
