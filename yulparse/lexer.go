// Package yulparse parses Yul-like source text into this repository's
// ast package. It exists to feed two, and only two, kinds of input: the
// fixed polyfill library (package polyfill) and hand-authored test
// fixtures / CLI input files — never arbitrary untrusted output of a
// full Solidity-style compiler frontend, which spec.md explicitly
// leaves to an external, out-of-scope parser.
package yulparse

import "github.com/alecthomas/participle/v2/lexer"

// yulLexer tokenizes Yul-like text. Ident intentionally accepts dots so
// that dialect-qualified builtin names (i64.add, eth.getAddress) lex as
// a single token rather than three.
var yulLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_$][a-zA-Z0-9_$.]*`, nil},
		{"Number", `0x[0-9a-fA-F]+|[0-9]+`, nil},
		{"String", `"(\\.|[^"\\])*"`, nil},
		{"Punct", `[{}(),:=>-]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
