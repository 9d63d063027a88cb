// Package ast defines the closed intermediate-representation node set
// shared by both the EVM256 and WASM64 dialects. Every node is either a
// Statement or an Expression; the interfaces are sealed with unexported
// marker methods so the node set cannot grow outside this package.
package ast

// Node is the common supertype of every AST node, including the
// object-graph nodes (Object, Data) that sit above statements.
type Node interface {
	isNode()
}

// Statement is implemented by every node that can appear in a Block.
type Statement interface {
	Node
	isStatement()
}

// Expression is implemented by every node that produces a value.
type Expression interface {
	Node
	isExpression()
}

// Literal is a numeric or string constant. Value carries the textual
// form as written (decimal, 0x-hex, or a quoted string); Type is the
// builtin Yul type annotation if one was present ("" otherwise).
type Literal struct {
	Value string
	Type  string
}

func (*Literal) isNode()       {}
func (*Literal) isExpression() {}

// Identifier references a variable or (in call position, wrapped by
// FunctionCall) a function name.
type Identifier struct {
	Name string
}

func (*Identifier) isNode()       {}
func (*Identifier) isExpression() {}

// FunctionCall invokes Name with Arguments, each of which is itself an
// Expression. Per invariant 2, after canonicalization every argument is
// a Literal or Identifier; FunctionCall itself does not enforce this so
// that pre-canonicalization fixtures can still be represented.
type FunctionCall struct {
	Name      string
	Arguments []Expression
}

func (*FunctionCall) isNode()       {}
func (*FunctionCall) isExpression() {}
func (*FunctionCall) isStatement()  {}

// Assignment stores the result of Value into each of Variables, which
// must already be declared.
type Assignment struct {
	Variables []*Identifier
	Value     Expression
}

func (*Assignment) isNode()      {}
func (*Assignment) isStatement() {}

// VariableDeclaration introduces Variables, optionally initialized by
// Value (nil if the declaration has no initializer).
type VariableDeclaration struct {
	Variables []*TypedName
	Value     Expression
}

func (*VariableDeclaration) isNode()      {}
func (*VariableDeclaration) isStatement() {}

// TypedName is a declared variable name with an optional dialect type
// annotation (e.g. "i64" in the WASM64 dialect).
type TypedName struct {
	Name string
	Type string
}

// Block is an ordered sequence of statements forming a lexical scope.
type Block struct {
	Statements []Statement
}

func (*Block) isNode()      {}
func (*Block) isStatement() {}

// If runs Body when Condition evaluates non-zero. Yul's "if" has no
// else branch; two-way branching is expressed with Switch.
type If struct {
	Condition Expression
	Body      *Block
}

func (*If) isNode()      {}
func (*If) isStatement() {}

// Switch dispatches on Expr against each Case's Value, falling through
// to Default (nil if absent) when no case matches.
type Switch struct {
	Expr    Expression
	Cases   []*Case
	Default *Block
}

func (*Switch) isNode()      {}
func (*Switch) isStatement() {}

// Case is one arm of a Switch. Value is nil only for the (unused by
// this package's Switch representation, kept for grammar symmetry)
// default-within-cases form; the canonical default path is Switch.Default.
type Case struct {
	Value *Literal
	Body  *Block
}

// ForLoop is a Yul-style for loop: Init runs once, Condition is
// re-checked before each iteration, Post runs after each iteration body.
type ForLoop struct {
	Init      *Block
	Condition Expression
	Post      *Block
	Body      *Block
}

func (*ForLoop) isNode()      {}
func (*ForLoop) isStatement() {}

// Break exits the nearest enclosing ForLoop.
type Break struct{}

func (*Break) isNode()      {}
func (*Break) isStatement() {}

// Continue jumps to the Post block of the nearest enclosing ForLoop.
type Continue struct{}

func (*Continue) isNode()      {}
func (*Continue) isStatement() {}

// Leave returns from the nearest enclosing FunctionDefinition.
type Leave struct{}

func (*Leave) isNode()      {}
func (*Leave) isStatement() {}

// FunctionDefinition declares a named function. Parameters and Returns
// name the function's formal inputs/outputs; Body is the function's
// scope, which assigns Returns before a Leave or falling off the end.
type FunctionDefinition struct {
	Name       string
	Parameters []*TypedName
	Returns    []*TypedName
	Body       *Block
}

func (*FunctionDefinition) isNode()      {}
func (*FunctionDefinition) isStatement() {}

// Data is an opaque byte blob subobject, passed through a translation
// run unchanged.
type Data struct {
	Name    string
	Content []byte
}

func (*Data) isNode() {}

// Object is a named translation unit: Code is its top-level block,
// SubObjects holds nested Object/Data nodes (in original source order),
// and SubIndexByName maps a subobject's declared name to its index in
// SubObjects, mirroring Yul's object-index resolution.
type Object struct {
	Name            string
	Code            *Block
	SubObjects      []Node
	SubIndexByName  map[string]int
}

func (*Object) isNode() {}
