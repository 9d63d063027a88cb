package yulparse

// Grammar types mirror kanso-lang-kanso's grammar package style: one
// struct per production, participle struct tags encode the EBNF.
// Unexported marker fields consume keywords/punctuation without
// needing a named field for them.

type gBlock struct {
	Statements []*gStatement `"{" @@* "}"`
}

type gStatement struct {
	FunctionDef *gFunctionDef `  @@`
	VarDecl     *gVarDecl     `| @@`
	If          *gIf          `| @@`
	Switch      *gSwitch      `| @@`
	ForLoop     *gForLoop     `| @@`
	Break       *gBreak       `| @@`
	Continue    *gContinue    `| @@`
	Leave       *gLeave       `| @@`
	Assign      *gAssign      `| @@`
	Block       *gBlock       `| @@`
	ExprStmt    *gCall        `| @@`
}

type gExpr struct {
	Call   *gCall  `  @@`
	Number *string `| @Number`
	Ident  *string `| @Ident`
}

type gCall struct {
	Name string   `@Ident "("`
	Args []*gExpr `( @@ ( "," @@ )* )? ")"`
}

type gAssign struct {
	Names []string `@Ident ( "," @Ident )* ":" "="`
	Value *gExpr   `@@`
}

type gVarDecl struct {
	Keyword string  `"let"`
	Names   []string `@Ident ( "," @Ident )*`
	Value   *gExpr   `( ":" "=" @@ )?`
}

type gIf struct {
	Keyword string  `"if"`
	Cond    *gExpr  `@@`
	Body    *gBlock `@@`
}

type gForLoop struct {
	Keyword string  `"for"`
	Init    *gBlock `@@`
	Cond    *gExpr  `@@`
	Post    *gBlock `@@`
	Body    *gBlock `@@`
}

type gCase struct {
	Keyword string  `"case"`
	Value   string  `@Number`
	Body    *gBlock `@@`
}

type gSwitch struct {
	Keyword string   `"switch"`
	Expr    *gExpr   `@@`
	Cases   []*gCase `@@*`
	Default *gBlock  `( "default" @@ )?`
}

type gBreak struct {
	Keyword string `@"break"`
}

type gContinue struct {
	Keyword string `@"continue"`
}

type gLeave struct {
	Keyword string `@"leave"`
}

type gFunctionDef struct {
	Keyword string   `"function"`
	Name    string   `@Ident "("`
	Params  []string `( @Ident ( "," @Ident )* )? ")"`
	Returns []string `( "-" ">" @Ident ( "," @Ident )* )?`
	Body    *gBlock  `@@`
}

// gCodeBlock is the "code { ... }" section of an object.
type gCodeBlock struct {
	Keyword string  `"code"`
	Body    *gBlock `@@`
}

type gData struct {
	Keyword string `"data"`
	Name    string `@String`
	Content string `@String`
}

type gSub struct {
	Object *gObject `  @@`
	Data   *gData   `| @@`
}

type gObject struct {
	Keyword string     `"object"`
	Name    string     `@String "{"`
	Code    *gCodeBlock `@@`
	Subs    []*gSub     `@@* "}"`
}

// gProgram is the root production for a bare statement sequence (used
// to parse the polyfill, which is just a flat list of function
// definitions with no enclosing object).
type gProgram struct {
	Statements []*gStatement `@@*`
}
