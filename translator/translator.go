// Package translator drives the nine-step pipeline that lowers an
// EVM256-dialect object into an equivalent WASM64-dialect object:
// canonicalize, transform word sizes, displace names that collide with
// the polyfill, splice the polyfill in, and check the result.
package translator

import (
	"fmt"
	"sync"

	"github.com/erigontech/erigon-lib/log/v3"

	"yul2ewasm/analysis"
	"yul2ewasm/ast"
	"yul2ewasm/dialect"
	"yul2ewasm/displace"
	"yul2ewasm/ident"
	"yul2ewasm/passes"
	"yul2ewasm/polyfill"
	"yul2ewasm/walk"
	"yul2ewasm/wst"
)

// MainFunctionName is the name synthesized for an object's top-level
// statements when they are wrapped into a function (spec.md §4.7 step 4).
const MainFunctionName = "main"

// PipelineError reports which of the nine pipeline steps failed and why.
type PipelineError struct {
	Object string
	Step   string
	Err    error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("translator: object %q, step %q: %v", e.Object, e.Step, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// Translator holds the pipeline's pluggable stages. The zero value is
// not usable; construct with New.
type Translator struct {
	disambiguator Disambiguator
	hoister       FunctionHoister
	grouper       FunctionGrouper
	synthesizer   MainFunctionSynthesizer
	splitter      ExpressionSplitter
	logger        log.Logger

	polyfillOnce sync.Once
	polyfill     *polyfill.Library
	polyfillErr  error
}

// The stage interfaces are re-exported aliases of package passes' so
// callers can pass a passes.* value to an Option without importing
// passes themselves.
type (
	Disambiguator           = passes.Disambiguator
	FunctionHoister         = passes.FunctionHoister
	FunctionGrouper         = passes.FunctionGrouper
	MainFunctionSynthesizer = passes.MainFunctionSynthesizer
	ExpressionSplitter      = passes.ExpressionSplitter
)

// Option configures a Translator's pluggable stages, primarily so tests
// can exercise the pipeline with one stage swapped for a fixture-only
// implementation.
type Option func(*Translator)

func WithDisambiguator(d Disambiguator) Option { return func(t *Translator) { t.disambiguator = d } }
func WithHoister(h FunctionHoister) Option      { return func(t *Translator) { t.hoister = h } }
func WithGrouper(g FunctionGrouper) Option      { return func(t *Translator) { t.grouper = g } }
func WithSynthesizer(s MainFunctionSynthesizer) Option {
	return func(t *Translator) { t.synthesizer = s }
}
func WithSplitter(s ExpressionSplitter) Option { return func(t *Translator) { t.splitter = s } }
func WithLogger(l log.Logger) Option           { return func(t *Translator) { t.logger = l } }

// New builds a Translator wired with the package's default stand-in
// passes, overridable one at a time via Option.
func New(opts ...Option) *Translator {
	t := &Translator{
		disambiguator: passes.NoOpDisambiguator{},
		hoister:       passes.TopHoister{},
		grouper:       passes.NoOpGrouper{},
		synthesizer:   passes.WrapTopLevel{},
		splitter:      passes.AssertAlreadySplit{},
		logger:        log.New(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate lowers obj from the EVM256 dialect to the WASM64 dialect,
// recursing into every nested Object subobject and passing Data
// subobjects through byte-identical. SubIndexByName is preserved
// unchanged since translation never renames or reorders subobjects.
func (t *Translator) Translate(obj ast.Object) (ast.Object, error) {
	lib, err := t.loadPolyfill()
	if err != nil {
		return ast.Object{}, &PipelineError{Object: obj.Name, Step: "load polyfill", Err: err}
	}

	code, err := t.translateCode(obj.Name, obj.Code, lib)
	if err != nil {
		return ast.Object{}, err
	}

	out := ast.Object{
		Name:           obj.Name,
		Code:           code,
		SubIndexByName: obj.SubIndexByName,
	}
	if len(obj.SubObjects) > 0 {
		out.SubObjects = make([]ast.Node, len(obj.SubObjects))
		for i, sub := range obj.SubObjects {
			switch s := sub.(type) {
			case *ast.Object:
				child, err := t.Translate(*s)
				if err != nil {
					return ast.Object{}, err
				}
				out.SubObjects[i] = &child
			case *ast.Data:
				out.SubObjects[i] = s
			default:
				return ast.Object{}, &PipelineError{Object: obj.Name, Step: "subobjects", Err: fmt.Errorf("unexpected subobject type %T", sub)}
			}
		}
	}
	return out, nil
}

// loadPolyfill parses the polyfill source at most once per Translator,
// the way EVMToEWasmTranslator::run checks its own m_polyfill member
// rather than a cache shared by every translator in the process.
func (t *Translator) loadPolyfill() (*polyfill.Library, error) {
	t.polyfillOnce.Do(func() {
		t.polyfill, t.polyfillErr = polyfill.Load()
	})
	return t.polyfill, t.polyfillErr
}

func (t *Translator) translateCode(objName string, code *ast.Block, lib *polyfill.Library) (*ast.Block, error) {
	t.logger.Debug("translating object", "object", objName)
	step := func(name string, err error) error {
		if err != nil {
			return &PipelineError{Object: objName, Step: name, Err: err}
		}
		return nil
	}

	b, err := t.disambiguator.Disambiguate(code)
	if err := step("disambiguate", err); err != nil {
		return nil, err
	}

	b, err = t.hoister.Hoist(b)
	if err := step("hoist functions", err); err != nil {
		return nil, err
	}

	b, err = t.grouper.Group(b)
	if err := step("group functions", err); err != nil {
		return nil, err
	}

	b, err = t.synthesizer.Synthesize(b, MainFunctionName)
	if err := step("synthesize main", err); err != nil {
		return nil, err
	}

	if err := t.splitter.CheckSplit(b); err != nil {
		return nil, step("split expressions", err)
	}

	alloc := ident.New(declaredNames(b))
	ds := wst.Dialects{Source: dialect.EVM256(), Target: dialect.WASM64()}
	b, err = wst.Run(ds, lib.Names, b, alloc)
	if err := step("word-size transform", err); err != nil {
		return nil, err
	}

	b = displace.Run(b, lib.Names)

	polyfillStmts := make([]ast.Statement, len(lib.Statements))
	for i, stmt := range lib.Statements {
		polyfillStmts[i] = walk.Clone(stmt).(ast.Statement)
	}
	b = &ast.Block{Statements: append(append([]ast.Statement{}, b.Statements...), polyfillStmts...)}

	wasm := &ast.Object{Name: objName, Code: b, SubIndexByName: map[string]int{}}
	if errs := analysis.CheckWASM64(wasm, lib.Names); len(errs) > 0 {
		t.logger.Warn("post-translation analysis failed", "object", objName, "errorCount", len(errs))
		return nil, step("analyze wasm64", fmt.Errorf("%d error(s), first: %w", len(errs), errs[0]))
	}

	t.logger.Debug("translated object", "object", objName, "statements", len(b.Statements))
	return b, nil
}

// declaredNames collects every name already bound in b (function names,
// parameters, returns, declared variables) so ident.Allocator never
// picks a limb name that collides with something already in scope.
func declaredNames(b *ast.Block) []string {
	var names []string
	var visitBlock func(*ast.Block)
	visitBlock = func(blk *ast.Block) {
		if blk == nil {
			return
		}
		for _, s := range blk.Statements {
			switch st := s.(type) {
			case *ast.FunctionDefinition:
				names = append(names, st.Name)
				for _, p := range st.Parameters {
					names = append(names, p.Name)
				}
				for _, r := range st.Returns {
					names = append(names, r.Name)
				}
				visitBlock(st.Body)
			case *ast.VariableDeclaration:
				for _, v := range st.Variables {
					names = append(names, v.Name)
				}
			case *ast.If:
				visitBlock(st.Body)
			case *ast.Switch:
				for _, c := range st.Cases {
					visitBlock(c.Body)
				}
				visitBlock(st.Default)
			case *ast.ForLoop:
				visitBlock(st.Init)
				visitBlock(st.Post)
				visitBlock(st.Body)
			case *ast.Block:
				visitBlock(st)
			}
		}
	}
	visitBlock(b)
	return names
}
