// Package interp evaluates a WASM64-dialect ast.Block directly, without
// going through a real wasm runtime. It exists purely for differential
// testing: running the polyfill's i64-level arithmetic against
// holiman/uint256-computed reference values to check the algebraic laws
// translator and wst are meant to preserve, the way tracer.go traces a
// real EVM's stack machine to observe its behavior rather than reading
// the bytecode statically.
package interp

import (
	"fmt"
	"strconv"

	"yul2ewasm/ast"
)

// Trap is returned when evaluation hits `unreachable()` or another
// fatal condition the polyfill uses to signal an EVM-level revert.
type Trap struct {
	Reason string
}

func (t *Trap) Error() string { return fmt.Sprintf("interp: trap: %s", t.Reason) }

// Memory is linear byte-addressable memory, little-endian like real
// wasm, grown on demand the way a wasm runtime grows a memory instance
// up to its declared maximum (unbounded here since tests only ever
// touch the fixed low scratch region).
type Memory struct {
	bytes []byte
}

func NewMemory() *Memory { return &Memory{bytes: make([]byte, 1024)} }

func (m *Memory) ensure(addr uint64, width int) {
	need := addr + uint64(width)
	if need <= uint64(len(m.bytes)) {
		return
	}
	grown := make([]byte, need*2)
	copy(grown, m.bytes)
	m.bytes = grown
}

func (m *Memory) Load64(addr uint64) uint64 {
	m.ensure(addr, 8)
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(m.bytes[addr+uint64(i)]) << (8 * i)
	}
	return v
}

func (m *Memory) Store64(addr, v uint64) {
	m.ensure(addr, 8)
	for i := 0; i < 8; i++ {
		m.bytes[addr+uint64(i)] = byte(v >> (8 * i))
	}
}

func (m *Memory) Load8(addr uint64) uint64 {
	m.ensure(addr, 1)
	return uint64(m.bytes[addr])
}

func (m *Memory) Store8(addr, v uint64) {
	m.ensure(addr, 1)
	m.bytes[addr] = byte(v)
}

// Host stubs every eth.* import the polyfill can call, backed by plain
// Go state rather than a real EVM. Fields default to zero, which is a
// faithful enough environment for the arithmetic-only scenarios this
// package is built to check; tests that care about a specific
// environment value (e.g. storage round trips) set it explicitly.
type Host struct {
	Memory    *Memory
	Storage   map[[4]uint64][4]uint64
	Address   [4]uint64
	Origin    [4]uint64
	Caller    [4]uint64
	CallValue [4]uint64
}

func NewHost() *Host {
	return &Host{Memory: NewMemory(), Storage: map[[4]uint64][4]uint64{}}
}

func (h *Host) read4(addr uint64) [4]uint64 {
	return [4]uint64{
		h.Memory.Load64(addr), h.Memory.Load64(addr + 8),
		h.Memory.Load64(addr + 16), h.Memory.Load64(addr + 24),
	}
}

func (h *Host) write4(addr uint64, v [4]uint64) {
	h.Memory.Store64(addr, v[0])
	h.Memory.Store64(addr+8, v[1])
	h.Memory.Store64(addr+16, v[2])
	h.Memory.Store64(addr+24, v[3])
}

// call dispatches one eth.* host import by name. Only the imports the
// polyfill actually issues are implemented; anything else is a no-op,
// matching this package's scope as an arithmetic differential tester
// rather than a full eWASM host environment.
func (h *Host) call(name string, args []uint64) {
	switch name {
	case "eth.storageLoad":
		key := h.read4(args[0])
		h.write4(args[1], h.Storage[key])
	case "eth.storageStore":
		key := h.read4(args[0])
		h.Storage[key] = h.read4(args[1])
	case "eth.getAddress":
		h.write4(args[0], h.Address)
	case "eth.getTxOrigin":
		h.write4(args[0], h.Origin)
	case "eth.getCaller":
		h.write4(args[0], h.Caller)
	case "eth.getCallValue":
		h.write4(args[0], h.CallValue)
	default:
		// Unmodeled host call: leave memory untouched. Callers whose
		// scenario depends on one should extend Host rather than rely
		// on this fallback.
	}
}

// signal propagates non-local control flow (break/continue/leave) up
// through the recursive statement executor, the way a tree-walking
// interpreter threads control without native loop/return constructs.
type signal int

const (
	signalNone signal = iota
	signalBreak
	signalContinue
	signalLeave
)

// Interp evaluates calls against a fixed function table (normally the
// polyfill's) plus a small set of i64.* builtins implemented directly
// in Go, matching wasm's own i64 arithmetic (wraparound, unsigned
// comparisons).
type Interp struct {
	functions map[string]*ast.FunctionDefinition
	host      *Host
}

// New builds an Interp over functions (e.g. polyfill.Library.Statements,
// filtered to *ast.FunctionDefinition) plus host, the eth.*/memory
// environment every call shares.
func New(functions []ast.Statement, host *Host) *Interp {
	table := make(map[string]*ast.FunctionDefinition, len(functions))
	for _, s := range functions {
		if fn, ok := s.(*ast.FunctionDefinition); ok {
			table[fn.Name] = fn
		}
	}
	return &Interp{functions: table, host: host}
}

// Call evaluates the named function (builtin or user/polyfill-defined)
// with args and returns its declared results in order.
func (it *Interp) Call(name string, args []uint64) ([]uint64, error) {
	if out, ok, err := it.callBuiltin(name, args); ok {
		return out, err
	}
	fn, ok := it.functions[name]
	if !ok {
		return nil, fmt.Errorf("interp: call to undefined function %q", name)
	}
	if len(fn.Parameters) != len(args) {
		return nil, fmt.Errorf("interp: %q called with %d arguments, wants %d", name, len(args), len(fn.Parameters))
	}

	frame := make(map[string]uint64, len(fn.Parameters)+len(fn.Returns))
	for i, p := range fn.Parameters {
		frame[p.Name] = args[i]
	}
	for _, r := range fn.Returns {
		frame[r.Name] = 0
	}

	if _, err := it.execBlock(fn.Body, frame); err != nil {
		return nil, err
	}

	out := make([]uint64, len(fn.Returns))
	for i, r := range fn.Returns {
		out[i] = frame[r.Name]
	}
	return out, nil
}

func (it *Interp) execBlock(b *ast.Block, frame map[string]uint64) (signal, error) {
	if b == nil {
		return signalNone, nil
	}
	for _, s := range b.Statements {
		sig, err := it.execStatement(s, frame)
		if err != nil {
			return signalNone, err
		}
		if sig != signalNone {
			return sig, nil
		}
	}
	return signalNone, nil
}

func (it *Interp) execStatement(s ast.Statement, frame map[string]uint64) (signal, error) {
	switch st := s.(type) {
	case *ast.VariableDeclaration:
		return signalNone, it.bindMulti(namesOfTyped(st.Variables), st.Value, frame)
	case *ast.Assignment:
		return signalNone, it.bindMulti(namesOfIdent(st.Variables), st.Value, frame)
	case *ast.FunctionCall:
		_, err := it.evalCallMulti(st, frame)
		return signalNone, err
	case *ast.Block:
		return it.execBlock(st, frame)
	case *ast.If:
		cond, err := it.eval(st.Condition, frame)
		if err != nil {
			return signalNone, err
		}
		if cond != 0 {
			return it.execBlock(st.Body, frame)
		}
		return signalNone, nil
	case *ast.Switch:
		return it.execSwitch(st, frame)
	case *ast.ForLoop:
		return it.execForLoop(st, frame)
	case *ast.Break:
		return signalBreak, nil
	case *ast.Continue:
		return signalContinue, nil
	case *ast.Leave:
		return signalLeave, nil
	case *ast.FunctionDefinition:
		it.functions[st.Name] = st
		return signalNone, nil
	default:
		return signalNone, fmt.Errorf("interp: unsupported statement %T", s)
	}
}

func (it *Interp) execSwitch(s *ast.Switch, frame map[string]uint64) (signal, error) {
	v, err := it.eval(s.Expr, frame)
	if err != nil {
		return signalNone, err
	}
	for _, c := range s.Cases {
		n, err := strconv.ParseUint(c.Value.Value, 0, 64)
		if err != nil {
			return signalNone, fmt.Errorf("interp: bad case literal %q: %w", c.Value.Value, err)
		}
		if n == v {
			return it.execBlock(c.Body, frame)
		}
	}
	if s.Default != nil {
		return it.execBlock(s.Default, frame)
	}
	return signalNone, nil
}

func (it *Interp) execForLoop(s *ast.ForLoop, frame map[string]uint64) (signal, error) {
	if sig, err := it.execBlock(s.Init, frame); err != nil || sig != signalNone {
		return sig, err
	}
	for {
		cond, err := it.eval(s.Condition, frame)
		if err != nil {
			return signalNone, err
		}
		if cond == 0 {
			return signalNone, nil
		}
		sig, err := it.execBlock(s.Body, frame)
		if err != nil {
			return signalNone, err
		}
		if sig == signalBreak {
			return signalNone, nil
		}
		if sig == signalLeave {
			return signalLeave, nil
		}
		if sig, err := it.execBlock(s.Post, frame); err != nil || sig != signalNone {
			return sig, err
		}
	}
}

// bindMulti evaluates value (always a single expression: either a
// literal/identifier, in which case names has exactly one entry, or a
// multi-return call) and stores its results into names in order.
func (it *Interp) bindMulti(names []string, value ast.Expression, frame map[string]uint64) error {
	if value == nil {
		for _, n := range names {
			frame[n] = 0
		}
		return nil
	}
	if call, ok := value.(*ast.FunctionCall); ok {
		out, err := it.evalCallMulti(call, frame)
		if err != nil {
			return err
		}
		if len(out) != len(names) {
			return fmt.Errorf("interp: call to %q returns %d value(s), %d target(s) expected", call.Name, len(out), len(names))
		}
		for i, n := range names {
			frame[n] = out[i]
		}
		return nil
	}
	if len(names) != 1 {
		return fmt.Errorf("interp: multi-target binding without a call right-hand side")
	}
	v, err := it.eval(value, frame)
	if err != nil {
		return err
	}
	frame[names[0]] = v
	return nil
}

func namesOfTyped(ts []*ast.TypedName) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Name
	}
	return out
}

func namesOfIdent(ids []*ast.Identifier) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.Name
	}
	return out
}

// eval evaluates e to its single i64 value, requiring any call to
// return exactly one result.
func (it *Interp) eval(e ast.Expression, frame map[string]uint64) (uint64, error) {
	out, err := it.evalMulti(e, frame)
	if err != nil {
		return 0, err
	}
	if len(out) != 1 {
		return 0, fmt.Errorf("interp: expression used in a single-value position returned %d values", len(out))
	}
	return out[0], nil
}

func (it *Interp) evalMulti(e ast.Expression, frame map[string]uint64) ([]uint64, error) {
	switch v := e.(type) {
	case *ast.Literal:
		n, err := strconv.ParseUint(v.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("interp: bad i64 literal %q: %w", v.Value, err)
		}
		return []uint64{n}, nil
	case *ast.Identifier:
		val, ok := frame[v.Name]
		if !ok {
			return nil, fmt.Errorf("interp: reference to unbound identifier %q", v.Name)
		}
		return []uint64{val}, nil
	case *ast.FunctionCall:
		return it.evalCallMulti(v, frame)
	default:
		return nil, fmt.Errorf("interp: unsupported expression %T", e)
	}
}

func (it *Interp) evalCallMulti(call *ast.FunctionCall, frame map[string]uint64) ([]uint64, error) {
	args := make([]uint64, len(call.Arguments))
	for i, a := range call.Arguments {
		v, err := it.eval(a, frame)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return it.Call(call.Name, args)
}
