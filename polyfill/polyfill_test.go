package polyfill

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yul2ewasm/ast"
	"yul2ewasm/dialect"
)

func TestLoadParsesSuccessfully(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, lib.Statements)
	assert.NotEmpty(t, lib.Names)
}

// TestLoadIsReproducible checks that repeated calls agree on content.
// Load does not cache -- caching is instance-scoped on the owning
// *translator.Translator -- so two calls return distinct *Library
// values rather than the same pointer.
func TestLoadIsReproducible(t *testing.T) {
	a, err := Load()
	require.NoError(t, err)
	b, err := Load()
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, namesInOrder(a), namesInOrder(b))
	assert.Equal(t, a.Names, b.Names)
}

// Every EVM256 builtin must have a same-named polyfill entry: this is
// the closure invariant wst.Run relies on to lower a call site.
func TestLibraryClosesOverEVM256Builtins(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)
	for name := range dialect.EVM256().Builtins {
		assert.True(t, lib.Names[name], "missing polyfill entry for %q", name)
	}
}

func TestNoDuplicateFunctionNames(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)
	seen := map[string]int{}
	for _, name := range namesInOrder(lib) {
		seen[name]++
	}
	for name, count := range seen {
		assert.Equal(t, 1, count, "function %q defined more than once", name)
	}
}

// TestLog3AndLog4ForwardEveryTopic guards the eth.log marshalling
// boundary: log3/log4 must forward every topic they accept rather than
// silently dropping the topics beyond the second.
func TestLog3AndLog4ForwardEveryTopic(t *testing.T) {
	lib, err := Load()
	require.NoError(t, err)

	for name, wantTopics := range map[string]int{"log0": 0, "log1": 1, "log2": 2, "log3": 3, "log4": 4} {
		fn := findFn(t, lib, name)
		call := findCallTo(t, fn.Body, "eth.log")
		require.Len(t, call.Arguments, 7, "%s: eth.log always takes offset, length, topic count, and four topic slots", name)

		topicCount := call.Arguments[2].(*ast.Literal)
		assert.Equal(t, fmt.Sprintf("%d", wantTopics), topicCount.Value)

		for i := 0; i < wantTopics; i++ {
			_, ok := call.Arguments[3+i].(*ast.FunctionCall)
			assert.True(t, ok, "%s: topic slot %d must carry a marshalled topic, not a placeholder", name, i)
		}
		for i := wantTopics; i < 4; i++ {
			lit, ok := call.Arguments[3+i].(*ast.Literal)
			require.True(t, ok, "%s: unused topic slot %d must be a literal placeholder", name, i)
			assert.Equal(t, "0", lit.Value)
		}
	}
}

func findFn(t *testing.T, lib *Library, name string) *ast.FunctionDefinition {
	t.Helper()
	for _, stmt := range lib.Statements {
		if fn, ok := stmt.(*ast.FunctionDefinition); ok && fn.Name == name {
			return fn
		}
	}
	t.Fatalf("no polyfill function named %q", name)
	return nil
}

func findCallTo(t *testing.T, b *ast.Block, name string) *ast.FunctionCall {
	t.Helper()
	for _, stmt := range b.Statements {
		if call, ok := stmt.(*ast.FunctionCall); ok && call.Name == name {
			return call
		}
	}
	t.Fatalf("no call to %q", name)
	return nil
}

func namesInOrder(lib *Library) []string {
	out := make([]string, 0, len(lib.Statements))
	for _, stmt := range lib.Statements {
		out = append(out, stmt.(*ast.FunctionDefinition).Name)
	}
	return out
}
