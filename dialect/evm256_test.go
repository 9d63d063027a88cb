package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// coreOpcodeMnemonics is a sample of the Ethereum Yellow Paper's fixed
// instruction mnemonics, lower-cased the way Yul builtin names are
// written; it cross-checks that our EVM256 table uses the same names
// real EVM opcodes do.
var coreOpcodeMnemonics = []string{"add", "mul", "sub", "div", "sload", "sstore", "eq", "caller"}

func TestEVM256MatchesRealOpcodeNames(t *testing.T) {
	d := EVM256()
	for _, yulName := range coreOpcodeMnemonics {
		_, ok := d.Lookup(yulName)
		require.True(t, ok, "missing builtin %q", yulName)
	}
}

func TestEVM256Arity(t *testing.T) {
	d := EVM256()

	add, ok := d.Lookup("add")
	require.True(t, ok)
	assert.Equal(t, 2, add.Inputs)
	assert.Equal(t, 1, add.Outputs)

	sstore, ok := d.Lookup("sstore")
	require.True(t, ok)
	assert.Equal(t, 2, sstore.Inputs)
	assert.Equal(t, 0, sstore.Outputs)

	log2, ok := d.Lookup("log2")
	require.True(t, ok)
	assert.True(t, log2.Variadic)
	assert.Equal(t, 4, log2.Inputs)
}

func TestEVM256UnknownBuiltin(t *testing.T) {
	_, ok := EVM256().Lookup("definitely_not_a_builtin")
	assert.False(t, ok)
}
