package limb256

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitJoinRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"18446744073709551615",              // 2^64-1, fits in one limb
		"18446744073709551616",              // 2^64, spills into limb3
		"115792089237316195423570985008687907853269984665640564039457584007913129639935", // 2^256-1
	}
	for _, c := range cases {
		x, err := ParseDecimalOrHex(c)
		require.NoError(t, err)
		limbs := Split(x)
		back := Join(limbs)
		assert.True(t, x.Eq(back), "round trip mismatch for %s", c)
	}
}

func TestSplitLimbOrder(t *testing.T) {
	x := new(uint256.Int).SetUint64(1)
	limbs := Split(x)
	assert.Equal(t, Limbs{0, 0, 0, 1}, limbs, "1 must live in the least-significant (last) limb")
}

func TestParseHex(t *testing.T) {
	x, err := ParseDecimalOrHex("0x10")
	require.NoError(t, err)
	assert.Equal(t, uint64(16), x.Uint64())
}
