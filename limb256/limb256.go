// Package limb256 converts between a 256-bit value and the four
// big-endian 64-bit limbs the word-size transform represents it as,
// limb 1 being most significant and limb 4 least significant.
package limb256

import "github.com/holiman/uint256"

// Limbs is a 256-bit value split into four big-endian 64-bit words.
type Limbs [4]uint64

// Split extracts the big-endian limbs of x, the same byte order
// prover/compiler.go's generateDataSection uses when it pulls 32-bit
// words out of a uint256.Int's Bytes32 big-endian encoding.
func Split(x *uint256.Int) Limbs {
	b := x.Bytes32()
	var l Limbs
	for i := 0; i < 4; i++ {
		var word uint64
		for j := 0; j < 8; j++ {
			word = word<<8 | uint64(b[i*8+j])
		}
		l[i] = word
	}
	return l
}

// Join reconstructs the 256-bit value from its big-endian limbs.
func Join(l Limbs) *uint256.Int {
	var b [32]byte
	for i := 0; i < 4; i++ {
		word := l[i]
		for j := 7; j >= 0; j-- {
			b[i*8+j] = byte(word)
			word >>= 8
		}
	}
	return new(uint256.Int).SetBytes32(b[:])
}

// ParseDecimalOrHex parses a Yul literal's textual form (decimal or
// 0x-prefixed hex) into a uint256.Int, matching the numeric literal
// grammar the polyfill and test fixtures use.
func ParseDecimalOrHex(text string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(text)
	if err == nil {
		return v, nil
	}
	v2 := new(uint256.Int)
	if err2 := v2.SetFromHex(text); err2 == nil {
		return v2, nil
	}
	return nil, err
}
