package selector

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// WordSize is the ABI slot width
const WordSize = 32

// EncodeArray returns the standalone ABI encoding of a single bytes4[] argument:
//
//	word 0: offset of the tail (always 32)
//	word 1: element count
//	word 2+i: selector i, left aligned and zero padded on the right
func EncodeArray(sels []Selector) []byte {
	out := make([]byte, 2*WordSize+len(sels)*WordSize)

	putUint(out[:WordSize], WordSize)
	putUint(out[WordSize:2*WordSize], uint64(len(sels)))

	for i, s := range sels {
		copy(out[(2+i)*WordSize:], s[:])
	}

	return out
}

// EncodeHex renders EncodeArray as 0x-prefixed lowercase hex
func EncodeHex(sels []Selector) string {
	return hexutil.Encode(EncodeArray(sels))
}

// putUint writes n as a big-endian uint256 into a 32-byte word
func putUint(word []byte, n uint64) {
	word[24] = byte(n >> 56)
	word[25] = byte(n >> 48)
	word[26] = byte(n >> 40)
	word[27] = byte(n >> 32)
	word[28] = byte(n >> 24)
	word[29] = byte(n >> 16)
	word[30] = byte(n >> 8)
	word[31] = byte(n)
}
