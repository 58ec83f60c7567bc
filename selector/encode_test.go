package selector

import (
	"encoding/binary"
	"strings"
	"testing"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ethabi "github.com/umbracle/ethgo/abi"
	"pgregory.net/rapid"
)

func mustSelector(t *testing.T, s string) Selector {
	t.Helper()

	sel, err := ParseSelector(s)
	require.NoError(t, err)

	return sel
}

func TestEncodeHex_TwoSelectors(t *testing.T) {
	t.Parallel()

	sels := []Selector{
		mustSelector(t, "0xaabbccdd"),
		mustSelector(t, "0x11223344"),
	}

	expected := "0x" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"0000000000000000000000000000000000000000000000000000000000000002" +
		"aabbccdd00000000000000000000000000000000000000000000000000000000" +
		"1122334400000000000000000000000000000000000000000000000000000000"

	assert.Equal(t, expected, EncodeHex(sels))
}

func TestEncodeHex_Empty(t *testing.T) {
	t.Parallel()

	expected := "0x" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		strings.Repeat("0", 64)

	assert.Equal(t, expected, EncodeHex(nil))
	assert.Equal(t, expected, EncodeHex([]Selector{}))
	assert.Len(t, EncodeArray(nil), 64)
}

func TestEncodeArray_KeepsOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	a := mustSelector(t, "01020304")
	b := mustSelector(t, "0a0b0c0d")

	out := EncodeArray([]Selector{b, a, b})

	require.Len(t, out, 64+3*32)
	assert.Equal(t, b[:], out[64:68])
	assert.Equal(t, a[:], out[96:100])
	assert.Equal(t, b[:], out[128:132])
}

func TestEncodeHex_Lowercase(t *testing.T) {
	t.Parallel()

	out := EncodeHex([]Selector{mustSelector(t, "0xAABBCCDD")})

	assert.True(t, strings.HasPrefix(out, "0x"))
	assert.Equal(t, strings.ToLower(out), out)
	assert.Equal(t, 0, len(out[2:])%2)
}

func selectorGen() *rapid.Generator[Selector] {
	return rapid.Custom(func(t *rapid.T) Selector {
		var s Selector

		copy(s[:], rapid.SliceOfN(rapid.Byte(), Size, Size).Draw(t, "bytes"))

		return s
	})
}

func TestEncodeArray_Layout(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sels := rapid.SliceOfN(selectorGen(), 0, 64).Draw(t, "selectors")
		out := EncodeArray(sels)

		// length law
		require.Len(t, out, 64+32*len(sels))
		require.Zero(t, len(out)%WordSize)

		// offset word
		require.Equal(t, make([]byte, 24), out[:24])
		require.Equal(t, uint64(32), binary.BigEndian.Uint64(out[24:32]))

		// count word
		require.Equal(t, make([]byte, 24), out[32:56])
		require.Equal(t, uint64(len(sels)), binary.BigEndian.Uint64(out[56:64]))

		for i, s := range sels {
			word := out[64+32*i : 64+32*(i+1)]

			require.Equal(t, s[:], word[:Size])
			require.Equal(t, make([]byte, WordSize-Size), word[Size:])
		}

		require.Equal(t, out, EncodeArray(sels), "encoding must be deterministic")
	})
}

func TestEncodeArray_MatchesEthgo(t *testing.T) {
	typ := ethabi.MustNewType("tuple(bytes4[])")

	rapid.Check(t, func(t *rapid.T) {
		sels := rapid.SliceOfN(selectorGen(), 0, 16).Draw(t, "selectors")

		raw := make([][4]byte, len(sels))
		for i, s := range sels {
			raw[i] = s
		}

		expected, err := typ.Encode([]interface{}{raw})
		require.NoError(t, err)
		require.Equal(t, expected, EncodeArray(sels))
	})
}

func TestEncodeArray_MatchesGethABI(t *testing.T) {
	t.Parallel()

	typ, err := gethabi.NewType("bytes4[]", "", nil)
	require.NoError(t, err)

	args := gethabi.Arguments{{Type: typ}}

	sels := []Selector{
		mustSelector(t, "0x1f931c1c"),
		mustSelector(t, "0xcdffacc6"),
		mustSelector(t, "0x52ef6b2c"),
		mustSelector(t, "0xadfca15e"),
		mustSelector(t, "0x7a0ed627"),
	}

	raw := make([][4]byte, len(sels))
	for i, s := range sels {
		raw[i] = s
	}

	expected, err := args.Pack(raw)
	require.NoError(t, err)
	assert.Equal(t, expected, EncodeArray(sels))
}
