package selector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	entries  []RawEntry
	err      error
	contract string
}

func (s *staticSource) Selectors(_ context.Context, contract string) ([]RawEntry, error) {
	s.contract = contract

	return s.entries, s.err
}

func TestBuild(t *testing.T) {
	t.Parallel()

	src := &staticSource{
		entries: []RawEntry{
			{Signature: "first()", Value: "aabbccdd"},
			{Signature: "second()", Value: "0x11223344"},
		},
	}

	res, err := Build(context.Background(), src, "DiamondLoupeFacet", BuildOptions{})
	require.NoError(t, err)

	assert.Equal(t, "DiamondLoupeFacet", src.contract)
	assert.Equal(t, "DiamondLoupeFacet", res.Contract)
	assert.Len(t, res.Entries, 2)
	assert.Equal(t, "0x"+
		"0000000000000000000000000000000000000000000000000000000000000020"+
		"0000000000000000000000000000000000000000000000000000000000000002"+
		"aabbccdd00000000000000000000000000000000000000000000000000000000"+
		"1122334400000000000000000000000000000000000000000000000000000000",
		res.Hex(),
	)
}

func TestBuild_Exclude(t *testing.T) {
	t.Parallel()

	src := &staticSource{
		entries: []RawEntry{
			{Signature: "first()", Value: "aabbccdd"},
			{Signature: "second()", Value: "11223344"},
		},
	}

	res, err := Build(context.Background(), src, "Facet", BuildOptions{
		Exclude: []Selector{{0xaa, 0xbb, 0xcc, 0xdd}},
	})
	require.NoError(t, err)

	require.Len(t, res.Entries, 1)
	assert.Equal(t, "second()", res.Entries[0].Signature)
	assert.Equal(t, EncodeArray([]Selector{{0x11, 0x22, 0x33, 0x44}}), res.Encoded)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		src         *staticSource
		expectedErr error
	}{
		{
			name:        "source unavailable is propagated",
			src:         &staticSource{err: errors.Join(ErrSourceUnavailable, errors.New("exit status 1"))},
			expectedErr: ErrSourceUnavailable,
		},
		{
			name:        "malformed output is propagated",
			src:         &staticSource{err: ErrMalformedSourceOutput},
			expectedErr: ErrMalformedSourceOutput,
		},
		{
			name: "one invalid selector aborts",
			src: &staticSource{entries: []RawEntry{
				{Signature: "ok()", Value: "aabbccdd"},
				{Signature: "bad()", Value: "aabbccddee"},
			}},
			expectedErr: ErrInvalidSelector,
		},
	}

	for _, test := range tests {
		test := test

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			res, err := Build(context.Background(), test.src, "Facet", BuildOptions{})

			assert.Nil(t, res)
			assert.ErrorIs(t, err, test.expectedErr)
		})
	}
}
