package selector

import (
	"context"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Source returns the signature to selector mapping of a contract, in the order the
// underlying tool reported it
type Source interface {
	Selectors(ctx context.Context, contract string) ([]RawEntry, error)
}

// BuildOptions tunes Build
type BuildOptions struct {
	// Exclude lists selectors removed after parsing
	Exclude []Selector
}

// Result is the outcome of a successful Build
type Result struct {
	Contract string
	Entries  []Entry
	Encoded  []byte
}

// Hex renders the encoding as 0x-prefixed lowercase hex
func (r *Result) Hex() string {
	return hexutil.Encode(r.Encoded)
}

// Build fetches the selectors of contract from src, parses all of them and encodes
// them as bytes4[]. Any failure aborts without a partial result.
func Build(ctx context.Context, src Source, contract string, opts BuildOptions) (*Result, error) {
	raw, err := src.Selectors(ctx, contract)
	if err != nil {
		return nil, err
	}

	entries, err := ParseEntries(raw)
	if err != nil {
		return nil, err
	}

	entries = Exclude(entries, opts.Exclude)

	return &Result{
		Contract: contract,
		Entries:  entries,
		Encoded:  EncodeArray(Selectors(entries)),
	}, nil
}
