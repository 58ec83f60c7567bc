package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/hashicorp/go-hclog"
	ethabi "github.com/umbracle/ethgo/abi"
	"github.com/valyala/fastjson"

	"github.com/xgr-network/facetkit/selector"
)

const DefaultArtifactsDir = "out"

var _ selector.Source = (*Artifact)(nil)

// Artifact reads selectors from a compiled Foundry artifact. It prefers the
// methodIdentifiers section and derives selectors from the ABI otherwise.
type Artifact struct {
	// Root is the Foundry project directory
	Root string
	// Out is the artifacts directory relative to Root
	Out string

	Logger hclog.Logger
}

// Path returns the artifact file for a contract identifier, either `Name` or `path/File.sol:Name`
func (a *Artifact) Path(contract string) string {
	out := a.Out
	if out == "" {
		out = DefaultArtifactsDir
	}

	file, name := contract+".sol", contract
	if i := strings.LastIndex(contract, ":"); i >= 0 {
		file, name = filepath.Base(contract[:i]), contract[i+1:]
	}

	return filepath.Join(a.Root, out, file, name+".json")
}

func (a *Artifact) Selectors(_ context.Context, contract string) ([]selector.RawEntry, error) {
	path := a.Path(contract)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", selector.ErrSourceUnavailable, err)
	}

	var p fastjson.Parser

	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", selector.ErrMalformedSourceOutput, path, err)
	}

	if ids := v.Get("methodIdentifiers"); ids != nil {
		loggerOrNull(a.Logger).Debug("using artifact method identifiers", "path", path)

		entries, err := identifiersFromValue(ids)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		return entries, nil
	}

	items := v.GetArray("abi")
	if items == nil {
		return nil, fmt.Errorf("%w: %s has neither methodIdentifiers nor abi",
			selector.ErrMalformedSourceOutput, path)
	}

	loggerOrNull(a.Logger).Debug("deriving selectors from artifact abi", "path", path)

	return selectorsFromABI(items)
}

// selectorsFromABI derives the selector of every function item, in ABI order
func selectorsFromABI(items []*fastjson.Value) ([]selector.RawEntry, error) {
	entries := make([]selector.RawEntry, 0, len(items))

	for i, item := range items {
		if string(item.GetStringBytes("type")) != "function" {
			continue
		}

		parsed, err := ethabi.NewABI("[" + item.String() + "]")
		if err != nil {
			return nil, fmt.Errorf("%w: abi item %d: %w", selector.ErrMalformedSourceOutput, i, err)
		}

		for _, method := range parsed.Methods {
			entries = append(entries, selector.RawEntry{
				Signature: method.Sig(),
				Value:     hexutil.Encode(method.ID()),
			})
		}
	}

	return entries, nil
}
