package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xgr-network/facetkit/selector"
)

const loupeABIArtifact = `{
  "abi": [
    {"type": "constructor", "inputs": [], "stateMutability": "nonpayable"},
    {"type": "function", "name": "owner", "inputs": [], "outputs": [{"name": "", "type": "address"}], "stateMutability": "view"},
    {"type": "event", "name": "OwnershipTransferred", "inputs": [
      {"name": "previousOwner", "type": "address", "indexed": true},
      {"name": "newOwner", "type": "address", "indexed": true}
    ], "anonymous": false},
    {"type": "function", "name": "transfer", "inputs": [
      {"name": "to", "type": "address"},
      {"name": "amount", "type": "uint256"}
    ], "outputs": [{"name": "", "type": "bool"}], "stateMutability": "nonpayable"},
    {"type": "function", "name": "diamondCut", "inputs": [
      {"name": "_diamondCut", "type": "tuple[]", "components": [
        {"name": "facetAddress", "type": "address"},
        {"name": "action", "type": "uint8"},
        {"name": "functionSelectors", "type": "bytes4[]"}
      ]},
      {"name": "_init", "type": "address"},
      {"name": "_calldata", "type": "bytes"}
    ], "outputs": [], "stateMutability": "nonpayable"}
  ],
  "bytecode": {"object": "0x"}
}`

func writeArtifact(t *testing.T, root, file, name, body string) {
	t.Helper()

	dir := filepath.Join(root, DefaultArtifactsDir, file)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(body), 0o600))
}

func TestArtifact_Path(t *testing.T) {
	t.Parallel()

	a := &Artifact{Root: "/project"}

	assert.Equal(t, "/project/out/Facet.sol/Facet.json", a.Path("Facet"))
	assert.Equal(t, "/project/out/Diamond.sol/Loupe.json", a.Path("src/facets/Diamond.sol:Loupe"))

	a.Out = "build"
	assert.Equal(t, "/project/build/Facet.sol/Facet.json", a.Path("Facet"))
}

func TestArtifact_MethodIdentifiers(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeArtifact(t, root, "Ownable.sol", "Ownable", `{
  "abi": [],
  "methodIdentifiers": {"transferOwnership(address)": "f2fde38b", "owner()": "8da5cb5b"}
}`)

	entries, err := (&Artifact{Root: root}).Selectors(context.Background(), "Ownable")
	require.NoError(t, err)

	assert.Equal(t, []selector.RawEntry{
		{Signature: "transferOwnership(address)", Value: "f2fde38b"},
		{Signature: "owner()", Value: "8da5cb5b"},
	}, entries)
}

func TestArtifact_DerivesFromABI(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeArtifact(t, root, "Loupe.sol", "Loupe", loupeABIArtifact)

	entries, err := (&Artifact{Root: root}).Selectors(context.Background(), "Loupe")
	require.NoError(t, err)

	assert.Equal(t, []selector.RawEntry{
		{Signature: "owner()", Value: "0x8da5cb5b"},
		{Signature: "transfer(address,uint256)", Value: "0xa9059cbb"},
		{Signature: "diamondCut((address,uint8,bytes4[])[],address,bytes)", Value: "0x1f931c1c"},
	}, entries)
}

func TestArtifact_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeArtifact(t, root, "Broken.sol", "Broken", `{"abi": `)
	writeArtifact(t, root, "Bare.sol", "Bare", `{"bytecode": {"object": "0x"}}`)

	a := &Artifact{Root: root}

	_, err := a.Selectors(context.Background(), "Missing")
	assert.ErrorIs(t, err, selector.ErrSourceUnavailable)

	_, err = a.Selectors(context.Background(), "Broken")
	assert.ErrorIs(t, err, selector.ErrMalformedSourceOutput)

	_, err = a.Selectors(context.Background(), "Bare")
	assert.ErrorIs(t, err, selector.ErrMalformedSourceOutput)
}
