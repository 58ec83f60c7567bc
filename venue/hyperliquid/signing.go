package hyperliquid

import (
	"crypto/ecdsa"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/vmihailenco/msgpack/v4"
)

// l1ChainID is the chain id of the EIP-712 domain every L1 action is signed under
const l1ChainID = 1337

// Signature is the r/s/v triple the exchange endpoint expects
type Signature struct {
	R string `json:"r"`
	S string `json:"s"`
	V int    `json:"v"`
}

// evmUserModify switches the account between small and big HyperEVM blocks
type evmUserModify struct {
	Type           string `msgpack:"type" json:"type"`
	UsingBigBlocks bool   `msgpack:"usingBigBlocks" json:"usingBigBlocks"`
}

func newEVMUserModify(useBigBlocks bool) *evmUserModify {
	return &evmUserModify{Type: "evmUserModify", UsingBigBlocks: useBigBlocks}
}

// actionHash is keccak256(msgpack(action) || nonce || vault flag [|| vault address])
func actionHash(action interface{}, nonce uint64, vault *common.Address) ([]byte, error) {
	packed, err := msgpack.Marshal(action)
	if err != nil {
		return nil, fmt.Errorf("failed to msgpack action: %w", err)
	}

	buf := make([]byte, 0, len(packed)+8+1+common.AddressLength)
	buf = append(buf, packed...)
	buf = binary.BigEndian.AppendUint64(buf, nonce)

	if vault == nil {
		buf = append(buf, 0)
	} else {
		buf = append(buf, 1)
		buf = append(buf, vault.Bytes()...)
	}

	return crypto.Keccak256(buf), nil
}

// agentTypedData wraps an action hash into the phantom agent message
func agentTypedData(connectionID []byte, mainnet bool) apitypes.TypedData {
	source := "b"
	if mainnet {
		source = "a"
	}

	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			"Agent": {
				{Name: "source", Type: "string"},
				{Name: "connectionId", Type: "bytes32"},
			},
		},
		PrimaryType: "Agent",
		Domain: apitypes.TypedDataDomain{
			Name:              "Exchange",
			Version:           "1",
			ChainId:           math.NewHexOrDecimal256(l1ChainID),
			VerifyingContract: common.Address{}.Hex(),
		},
		Message: apitypes.TypedDataMessage{
			"source":       source,
			"connectionId": connectionID,
		},
	}
}

// l1Digest is the EIP-712 digest signed for an L1 action
func l1Digest(action interface{}, nonce uint64, vault *common.Address, mainnet bool) ([]byte, error) {
	hash, err := actionHash(action, nonce, vault)
	if err != nil {
		return nil, err
	}

	digest, _, err := apitypes.TypedDataAndHash(agentTypedData(hash, mainnet))
	if err != nil {
		return nil, fmt.Errorf("failed to hash typed data: %w", err)
	}

	return digest, nil
}

func signL1Action(key *ecdsa.PrivateKey, action interface{}, nonce uint64, mainnet bool) (*Signature, error) {
	digest, err := l1Digest(action, nonce, nil, mainnet)
	if err != nil {
		return nil, err
	}

	sig, err := crypto.Sign(digest, key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign action: %w", err)
	}

	return &Signature{
		R: hexutil.EncodeBig(new(big.Int).SetBytes(sig[:32])),
		S: hexutil.EncodeBig(new(big.Int).SetBytes(sig[32:64])),
		V: int(sig[64]) + 27,
	}, nil
}
