package hyperliquid

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-retryablehttp"
)

const (
	NetworkMainnet = "mainnet"
	NetworkTestnet = "testnet"

	MainnetAPIURL = "https://api.hyperliquid.xyz"
	TestnetAPIURL = "https://api.hyperliquid-testnet.xyz"

	DefaultTimeout = 10 * time.Second

	statusOK = "ok"
)

var (
	errMissingKey = errors.New("session requires a private key")

	// ErrRejected is returned when the exchange answers with a non-ok status
	ErrRejected = errors.New("exchange rejected action")
)

// Config holds everything a session needs. The key is only referenced by the session
// built from it.
type Config struct {
	Network string
	// APIURL overrides the network default
	APIURL  string
	Key     *ecdsa.PrivateKey
	Timeout time.Duration
	Logger  hclog.Logger
}

// Session is an authenticated handle on the exchange API
type Session struct {
	key     *ecdsa.PrivateKey
	address common.Address
	apiURL  string
	mainnet bool

	client *retryablehttp.Client
	logger hclog.Logger
	nonce  func() uint64
}

// Response is the exchange reply envelope
type Response struct {
	Status   string          `json:"status"`
	Response json.RawMessage `json:"response,omitempty"`
}

type exchangeRequest struct {
	Action       interface{} `json:"action"`
	Nonce        uint64      `json:"nonce"`
	Signature    *Signature  `json:"signature"`
	VaultAddress *string     `json:"vaultAddress"`
	ExpiresAfter *uint64     `json:"expiresAfter"`
}

func ValidateNetwork(network string) error {
	switch network {
	case "", NetworkMainnet, NetworkTestnet:
		return nil
	default:
		return fmt.Errorf("invalid network %q (allowed: %s|%s)", network, NetworkMainnet, NetworkTestnet)
	}
}

// NewSession builds a session from an explicit configuration. An empty network means mainnet.
func NewSession(cfg Config) (*Session, error) {
	if cfg.Key == nil {
		return nil, errMissingKey
	}

	if err := ValidateNetwork(cfg.Network); err != nil {
		return nil, err
	}

	mainnet := cfg.Network != NetworkTestnet

	apiURL := strings.TrimRight(strings.TrimSpace(cfg.APIURL), "/")
	if apiURL == "" {
		apiURL = MainnetAPIURL
		if !mainnet {
			apiURL = TestnetAPIURL
		}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	// single call, the exchange nonce must not be replayed by transport retries
	client := retryablehttp.NewClient()
	client.RetryMax = 0
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	client.HTTPClient.Timeout = timeout
	client.Logger = logger.Named("http")

	return &Session{
		key:     cfg.Key,
		address: crypto.PubkeyToAddress(cfg.Key.PublicKey),
		apiURL:  apiURL,
		mainnet: mainnet,
		client:  client,
		logger:  logger,
		nonce:   func() uint64 { return uint64(time.Now().UnixMilli()) },
	}, nil
}

// Address is the account the session signs for
func (s *Session) Address() common.Address {
	return s.address
}

// UseBigBlocks switches the account's HyperEVM deployments to big blocks (or back)
func (s *Session) UseBigBlocks(ctx context.Context, enable bool) (*Response, error) {
	return s.postAction(ctx, newEVMUserModify(enable))
}

func (s *Session) postAction(ctx context.Context, action interface{}) (*Response, error) {
	nonce := s.nonce()

	sig, err := signL1Action(s.key, action, nonce, s.mainnet)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(&exchangeRequest{
		Action:    action,
		Nonce:     nonce,
		Signature: sig,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal exchange request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/exchange", body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	s.logger.Debug("posting exchange action", "address", s.address, "nonce", nonce)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read exchange response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("exchange returned %s: %s", resp.Status, bytes.TrimSpace(raw))
	}

	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("failed to decode exchange response %q: %w", bytes.TrimSpace(raw), err)
	}

	if out.Status != statusOK {
		return nil, fmt.Errorf("%w: %s", ErrRejected, bytes.TrimSpace(out.Response))
	}

	return &out, nil
}
