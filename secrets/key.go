package secrets

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	vault "github.com/hashicorp/vault/api"
)

const (
	DefaultVaultMount = "secret"
	DefaultVaultField = "private-key"
)

var (
	ErrNoKeySource        = errors.New("no private key source configured")
	ErrMultipleKeySources = errors.New("only one private key source may be configured")
)

// KeyConfig names exactly one place to read an account key from
type KeyConfig struct {
	// Hex is the raw key, with or without 0x prefix
	Hex string
	// File holds the hex encoded key
	File string
	// Vault reads the key from a KV v2 secret
	Vault *VaultConfig
}

type VaultConfig struct {
	Mount string
	Path  string
	Field string

	// Client defaults to one built from the VAULT_* environment
	Client *vault.Client
}

func (c KeyConfig) sources() int {
	n := 0

	for _, set := range []bool{
		strings.TrimSpace(c.Hex) != "",
		strings.TrimSpace(c.File) != "",
		c.Vault != nil && strings.TrimSpace(c.Vault.Path) != "",
	} {
		if set {
			n++
		}
	}

	return n
}

// LoadKey reads and parses the key. The key never leaves the returned value.
func LoadKey(ctx context.Context, cfg KeyConfig) (*ecdsa.PrivateKey, error) {
	switch cfg.sources() {
	case 0:
		return nil, ErrNoKeySource
	case 1:
	default:
		return nil, ErrMultipleKeySources
	}

	switch {
	case strings.TrimSpace(cfg.Hex) != "":
		return parseKey(cfg.Hex)
	case strings.TrimSpace(cfg.File) != "":
		raw, err := os.ReadFile(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("failed to read key file: %w", err)
		}

		return parseKey(string(raw))
	default:
		raw, err := readVault(ctx, cfg.Vault)
		if err != nil {
			return nil, err
		}

		return parseKey(raw)
	}
}

func parseKey(raw string) (*ecdsa.PrivateKey, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(strings.TrimPrefix(raw, "0x"), "0X")

	key, err := crypto.HexToECDSA(raw)
	if err != nil {
		// the error never carries key material
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return key, nil
}

func readVault(ctx context.Context, cfg *VaultConfig) (string, error) {
	client := cfg.Client
	if client == nil {
		var err error

		client, err = vault.NewClient(vault.DefaultConfig())
		if err != nil {
			return "", fmt.Errorf("failed to create vault client: %w", err)
		}
	}

	mount := cfg.Mount
	if mount == "" {
		mount = DefaultVaultMount
	}

	field := cfg.Field
	if field == "" {
		field = DefaultVaultField
	}

	secret, err := client.KVv2(mount).Get(ctx, cfg.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read vault secret %s/%s: %w", mount, cfg.Path, err)
	}

	value, ok := secret.Data[field].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("vault secret %s/%s has no string field %q", mount, cfg.Path, field)
	}

	return value, nil
}
