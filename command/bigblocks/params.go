package bigblocks

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/xgr-network/facetkit/command"
	"github.com/xgr-network/facetkit/config"
	"github.com/xgr-network/facetkit/secrets"
	"github.com/xgr-network/facetkit/venue/hyperliquid"
)

const (
	enableFlag         = "enable"
	disableFlag        = "disable"
	networkFlag        = "network"
	apiURLFlag         = "api-url"
	timeoutFlag        = "timeout"
	privateKeyFlag     = "private-key"
	privateKeyFileFlag = "private-key-file"
	vaultPathFlag      = "vault-path"
	vaultMountFlag     = "vault-mount"
	vaultFieldFlag     = "vault-field"
)

type bigBlocksParams struct {
	enable  bool
	disable bool

	network string
	apiURL  string
	timeout time.Duration

	privateKey     string
	privateKeyFile string
	vaultPath      string
	vaultMount     string
	vaultField     string
}

func (p *bigBlocksParams) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	set := func(flag string, dst *string, value string) {
		if !cmd.Flags().Changed(flag) && value != "" {
			*dst = value
		}
	}

	hl := cfg.Hyperliquid

	set(networkFlag, &p.network, hl.Network)
	set(apiURLFlag, &p.apiURL, hl.APIURL)
	set(vaultMountFlag, &p.vaultMount, hl.Vault.Mount)
	set(vaultFieldFlag, &p.vaultField, hl.Vault.Field)

	if !cmd.Flags().Changed(timeoutFlag) && hl.Timeout > 0 {
		p.timeout = hl.Timeout
	}

	// a key source given on the command line replaces the configured one
	if p.keyFlagsChanged(cmd) {
		return
	}

	p.privateKeyFile = hl.KeyFile
	p.vaultPath = hl.Vault.Path
}

func (p *bigBlocksParams) keyFlagsChanged(cmd *cobra.Command) bool {
	for _, flag := range []string{privateKeyFlag, privateKeyFileFlag, vaultPathFlag} {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}

	return false
}

func (p *bigBlocksParams) validateFlags() error {
	return hyperliquid.ValidateNetwork(p.network)
}

// keyConfig falls back to the PRIVATE_KEY environment variable when nothing else names a key
func (p *bigBlocksParams) keyConfig() secrets.KeyConfig {
	cfg := secrets.KeyConfig{
		Hex:  p.privateKey,
		File: p.privateKeyFile,
	}

	if p.vaultPath != "" {
		cfg.Vault = &secrets.VaultConfig{
			Mount: p.vaultMount,
			Path:  p.vaultPath,
			Field: p.vaultField,
		}
	}

	if cfg.Hex == "" && cfg.File == "" && cfg.Vault == nil {
		cfg.Hex = strings.TrimSpace(os.Getenv(command.PrivateKeyEnv))
	}

	return cfg
}
