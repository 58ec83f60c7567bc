package bigblocks

import (
	"github.com/spf13/cobra"

	"github.com/xgr-network/facetkit/command"
	"github.com/xgr-network/facetkit/command/helper"
	"github.com/xgr-network/facetkit/secrets"
	"github.com/xgr-network/facetkit/venue/hyperliquid"
)

var params bigBlocksParams

func GetCommand() *cobra.Command {
	bigBlocksCmd := &cobra.Command{
		Use:     "big-blocks",
		Short:   "Switches the Hyperliquid account between small and big HyperEVM blocks",
		Args:    cobra.NoArgs,
		PreRunE: runPreRun,
		RunE:    runCommand,
	}

	setFlags(bigBlocksCmd)

	return bigBlocksCmd
}

func setFlags(cmd *cobra.Command) {
	params = bigBlocksParams{}

	cmd.Flags().BoolVar(&params.enable, enableFlag, false, "use big blocks")
	cmd.Flags().BoolVar(&params.disable, disableFlag, false, "go back to small blocks")

	cmd.Flags().StringVar(
		&params.network,
		networkFlag,
		command.DefaultNetwork,
		"the Hyperliquid network (mainnet|testnet)",
	)

	cmd.Flags().StringVar(
		&params.apiURL,
		apiURLFlag,
		"",
		"override the API endpoint of the network",
	)

	cmd.Flags().DurationVar(
		&params.timeout,
		timeoutFlag,
		hyperliquid.DefaultTimeout,
		"the request timeout",
	)

	cmd.Flags().StringVar(
		&params.privateKey,
		privateKeyFlag,
		"",
		"the hex encoded account key (default $"+command.PrivateKeyEnv+")",
	)

	cmd.Flags().StringVar(
		&params.privateKeyFile,
		privateKeyFileFlag,
		"",
		"a file holding the hex encoded account key",
	)

	cmd.Flags().StringVar(
		&params.vaultPath,
		vaultPathFlag,
		"",
		"the Vault KV v2 path holding the account key (uses VAULT_ADDR and VAULT_TOKEN)",
	)

	cmd.Flags().StringVar(
		&params.vaultMount,
		vaultMountFlag,
		secrets.DefaultVaultMount,
		"the Vault KV v2 mount",
	)

	cmd.Flags().StringVar(
		&params.vaultField,
		vaultFieldFlag,
		secrets.DefaultVaultField,
		"the secret field holding the key",
	)

	cmd.MarkFlagsMutuallyExclusive(enableFlag, disableFlag)
	cmd.MarkFlagsOneRequired(enableFlag, disableFlag)
	cmd.MarkFlagsMutuallyExclusive(privateKeyFlag, privateKeyFileFlag, vaultPathFlag)
}

func runPreRun(cmd *cobra.Command, _ []string) error {
	cfg, err := helper.LoadConfig(cmd)
	if err != nil {
		return err
	}

	params.applyConfig(cmd, cfg)

	return params.validateFlags()
}

func runCommand(cmd *cobra.Command, _ []string) error {
	logger, err := helper.NewLogger(cmd)
	if err != nil {
		return err
	}

	key, err := secrets.LoadKey(cmd.Context(), params.keyConfig())
	if err != nil {
		return err
	}

	session, err := hyperliquid.NewSession(hyperliquid.Config{
		Network: params.network,
		APIURL:  params.apiURL,
		Key:     key,
		Timeout: params.timeout,
		Logger:  logger.Named("hyperliquid"),
	})
	if err != nil {
		return err
	}

	logger.Info("toggling big blocks", "address", session.Address(), "network", params.network, "enable", params.enable)

	resp, err := session.UseBigBlocks(cmd.Context(), params.enable)
	if err != nil {
		return err
	}

	return command.InitializeOutputter(cmd).WriteCommandResult(&BigBlocksResult{
		Address:        session.Address().Hex(),
		Network:        params.network,
		UsingBigBlocks: params.enable,
		Status:         resp.Status,
		Response:       string(resp.Response),
	})
}
