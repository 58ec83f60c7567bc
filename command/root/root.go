package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xgr-network/facetkit/command/bigblocks"
	"github.com/xgr-network/facetkit/command/helper"
	"github.com/xgr-network/facetkit/command/selectors"
	"github.com/xgr-network/facetkit/command/version"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:           "facetkit",
			Short:         "facetkit bundles the diamond deployment helpers for Hyperliquid",
			SilenceErrors: true,
			SilenceUsage:  true,
		},
	}

	helper.RegisterJSONOutputFlag(rootCommand.baseCmd)
	helper.RegisterLogLevelFlag(rootCommand.baseCmd)
	helper.RegisterConfigFlag(rootCommand.baseCmd)

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		selectors.GetCommand(),
		bigblocks.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
