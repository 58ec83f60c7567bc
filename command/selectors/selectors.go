package selectors

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xgr-network/facetkit/command"
	"github.com/xgr-network/facetkit/command/helper"
	"github.com/xgr-network/facetkit/selector"
	"github.com/xgr-network/facetkit/selector/source"
)

var params selectorsParams

func GetCommand() *cobra.Command {
	selectorsCmd := &cobra.Command{
		Use:     "selectors <contract>",
		Short:   "Prints the ABI encoded bytes4[] of a contract's function selectors",
		Args:    cobra.ExactArgs(1),
		PreRunE: runPreRun,
		RunE:    runCommand,
	}

	setFlags(selectorsCmd)

	return selectorsCmd
}

func setFlags(cmd *cobra.Command) {
	params = selectorsParams{}

	cmd.Flags().StringVar(
		&params.sourceMode,
		sourceFlag,
		source.ModeForge,
		fmt.Sprintf("where selectors come from (%s|%s|%s)", source.ModeForge, source.ModeArtifact, source.ModeAuto),
	)

	cmd.Flags().StringVar(
		&params.forgeBinary,
		forgeBinFlag,
		source.DefaultForgeBinary,
		"the forge executable",
	)

	cmd.Flags().StringVar(
		&params.root,
		rootFlag,
		"",
		"the Foundry project root (default current directory)",
	)

	cmd.Flags().StringVar(
		&params.artifactsDir,
		outFlag,
		source.DefaultArtifactsDir,
		"the artifacts directory, relative to the project root",
	)

	cmd.Flags().StringSliceVar(
		&params.exclude,
		excludeFlag,
		nil,
		"selectors to leave out of the encoding",
	)

	cmd.Flags().BoolVar(
		&params.noJSONFlag,
		noJSONFlagFlag,
		false,
		"do not pass --json to forge inspect (forge < 1.0)",
	)
}

func runPreRun(cmd *cobra.Command, args []string) error {
	params.contract = args[0]

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

	src, err := source.New(source.Config{
		Mode:         params.sourceMode,
		ForgeBinary:  params.forgeBinary,
		Root:         params.root,
		ArtifactsDir: params.artifactsDir,
		JSONFlag:     !params.noJSONFlag,
		Logger:       logger.Named("selectors"),
	})
	if err != nil {
		return err
	}

	res, err := selector.Build(cmd.Context(), src, params.contract, selector.BuildOptions{
		Exclude: params.excludeSelectors,
	})
	if err != nil {
		return fmt.Errorf("failed to encode selectors of %s: %w", params.contract, err)
	}

	logger.Debug("encoded selectors", "contract", params.contract, "count", len(res.Entries))

	return command.InitializeOutputter(cmd).WriteCommandResult(newSelectorsResult(res))
}
