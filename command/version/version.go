package version

import (
	"github.com/spf13/cobra"

	"github.com/xgr-network/facetkit/command"
	"github.com/xgr-network/facetkit/versioning"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the current facetkit version",
		Args:  cobra.NoArgs,
		RunE:  runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) error {
	return command.InitializeOutputter(cmd).WriteCommandResult(&VersionResult{
		Version:   versioning.Version,
		Commit:    versioning.Commit,
		Branch:    versioning.Branch,
		BuildTime: versioning.BuildTime,
	})
}
