package command

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// CommandResult is implemented by every command result
type CommandResult interface {
	GetOutput() string
}

// OutputFormatter writes a command result in the format the user asked for
type OutputFormatter interface {
	WriteCommandResult(result CommandResult) error
}

func shouldOutputJSON(cmd *cobra.Command) bool {
	flag := cmd.Flag(JSONOutputFlag)

	return flag != nil && flag.Changed && flag.Value.String() == "true"
}

// InitializeOutputter picks the JSON or the plain text formatter for cmd
func InitializeOutputter(cmd *cobra.Command) OutputFormatter {
	if shouldOutputJSON(cmd) {
		return &jsonOutput{w: cmd.OutOrStdout()}
	}

	return &cliOutput{w: cmd.OutOrStdout()}
}

type cliOutput struct {
	w io.Writer
}

func (c *cliOutput) WriteCommandResult(result CommandResult) error {
	_, err := fmt.Fprintln(c.w, result.GetOutput())

	return err
}

type jsonOutput struct {
	w io.Writer
}

func (j *jsonOutput) WriteCommandResult(result CommandResult) error {
	enc := json.NewEncoder(j.w)
	enc.SetIndent("", "    ")

	return enc.Encode(result)
}
