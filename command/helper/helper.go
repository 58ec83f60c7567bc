package helper

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/ryanuber/columnize"
	"github.com/spf13/cobra"

	"github.com/xgr-network/facetkit/command"
	"github.com/xgr-network/facetkit/config"
)

// RegisterJSONOutputFlag registers the --json output setting for all child commands
func RegisterJSONOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Bool(
		command.JSONOutputFlag,
		false,
		"get all outputs in json format (default false)",
	)
}

// RegisterLogLevelFlag registers the --log-level setting for all child commands
func RegisterLogLevelFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		command.LogLevelFlag,
		command.DefaultLogLevel,
		"the log level for console output (trace|debug|info|warn|error|off)",
	)
}

// RegisterConfigFlag registers the --config file setting for all child commands
func RegisterConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().String(
		command.ConfigFlag,
		"",
		"optional YAML config file",
	)
}

// NewLogger builds the command logger. It writes to stderr so stdout only carries results.
func NewLogger(cmd *cobra.Command) (hclog.Logger, error) {
	raw := command.DefaultLogLevel
	if flag := cmd.Flag(command.LogLevelFlag); flag != nil {
		raw = flag.Value.String()
	}

	level := hclog.LevelFromString(raw)
	if level == hclog.NoLevel {
		return nil, fmt.Errorf("invalid log level %q", raw)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "facetkit",
		Level:  level,
		Output: cmd.ErrOrStderr(),
	}), nil
}

// LoadConfig reads the file named by --config, if any
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := ""
	if flag := cmd.Flag(command.ConfigFlag); flag != nil {
		path = flag.Value.String()
	}

	return config.Load(path)
}

// FormatKV aligns "key|value" rows
func FormatKV(in []string) string {
	columnConf := columnize.DefaultConfig()
	columnConf.Empty = "<none>"
	columnConf.Glue = " = "

	return columnize.Format(in, columnConf)
}

// SplitList splits comma separated flag values and drops empty items
func SplitList(values []string) []string {
	out := make([]string, 0, len(values))

	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}

	return out
}
