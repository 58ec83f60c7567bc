package source

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/xgr-network/facetkit/selector"
)

const DefaultForgeBinary = "forge"

var _ selector.Source = (*Forge)(nil)

// Forge asks `forge inspect <contract> methodIdentifiers` for the selectors of a contract
type Forge struct {
	// Binary is the forge executable, looked up in PATH when not absolute
	Binary string
	// Root is the Foundry project directory the command runs in
	Root string
	// JSONFlag appends --json, required by forge >= 1.0 to get JSON output
	JSONFlag bool

	Logger hclog.Logger
}

func (f *Forge) args(contract string) []string {
	args := []string{"inspect", contract, "methodIdentifiers"}
	if f.JSONFlag {
		args = append(args, "--json")
	}

	return args
}

func (f *Forge) Selectors(ctx context.Context, contract string) ([]selector.RawEntry, error) {
	binary := f.Binary
	if binary == "" {
		binary = DefaultForgeBinary
	}

	logger := loggerOrNull(f.Logger)

	cmd := exec.CommandContext(ctx, binary, f.args(contract)...)
	cmd.Dir = f.Root

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("running introspection tool", "cmd", cmd.String(), "dir", f.Root)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w: %s",
			selector.ErrSourceUnavailable,
			binary,
			strings.Join(f.args(contract), " "),
			err,
			strings.TrimSpace(stderr.String()),
		)
	}

	entries, err := parseIdentifiers(stdout.Bytes())
	if err != nil {
		return nil, fmt.Errorf("forge inspect %s: %w", contract, err)
	}

	logger.Debug("introspection tool returned selectors", "contract", contract, "count", len(entries))

	return entries, nil
}

func loggerOrNull(logger hclog.Logger) hclog.Logger {
	if logger == nil {
		return hclog.NewNullLogger()
	}

	return logger
}
