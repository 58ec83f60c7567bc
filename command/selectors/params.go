package selectors

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xgr-network/facetkit/command/helper"
	"github.com/xgr-network/facetkit/config"
	"github.com/xgr-network/facetkit/selector"
	"github.com/xgr-network/facetkit/selector/source"
)

const (
	sourceFlag     = "source"
	forgeBinFlag   = "forge-bin"
	rootFlag       = "root"
	outFlag        = "out"
	excludeFlag    = "exclude"
	noJSONFlagFlag = "no-json-flag"
)

type selectorsParams struct {
	contract string

	sourceMode   string
	forgeBinary  string
	root         string
	artifactsDir string
	exclude      []string
	noJSONFlag   bool

	excludeSelectors []selector.Selector
}

// applyConfig fills every flag the user did not set from the config file
func (p *selectorsParams) applyConfig(cmd *cobra.Command, cfg *config.Config) {
	set := func(flag string, dst *string, value string) {
		if !cmd.Flags().Changed(flag) && value != "" {
			*dst = value
		}
	}

	set(sourceFlag, &p.sourceMode, cfg.Forge.Source)
	set(forgeBinFlag, &p.forgeBinary, cfg.Forge.Binary)
	set(rootFlag, &p.root, cfg.Forge.Root)
	set(outFlag, &p.artifactsDir, cfg.Forge.Artifacts)

	if !cmd.Flags().Changed(excludeFlag) && len(cfg.Forge.Exclude) > 0 {
		p.exclude = cfg.Forge.Exclude
	}

	if !cmd.Flags().Changed(noJSONFlagFlag) && cfg.Forge.JSONFlag != nil {
		p.noJSONFlag = !*cfg.Forge.JSONFlag
	}
}

func (p *selectorsParams) validateFlags() error {
	if err := source.ValidateMode(p.sourceMode); err != nil {
		return err
	}

	p.excludeSelectors = p.excludeSelectors[:0]

	for _, raw := range helper.SplitList(p.exclude) {
		sel, err := selector.ParseSelector(raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", excludeFlag, err)
		}

		p.excludeSelectors = append(p.excludeSelectors, sel)
	}

	return nil
}
