package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/xgr-network/facetkit/selector"
)

const (
	ModeForge    = "forge"
	ModeArtifact = "artifact"
	ModeAuto     = "auto"
)

func ValidateMode(mode string) error {
	switch mode {
	case "", ModeForge, ModeArtifact, ModeAuto:
		return nil
	default:
		return fmt.Errorf("invalid source mode %q (allowed: %s|%s|%s)", mode, ModeForge, ModeArtifact, ModeAuto)
	}
}

// Config selects and configures a selector source
type Config struct {
	Mode         string
	ForgeBinary  string
	Root         string
	ArtifactsDir string
	JSONFlag     bool
	Logger       hclog.Logger
}

// New builds the source for cfg.Mode. An empty mode means forge.
func New(cfg Config) (selector.Source, error) {
	if err := ValidateMode(cfg.Mode); err != nil {
		return nil, err
	}

	logger := loggerOrNull(cfg.Logger)

	forge := &Forge{
		Binary:   cfg.ForgeBinary,
		Root:     cfg.Root,
		JSONFlag: cfg.JSONFlag,
		Logger:   logger.Named("forge"),
	}

	artifact := &Artifact{
		Root:   cfg.Root,
		Out:    cfg.ArtifactsDir,
		Logger: logger.Named("artifact"),
	}

	switch cfg.Mode {
	case ModeArtifact:
		return artifact, nil
	case ModeAuto:
		return &Fallback{Primary: forge, Secondary: artifact, Logger: logger}, nil
	default:
		return forge, nil
	}
}

var _ selector.Source = (*Fallback)(nil)

// Fallback queries Secondary only when Primary is unavailable. Malformed output from
// Primary is returned as is.
type Fallback struct {
	Primary   selector.Source
	Secondary selector.Source
	Logger    hclog.Logger
}

func (f *Fallback) Selectors(ctx context.Context, contract string) ([]selector.RawEntry, error) {
	entries, err := f.Primary.Selectors(ctx, contract)
	if err == nil || !errors.Is(err, selector.ErrSourceUnavailable) {
		return entries, err
	}

	loggerOrNull(f.Logger).Warn("primary selector source unavailable, falling back", "contract", contract, "err", err)

	entries, fallbackErr := f.Secondary.Selectors(ctx, contract)
	if fallbackErr != nil {
		return nil, errors.Join(err, fallbackErr)
	}

	return entries, nil
}
