package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional facetkit.yaml file. Command line flags win over it.
type Config struct {
	Forge       Forge       `yaml:"forge"`
	Hyperliquid Hyperliquid `yaml:"hyperliquid"`
}

type Forge struct {
	Source    string   `yaml:"source"`
	Binary    string   `yaml:"binary"`
	Root      string   `yaml:"root"`
	Artifacts string   `yaml:"artifacts"`
	JSONFlag  *bool    `yaml:"json_flag"`
	Exclude   []string `yaml:"exclude"`
}

type Hyperliquid struct {
	Network string        `yaml:"network"`
	APIURL  string        `yaml:"api_url"`
	Timeout time.Duration `yaml:"timeout"`
	KeyFile string        `yaml:"key_file"`
	Vault   Vault         `yaml:"vault"`
}

type Vault struct {
	Mount string `yaml:"mount"`
	Path  string `yaml:"path"`
	Field string `yaml:"field"`
}

// Load reads the file at path. An empty path yields the zero Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, nil
}
