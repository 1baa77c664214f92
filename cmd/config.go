package cmd

import (
	"fmt"
	"os"

	"NavEngine/pkg/nav/api"

	"gopkg.in/yaml.v3"
)

// Config is the CLI configuration, loaded from nav.yaml and overridable by
// flags.
type Config struct {
	// Mode is the addressing scheme: "fragment" or "path".
	Mode string `yaml:"mode"`

	// Basename is stripped from paths and re-added to hrefs in path mode.
	Basename string `yaml:"basename"`

	// Workspace holds the durable record, the transition log and CLI logs.
	Workspace string `yaml:"workspace"`

	// StartPath seeds the simulated host's initial entry.
	StartPath string `yaml:"start_path"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Mode:      string(api.ModeFragment),
		Workspace: "workspace",
		StartPath: "/",
	}
}

// LoadConfig reads path as yaml over the defaults. A missing file is not an
// error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Workspace == "" {
		cfg.Workspace = DefaultConfig().Workspace
	}
	if cfg.StartPath == "" {
		cfg.StartPath = "/"
	}
	return cfg, nil
}

// NavMode maps the config mode string to an api.Mode, defaulting to fragment
// addressing.
func (c Config) NavMode() api.Mode {
	if c.Mode == string(api.ModePath) {
		return api.ModePath
	}
	return api.ModeFragment
}
