package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides are settings that may be supplied through the environment.
type EnvOverrides struct {
	ConfigDir string `env:"WEALTHPATH_CONFIG_DIR"`
	DataDir   string `env:"WEALTHPATH_DATA_DIR"`
	Format    string `env:"WEALTHPATH_FORMAT"`
	Debug     bool   `env:"WEALTHPATH_DEBUG"`
	NoHistory bool   `env:"WEALTHPATH_NO_HISTORY"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv reads the WEALTHPATH_* variables.
func LoadEnv() (EnvOverrides, error) {
	var e EnvOverrides
	if err := ParseEnv(&e); err != nil {
		return EnvOverrides{}, err
	}
	return e, nil
}

// Apply overlays the environment onto settings loaded from disk.
func (e EnvOverrides) Apply(s *Settings) {
	if e.Format != "" {
		s.Output.Format = e.Format
	}
	if e.NoHistory {
		s.History.Enabled = false
	}
}
