package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/valuation/market"
)

// Config represents a valuation run configuration
type Config struct {
	// Snapshot is the path of the market snapshot document.
	Snapshot string `json:"snapshot" yaml:"snapshot"`

	// FixingsDB is the path of the sqlite fixing store. Empty disables
	// historical fixing hydration.
	FixingsDB string `json:"fixings_db,omitempty" yaml:"fixings_db,omitempty"`

	// Dynamics selects how overtaken fixings are valued during a time
	// bump: "sticky_forward" or "sticky_spot".
	Dynamics string `json:"dynamics" yaml:"dynamics"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Snapshot == "" {
		return fmt.Errorf("snapshot is required")
	}
	if _, err := market.ParseSpotDynamics(c.Dynamics); err != nil {
		return fmt.Errorf("dynamics: %w", err)
	}
	return nil
}

// SpotDynamics returns the configured spot dynamics.
func (c *Config) SpotDynamics() (market.SpotDynamics, error) {
	return market.ParseSpotDynamics(c.Dynamics)
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Snapshot: "./marketdata.yaml",
		Dynamics: "sticky_forward",
	}
}
