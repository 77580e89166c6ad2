// Package config loads analyzer configuration from YAML or JSON
// files.
package config

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sqlward/sqlward/pkg/sqlparser"
	"github.com/sqlward/sqlward/pkg/types"
)

// Config holds the user-tunable analysis settings.
type Config struct {
	// Dialect pins every statement to one dialect. Empty means
	// auto-detect per statement.
	Dialect string `yaml:"dialect" json:"dialect"`

	// DisabledRules lists rule ids excluded from analysis.
	DisabledRules []string `yaml:"disabled_rules" json:"disabled_rules"`

	// MinSeverity is the lowest severity worth reporting. Empty
	// means report everything.
	MinSeverity types.Severity `yaml:"min_severity" json:"min_severity"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{}
}

// LoadFromFile reads a config file, trying YAML first and JSON as a
// fallback.
func LoadFromFile(filename string) (*Config, error) {
	slog.Debug("loading config", "filename", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", filename)
	}

	var cfg Config
	if yamlErr := yaml.Unmarshal(data, &cfg); yamlErr != nil {
		if jsonErr := json.Unmarshal(data, &cfg); jsonErr != nil {
			return nil, errors.Wrapf(yamlErr, "parse config %s", filename)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", filename)
	}
	slog.Debug("loaded config", "dialect", cfg.Dialect, "disabled_rules", len(cfg.DisabledRules))
	return &cfg, nil
}

// Validate checks the dialect name and the severity threshold.
func (c *Config) Validate() error {
	if _, err := sqlparser.ResolveDialect(c.Dialect); err != nil {
		return err
	}
	if c.MinSeverity != "" && !c.MinSeverity.Valid() {
		return errors.Errorf("invalid min_severity %q", c.MinSeverity)
	}
	return nil
}
