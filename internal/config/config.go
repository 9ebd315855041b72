// Package config loads blackjack settings from an HCL file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultFile is the config file read when none is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete blackjack configuration
type Config struct {
	Table   *TableSettings   `hcl:"table,block"`
	Log     *LogSettings     `hcl:"log,block"`
	History *HistorySettings `hcl:"history,block"`
	UI      *UISettings      `hcl:"ui,block"`
}

// TableSettings contains game settings
type TableSettings struct {
	StartingChips int   `hcl:"starting_chips,optional"`
	Seed          int64 `hcl:"seed,optional"`
}

// LogSettings contains debug log settings
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// HistorySettings controls the session record written at exit
type HistorySettings struct {
	Enabled bool   `hcl:"enabled,optional"`
	File    string `hcl:"file,optional"`
}

// UISettings contains console settings
type UISettings struct {
	Color        *bool  `hcl:"color,optional"`
	HiddenCard   string `hcl:"hidden_card,optional"`
	InputHistory string `hcl:"input_history,optional"`
}

// Default returns the default configuration
func Default() *Config {
	color := true
	return &Config{
		Table: &TableSettings{
			StartingChips: 100,
		},
		Log: &LogSettings{
			Level: "info",
			File:  "blackjack.log",
		},
		History: &HistorySettings{
			Enabled: false,
			File:    "blackjack-history.toml",
		},
		UI: &UISettings{
			Color:      &color,
			HiddenCard: "<card hidden>",
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; blocks and fields left out of the file keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults(Default())
	return &cfg, nil
}

func (c *Config) applyDefaults(defaults *Config) {
	if c.Table == nil {
		c.Table = defaults.Table
	}
	if c.Log == nil {
		c.Log = defaults.Log
	}
	if c.History == nil {
		c.History = defaults.History
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}

	if c.Table.StartingChips == 0 {
		c.Table.StartingChips = defaults.Table.StartingChips
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = defaults.Log.File
	}
	if c.History.File == "" {
		c.History.File = defaults.History.File
	}
	if c.UI.Color == nil {
		c.UI.Color = defaults.UI.Color
	}
	if c.UI.HiddenCard == "" {
		c.UI.HiddenCard = defaults.UI.HiddenCard
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Table.StartingChips <= 0 {
		return fmt.Errorf("starting chips must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.History.Enabled && c.History.File == "" {
		return fmt.Errorf("history file is required when history is enabled")
	}

	return nil
}

// ColorEnabled reports whether console output should be styled
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}
