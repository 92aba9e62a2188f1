// Package config handles configuration file loading and parsing.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Default configuration values.
const (
	DefaultBaseDir      = "eclipse-css"
	DefaultFormat       = "plain"
	DefaultHistoryLimit = 20
	DefaultHistorySince = "0"
)

// ThemeNameEnv supplies the theme name when --name is not given.
// It mirrors the eclipse.svg.newThemeName build property.
const ThemeNameEnv = "ECLIPSE_SVG_NEW_THEME_NAME"

// Formats accepted for report output.
var Formats = []string{"plain", "json", "yaml"}

// Config represents the themegen configuration.
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	History  HistoryConfig  `toml:"history"`
}

// GenerateConfig holds defaults for the generate command.
type GenerateConfig struct {
	BaseDir string `toml:"base_dir"` // Relative to the working directory
	Format  string `toml:"format"`   // plain, json, yaml
}

// HistoryConfig controls the run history file.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`  // Empty = ~/.local/share/themegen/history.jsonl
	Limit   int    `toml:"limit"` // Default number of runs listed (0 = unlimited)
	Since   string `toml:"since"` // Default age filter for listing (0 = all time)
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Generate: GenerateConfig{
			BaseDir: DefaultBaseDir,
			Format:  DefaultFormat,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "",
			Limit:   DefaultHistoryLimit,
			Since:   DefaultHistorySince,
		},
	}
}

// ConfigPath returns the path to the config file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config.
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "themegen", "config.toml")
}

// DataPath returns the path to the data directory.
// Uses XDG_DATA_HOME if set, otherwise ~/.local/share.
func DataPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "themegen")
}

// HistoryPath returns the configured history file, or the default location.
func (c *Config) HistoryPath() string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(DataPath(), "history.jsonl")
}

// LoadConfig loads configuration from the specified path.
// If path is empty, uses the default config path.
// Returns default config if file doesn't exist.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	// Start with defaults
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if err := ValidateFormat(c.Generate.Format); err != nil {
		return err
	}
	if c.History.Limit < 0 {
		return fmt.Errorf("history limit must not be negative: %d", c.History.Limit)
	}
	return nil
}

// ValidateFormat checks that format is one of Formats.
func ValidateFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unknown format %q (available: plain, json, yaml)", format)
}

// Save writes the configuration to the specified path.
// Creates parent directories if needed.
func (c *Config) Save(path string) error {
	if path == "" {
		path = ConfigPath()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ThemeName resolves the theme name from the flag value or ThemeNameEnv.
func ThemeName(flag string) string {
	if flag != "" {
		return flag
	}
	return os.Getenv(ThemeNameEnv)
}
