package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents glance configuration options
type Config struct {
	// MaxColumns is the upper bound on listing grid columns
	MaxColumns int `yaml:"max_columns"`

	// ColumnOverrides maps absolute directory paths to their own column cap,
	// letting dense trees such as /dev spread wider than the default
	ColumnOverrides map[string]int `yaml:"column_overrides"`

	// Width forces the assumed terminal width (0 = probe the terminal)
	Width int `yaml:"width"`

	// Git enables git status decoration inside work trees
	Git bool `yaml:"git"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		MaxColumns: 4,
		ColumnOverrides: map[string]int{
			"/dev":  6,
			"/proc": 5,
		},
		Width:    0, // Probe the terminal
		Git:      true,
		LogLevel: "info",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	// Read the file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	// Git uses a pointer so an explicit "git: false" survives the merge
	type yamlConfig struct {
		MaxColumns      int            `yaml:"max_columns"`
		ColumnOverrides map[string]int `yaml:"column_overrides"`
		Width           int            `yaml:"width"`
		Git             *bool          `yaml:"git"`
		LogLevel        string         `yaml:"log_level"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply non-zero values from file (merging with defaults)
	if yamlCfg.MaxColumns != 0 {
		cfg.MaxColumns = yamlCfg.MaxColumns
	}
	// Per-directory overrides from the file land on top of the built-in ones
	for dir, columns := range yamlCfg.ColumnOverrides {
		cfg.ColumnOverrides[dir] = columns
	}
	if yamlCfg.Width != 0 {
		cfg.Width = yamlCfg.Width
	}
	if yamlCfg.Git != nil {
		cfg.Git = *yamlCfg.Git
	}
	if yamlCfg.LogLevel != "" {
		cfg.LogLevel = yamlCfg.LogLevel
	}

	return cfg, nil
}

// LoadConfigFromHome loads configuration from config.yaml in the glance
// config directory (~/.config/glance or $XDG_CONFIG_HOME/glance)
// If no config directory can be resolved or the file doesn't exist,
// returns default configuration without error
func LoadConfigFromHome() (*Config, error) {
	home := configHome()
	if home == "" {
		return DefaultConfig(), nil
	}
	return LoadConfig(filepath.Join(home, "config.yaml"))
}

// ColumnsFor returns the column cap for the given directory, which is
// the per-directory override when one matches the path exactly and the
// global maximum otherwise
func (c *Config) ColumnsFor(dir string) int {
	if columns, ok := c.ColumnOverrides[dir]; ok {
		return columns
	}
	return c.MaxColumns
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(width *int, git *bool) {
	if width != nil {
		c.Width = *width
	}
	if git != nil {
		c.Git = *git
	}
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	// Validate max_columns
	if c.MaxColumns < 1 {
		return fmt.Errorf("max_columns must be >= 1, got %d", c.MaxColumns)
	}

	// Validate column_overrides
	for dir, columns := range c.ColumnOverrides {
		if columns < 1 {
			return fmt.Errorf("column_overrides[%q] must be >= 1, got %d", dir, columns)
		}
	}

	// Width can be 0 (probe the terminal) or positive, negative is invalid
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}

	// Validate log_level
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	return nil
}
