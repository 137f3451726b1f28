// Package config loads testkit CLI configuration from .testkit.yaml files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds CLI defaults. Flag values take precedence over file values.
type Config struct {
	// DefaultCardType is the network used by card generate when no
	// --type flag is given.
	DefaultCardType string `yaml:"defaultCardType,omitempty"`
	// Delimiter is the default CSV delimiter (single character).
	Delimiter string `yaml:"delimiter,omitempty"`
	// Encoding is the default text encoding for CSV files.
	Encoding string `yaml:"encoding,omitempty"`
	// NoHeaders disables header-row handling by default.
	NoHeaders *bool `yaml:"noHeaders,omitempty"`
	// NoColor disables colored output.
	NoColor *bool `yaml:"noColor,omitempty"`
}

// ConfigFilenames lists the file names searched, in order.
var ConfigFilenames = []string{
	".testkit.yaml",
	".testkit.yml",
	"testkit.yaml",
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultCardType: "visa",
		Delimiter:       ",",
		Encoding:        "utf-8",
	}
}

// GetNoHeaders returns the no-headers setting, defaulting to false.
func (c *Config) GetNoHeaders() bool {
	return getBool(c.NoHeaders, false)
}

// GetNoColor returns the no-color setting, defaulting to false.
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// Load reads configuration from path, or searches the current directory
// when path is empty. A missing config file is not an error; defaults are
// returned.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFromFile(path)
	}
	return FindAndLoad(".")
}

// FindAndLoad searches dir for a config file and loads the first found.
func FindAndLoad(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadFromFile(configPath)
		}
	}
	return DefaultConfig(), nil
}

func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Merge overlays other onto c, with other taking precedence. Boolean
// fields override only when explicitly set.
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c

	if other.DefaultCardType != "" {
		result.DefaultCardType = other.DefaultCardType
	}
	if other.Delimiter != "" {
		result.Delimiter = other.Delimiter
	}
	if other.Encoding != "" {
		result.Encoding = other.Encoding
	}
	if other.NoHeaders != nil {
		result.NoHeaders = other.NoHeaders
	}
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}

	return &result
}
