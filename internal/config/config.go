// Package config loads tfview's optional CLI configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no explicit
// config path is given.
const DefaultFileName = ".tfview.yaml"

// Valid color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds CLI defaults. Every field can be overridden per invocation
// by a flag.
type Config struct {
	// OmitLogs is the default for render --omit-logs.
	OmitLogs bool `yaml:"omit_logs"`
	// Color selects styled output: auto, always, or never.
	Color string `yaml:"color"`
	// Fallback is the default message for errmsg when the payload yields
	// nothing. Empty means the library's own generic message.
	Fallback string `yaml:"fallback"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{Color: ColorAuto}
}

// Load reads and parses the configuration from a YAML file.
func Load(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Color == "" {
		cfg.Color = ColorAuto
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOptional loads the file at path, or DefaultFileName from the working
// directory when path is empty. A missing default file yields Default(),
// not an error; an explicitly requested file must exist.
func LoadOptional(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultFileName); err != nil {
		return Default(), nil
	}
	return Load(DefaultFileName)
}

// Validate checks field values.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	}
	return fmt.Errorf("invalid color mode %q (want auto, always, or never)", c.Color)
}
