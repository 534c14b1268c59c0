// Package config loads the YAML configuration file of the health CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ongvang00/HealthManagementSystem/internal/filelock"
	"github.com/ongvang00/HealthManagementSystem/internal/logger"
)

// SleepPolicy selects how hours of sleep are derived from start and end times.
type SleepPolicy string

const (
	// SleepPolicyLegacy counts whole hours, drops minutes and does not wrap
	// past midnight.
	SleepPolicyLegacy SleepPolicy = "legacy"
	// SleepPolicyElapsed counts elapsed minutes and wraps past midnight.
	SleepPolicyElapsed SleepPolicy = "elapsed"
)

// Config represents health CLI configuration options.
type Config struct {
	// DataDir holds the record files and the session registry.
	DataDir string `yaml:"data_dir,omitempty"`

	// SleepPolicy is legacy or elapsed.
	SleepPolicy SleepPolicy `yaml:"sleep_policy"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`

	// Color is auto, always or never.
	Color logger.ColorMode `yaml:"color"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		SleepPolicy: SleepPolicyLegacy,
		LogLevel:    "warn",
		Color:       logger.ColorAuto,
	}
}

// Load reads path and merges its non-zero values over the defaults. A
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	if strings.TrimSpace(file.DataDir) != "" {
		cfg.DataDir = strings.TrimSpace(file.DataDir)
	}
	if file.SleepPolicy != "" {
		cfg.SleepPolicy = SleepPolicy(strings.ToLower(strings.TrimSpace(string(file.SleepPolicy))))
	}
	if file.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(file.LogLevel))
	}
	if file.Color != "" {
		cfg.Color = logger.ColorMode(strings.ToLower(strings.TrimSpace(string(file.Color))))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch c.SleepPolicy {
	case SleepPolicyLegacy, SleepPolicyElapsed:
	default:
		return fmt.Errorf("sleep_policy must be %q or %q, got %q", SleepPolicyLegacy, SleepPolicyElapsed, c.SleepPolicy)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("log_level must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch c.Color {
	case logger.ColorAuto, logger.ColorAlways, logger.ColorNever:
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	return nil
}

// Save writes the configuration to path atomically.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := filelock.LockAndWrite(path, data, 0o644); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// MergeWithFlags applies CLI flag values over the file configuration. Nil
// pointers leave the configured value untouched.
func (c *Config) MergeWithFlags(dataDir, logLevel *string, noColor *bool) {
	if dataDir != nil && *dataDir != "" {
		c.DataDir = *dataDir
	}
	if logLevel != nil && *logLevel != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(*logLevel))
	}
	if noColor != nil && *noColor {
		c.Color = logger.ColorNever
	}
}
