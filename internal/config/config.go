// Package config loads the host configuration of the serialterm binary.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaud     = 115200
	DefaultHz       = 100
	DefaultLogLevel = "info"
)

// Config holds host settings (file + env overrides). Empty console fields
// fall back to the console defaults.
type Config struct {
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`

	Prompt    string `yaml:"prompt"`
	NoHelp    bool   `yaml:"no_help"`
	NoBuiltin bool   `yaml:"no_builtin"`
	NoPrompt  bool   `yaml:"no_prompt"`

	EEPROMPath string `yaml:"eeprom_path"`
	EEPROMSize uint32 `yaml:"eeprom_size"`

	LogLevel string `yaml:"log_level"`
	Hz       int    `yaml:"hz"`
	Mirror   bool   `yaml:"mirror"`
}

// Dir returns the default config directory (~/.config/serialterm).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".config", "serialterm"), nil
}

// Path returns the default config file path (~/.config/serialterm/config.yaml).
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// defaultConfigPath is used by Load when path is empty; tests may override.
var defaultConfigPath = Path

// Load reads config from an optional file and applies env overrides.
// SERIALTERM_PORT, SERIALTERM_BAUD and SERIALTERM_LOG_LEVEL override file
// values. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		var err error
		path, err = defaultConfigPath()
		if err != nil {
			return finish(cfg)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return finish(cfg)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finish(cfg)
}

func defaults() *Config {
	return &Config{
		Baud:     DefaultBaud,
		Hz:       DefaultHz,
		LogLevel: DefaultLogLevel,
	}
}

func finish(cfg *Config) (*Config, error) {
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}
	if cfg.Baud == 0 {
		cfg.Baud = DefaultBaud
	}
	if cfg.Hz == 0 {
		cfg.Hz = DefaultHz
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("SERIALTERM_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("SERIALTERM_BAUD"); v != "" {
		baud, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SERIALTERM_BAUD: %w", err)
		}
		cfg.Baud = baud
	}
	if v := os.Getenv("SERIALTERM_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return nil
}

// Validate rejects settings the host runner cannot use.
func (c *Config) Validate() error {
	if c.Baud < 0 {
		return fmt.Errorf("baud must not be negative, got %d", c.Baud)
	}
	if c.Hz < 0 {
		return fmt.Errorf("hz must not be negative, got %d", c.Hz)
	}
	return nil
}
