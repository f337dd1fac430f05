/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ssargent/elmalev/pkg/codec"
)

// Config represents the elmalev configuration
type Config struct {
	LibraryDir string   `yaml:"library_dir"`
	WatchDir   string   `yaml:"watch_dir"`
	Codec      Codec    `yaml:"codec"`
	Defaults   Defaults `yaml:"defaults"`
	Logging    Logging  `yaml:"logging"`
}

// Codec contains level codec options
type Codec struct {
	// Integrity is "preserve" or "recompute"
	Integrity       string `yaml:"integrity"`
	VerifyIntegrity bool   `yaml:"verify_integrity"`
}

// Defaults contains the names given to newly created levels
type Defaults struct {
	LGR    string `yaml:"lgr"`
	Ground string `yaml:"ground"`
	Sky    string `yaml:"sky"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		LibraryDir: "./library",
		WatchDir:   "./levels",
		Codec: Codec{
			Integrity: "preserve",
		},
		Defaults: Defaults{
			LGR:    "default",
			Ground: "ground",
			Sky:    "sky",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate checks option values
func (c *Config) Validate() error {
	switch c.Codec.Integrity {
	case "", "preserve", "recompute":
	default:
		return fmt.Errorf("invalid codec.integrity %q: want preserve or recompute", c.Codec.Integrity)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	return nil
}

// CodecConfig converts the codec section into codec options
func (c *Config) CodecConfig() codec.CodecConfig {
	cc := codec.CodecConfig{VerifyIntegrity: c.Codec.VerifyIntegrity}
	if c.Codec.Integrity == "recompute" {
		cc.Integrity = codec.IntegrityRecompute
	}
	return cc
}

// NewLevel returns an empty level using the configured default names
func (c *Config) NewLevel() *codec.Level {
	l := codec.NewLevel()
	if c.Defaults.LGR != "" {
		l.LGR = c.Defaults.LGR
	}
	if c.Defaults.Ground != "" {
		l.Ground = c.Defaults.Ground
	}
	if c.Defaults.Sky != "" {
		l.Sky = c.Defaults.Sky
	}
	return l
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// BootstrapConfig writes a default configuration rooted at libraryDir
func BootstrapConfig(configPath string, libraryDir string) (*Config, error) {
	config := DefaultConfig()
	if libraryDir != "" {
		config.LibraryDir = libraryDir
	}

	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./elmalev.yaml"
	}

	// For Linux/macOS, use ~/.config/elmalev/config.yaml
	configDir := filepath.Join(homeDir, ".config", "elmalev")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
