// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	appName          = "taskline"
	configFile       = "config.toml"
	defaultStoreFile = "tasks.json"
)

// Config holds the full configuration for taskline. Command-line flags
// override whatever is loaded here.
type Config struct {
	// StoreFile is the path of the persisted task file.
	StoreFile string `toml:"store_file"`
	// NoColor disables the color cells in the task table.
	NoColor bool `toml:"no_color"`
	// Verbose enables debug logging to stderr.
	Verbose bool `toml:"verbose"`
}

// Dir returns the configuration directory, ~/.config/taskline.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// Load reads config.toml from the config directory, applying defaults
// first. A missing file yields the defaults.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		StoreFile: filepath.Join(dir, defaultStoreFile),
	}

	path := filepath.Join(dir, configFile)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}
