package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := LoadFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if cfg.Logging.LogFile != "" {
		logFile, err := homedir.Expand(cfg.Logging.LogFile)
		if err != nil {
			return nil, fmt.Errorf("log file %s: %w", cfg.Logging.LogFile, err)
		}
		cfg.Logging.LogFile = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile merges the file at path into cfg. Files ending in .toml are read
// as TOML, everything else as YAML, where lists in the file replace the
// defaults. A leading ~ in path is expanded.
func LoadFile(cfg *Config, path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", path, err)
	}
	path = expanded

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading config from %s: %w", path, err)
	}

	if isTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./minigolf.yaml",
		"./minigolf.toml",
		filepath.Join(ConfigDir(), "config.yaml"),
		filepath.Join(ConfigDir(), "config.toml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Minigolf")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Minigolf")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "minigolf")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "minigolf")
	}
}
