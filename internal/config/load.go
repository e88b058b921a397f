package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"fortio.org/struct2env"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. STARCUBE_CUBE_SIZE.
const EnvPrefix = "STARCUBE_"

// Load loads configuration with priority: defaults < file < environment < flags.
// The result is validated.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./starcube.yaml",
		filepath.Join(ConfigDir(), "starcube.yaml"),
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
		return filepath.Join(home, "Library", "Application Support", "Starcube")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Starcube")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "starcube")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "starcube")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv overrides fields from STARCUBE_<SECTION>_<FIELD> variables.
func loadFromEnv(cfg *Config) error {
	if errs := struct2env.SetFromEnv(EnvPrefix, cfg); len(errs) > 0 {
		return fmt.Errorf("environment overrides: %w", multierr.Combine(errs...))
	}
	return nil
}
