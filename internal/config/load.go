package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable that points at a config file.
// It is consulted when --config is not given.
const EnvConfigPath = "TERRARIUM_CONFIG"

// Load builds the effective configuration from defaults, then the config
// file, then command-line flags, and validates the result.
//
// A path named by --config or TERRARIUM_CONFIG must exist. The search
// locations are optional.
func Load() (*Config, error) {
	cfg := Default()

	if path := resolveConfigPath(); path != "" {
		if err := loadFromFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// resolveConfigPath returns the --config path if set, otherwise whatever
// findConfigFile locates.
func resolveConfigPath() string {
	if path := ConfigPath(); path != "" {
		return path
	}
	return findConfigFile()
}

// findConfigFile returns the first config file that applies: the
// TERRARIUM_CONFIG path, ./terrarium.yaml, then config.yaml in ConfigDir.
// The environment path is returned even when missing so Load reports it.
func findConfigFile() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	for _, path := range []string{
		"terrarium.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
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
		return filepath.Join(home, "Library", "Application Support", "Terrarium")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Terrarium")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "terrarium")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "terrarium")
	}
}

// loadFromFile decodes a YAML file over cfg. Keys the file omits keep their
// current values; unknown keys are an error so typos do not pass silently.
// An empty file changes nothing.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
