package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load builds the configuration with priority: defaults < file < flags.
// The result is validated.
func Load(f *Flags) (*Config, error) {
	cfg := Default()

	path := ""
	if f != nil {
		path = f.Config
	}
	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := LoadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", path, err)
		}
	}

	f.Apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
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
		return filepath.Join(home, "Library", "Application Support", "FixedFunc")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "FixedFunc")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "fixedfunc")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "fixedfunc")
	}
}

// LoadFile merges the YAML file at path over cfg. Keys missing from the file
// keep their current values.
func LoadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
