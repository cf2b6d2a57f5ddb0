package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name under the ekstre config directory.
const FileName = "ekstre.yaml"

// Config represents the persisted ekstre.yaml preferences.
type Config struct {
	// SourceDir is the last-used input directory.
	SourceDir string `yaml:"source_dir,omitempty"`
	// OutputDir is the last-used output directory.
	OutputDir string `yaml:"output_dir,omitempty"`
	// HeaderRow is the 0-based row holding the column labels in
	// source statements.
	HeaderRow int `yaml:"header_row"`
}

// Default returns the configuration used when no file exists yet.
func Default() *Config {
	return &Config{HeaderRow: 4}
}

// Dir returns the ekstre config directory under the user config root.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "ekstre"), nil
}

// Load reads a config file from disk. A missing file yields the
// defaults, not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file, creating parent directories.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
