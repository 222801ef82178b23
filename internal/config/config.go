// Package config provides configuration management for dentrack.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the dentrack configuration.
type Config struct {
	Dentrack DentrackConfig `yaml:"dentrack"`
}

// DentrackConfig contains the main settings.
type DentrackConfig struct {
	// DataDir is the directory holding the four relation CSV files.
	DataDir string `yaml:"data_dir"`

	// Rank is the den's rank, used to pick the seed catalog on init.
	Rank string `yaml:"rank"`

	// MinElectives is how many elective adventures must be complete for
	// rank eligibility.
	MinElectives int `yaml:"min_electives"`

	// DenName appears in report headings.
	DenName string `yaml:"den_name"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Dentrack: DentrackConfig{
			DataDir:      "tracker_data",
			Rank:         "lion",
			MinElectives: 2,
		},
	}
}

// Load loads configuration from a file, layered over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if config.Dentrack.MinElectives < 0 {
		return nil, fmt.Errorf("min_electives cannot be negative")
	}

	return config, nil
}

// Save saves the configuration to a file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfig searches for a configuration file from startPath upward.
func FindConfig(startPath string) (string, error) {
	candidates := []string{
		".dentrack/config.yaml",
		"dentrack.yaml",
		"dentrack.yml",
	}

	dir := startPath
	for {
		for _, candidate := range candidates {
			path := filepath.Join(dir, candidate)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no dentrack configuration found")
}

// LoadFromDir loads configuration discovered from the given directory,
// falling back to defaults when no config file exists.
func LoadFromDir(dir string) (*Config, error) {
	path, err := FindConfig(dir)
	if err != nil {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// DataPath returns the resolved data directory.
func (c *Config) DataPath(baseDir string) string {
	if filepath.IsAbs(c.Dentrack.DataDir) {
		return c.Dentrack.DataDir
	}
	return filepath.Join(baseDir, c.Dentrack.DataDir)
}
