// Package config loads codelens's on-disk configuration: the index
// location, additional ignore patterns, and default search behavior.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultIndexPath is the index directory used when neither a config file
// nor --index-path overrides it.
const DefaultIndexPath = ".codelens/index"

// DefaultLimit is the result count used when --limit is not given.
const DefaultLimit = 10

// Config is codelens's merged configuration: defaults overridden by
// whatever a config file sets.
type Config struct {
	IndexPath      string   `yaml:"index_path"`
	IgnorePatterns []string `yaml:"ignore"`
	DefaultLimit   int      `yaml:"default_limit"`
	DefaultMode    string   `yaml:"default_mode"`
}

// Default returns codelens's built-in defaults.
func Default() *Config {
	return &Config{
		IndexPath:    DefaultIndexPath,
		DefaultLimit: DefaultLimit,
		DefaultMode:  "fulltext",
	}
}

// Load reads a YAML config file at path, merging non-zero values over the
// defaults. A missing file is not an error: Load returns the defaults
// unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if fileCfg.IndexPath != "" {
		cfg.IndexPath = fileCfg.IndexPath
	}
	if len(fileCfg.IgnorePatterns) > 0 {
		cfg.IgnorePatterns = fileCfg.IgnorePatterns
	}
	if fileCfg.DefaultLimit != 0 {
		cfg.DefaultLimit = fileCfg.DefaultLimit
	}
	if fileCfg.DefaultMode != "" {
		cfg.DefaultMode = fileCfg.DefaultMode
	}

	return cfg, nil
}

// LoadFromDir loads ".codelens.yaml" from dir, falling back to defaults if
// it is absent.
func LoadFromDir(dir string) (*Config, error) {
	return Load(filepath.Join(dir, ".codelens.yaml"))
}
