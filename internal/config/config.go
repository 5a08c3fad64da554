// Package config loads cubesolver.yaml, the optional configuration file the
// CLI reads before flags override it.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the CLI's one configurable surface beyond its flags: where
// the PDB cache lives, and the defaults flags fall back to when unset.
type Config struct {
	PDBDir            string `yaml:"pdb_dir"`
	DefaultScramble   int    `yaml:"default_scramble"`
	DefaultSeed       int64  `yaml:"default_seed"`
	DefaultMaxIter    int    `yaml:"default_max_iterations"`
	BuildPDBIfMissing bool   `yaml:"build_pdb_if_missing"`
}

// Defaults returns the configuration used when no cubesolver.yaml is present.
func Defaults() *Config {
	return &Config{
		PDBDir:            "./pdbcache",
		DefaultScramble:   25,
		DefaultSeed:       0,
		DefaultMaxIter:    50,
		BuildPDBIfMissing: true,
	}
}

// Load reads path and unmarshals it over a default Config. A missing file is
// not an error: Load returns the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, nil
}
