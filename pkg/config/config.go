// Package config holds the optimizer and code-generator configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls which passes run and how output is rendered.
type Config struct {
	Fold      bool `yaml:"fold"`       // constant folding pass
	Simplify  bool `yaml:"simplify"`   // algebraic simplification pass
	CSE       bool `yaml:"cse"`        // common-subexpression detection pass
	DeadCode  bool `yaml:"dead_code"`  // dead-code elimination pass
	MaxRounds int  `yaml:"max_rounds"` // optimization round limit
	Peephole  bool `yaml:"peephole"`   // peephole pass over emitted instructions
	Comments  bool `yaml:"comments"`   // per-instruction comments in rendered assembly
}

// DefaultMaxRounds bounds fixed-point iteration when no limit is configured.
const DefaultMaxRounds = 3

// Default returns the configuration with every pass enabled.
func Default() Config {
	return Config{
		Fold:      true,
		Simplify:  true,
		CSE:       true,
		DeadCode:  true,
		MaxRounds: DefaultMaxRounds,
		Peephole:  true,
		Comments:  true,
	}
}

// Load reads a YAML config file over the defaults. Fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.MaxRounds <= 0 {
		cfg.MaxRounds = DefaultMaxRounds
	}
	return cfg, nil
}
