// Package config loads the jigsaw command configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/jigsaw/internal/logger"
)

// ErrInvalid indicates a configuration value that cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting of the jigsaw command.
type Config struct {
	// Input is the path of the tile file; "-" reads standard input.
	Input string `yaml:"input"`

	// Pattern is the path of the pattern file. Empty selects the sea monster.
	Pattern string `yaml:"pattern"`

	// Filled and Empty are the cell symbols used by Input and Pattern.
	Filled string `yaml:"filled"`
	Empty  string `yaml:"empty"`

	Search  SearchConfig  `yaml:"search"`
	Logging logger.Config `yaml:"logging"`
}

// SearchConfig holds assembly search settings.
type SearchConfig struct {
	// MaxStates bounds each search. 0 selects the automatic bound.
	MaxStates int `yaml:"max_states"`
}

// DefaultConfig returns a Config reading tiles from standard input.
func DefaultConfig() *Config {
	return &Config{
		Input:   "-",
		Pattern: "",
		Filled:  "#",
		Empty:   ".",
		Search:  SearchConfig{MaxStates: 0},
		Logging: logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file and applies environment
// overrides (JIGSAW_INPUT, JIGSAW_LOG_LEVEL, JIGSAW_MAX_STATES).
// A missing file yields the defaults; a malformed file yields the defaults
// and the parse error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return DefaultConfig(), fmt.Errorf("config: %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return config, err
		}
	}

	if input := os.Getenv("JIGSAW_INPUT"); input != "" {
		config.Input = input
	}
	if level := os.Getenv("JIGSAW_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if states := os.Getenv("JIGSAW_MAX_STATES"); states != "" {
		n, err := strconv.Atoi(states)
		if err != nil {
			return config, fmt.Errorf("%w: JIGSAW_MAX_STATES=%q", ErrInvalid, states)
		}
		config.Search.MaxStates = n
	}

	return config, config.Validate()
}

// Validate checks symbols and limits.
func (c *Config) Validate() error {
	if len(c.Filled) != 1 || len(c.Empty) != 1 || c.Filled == c.Empty {
		return fmt.Errorf("%w: symbols filled=%q empty=%q must be two distinct single bytes", ErrInvalid, c.Filled, c.Empty)
	}
	if c.Search.MaxStates < 0 {
		return fmt.Errorf("%w: search.max_states=%d", ErrInvalid, c.Search.MaxStates)
	}

	return nil
}

// FilledSymbol returns the filled cell symbol.
func (c *Config) FilledSymbol() byte { return c.Filled[0] }

// EmptySymbol returns the empty cell symbol.
func (c *Config) EmptySymbol() byte { return c.Empty[0] }
