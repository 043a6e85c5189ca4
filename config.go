package linematch

import (
	"github.com/coregx/linematch/backtrack"
	"github.com/coregx/linematch/syntax"
)

// Config controls compilation and matching behavior.
//
// Example:
//
//	config := linematch.DefaultConfig()
//	config.EnablePrefilter = false
//	pat, err := linematch.CompileWithConfig(`(dog|cat|bird)`, config)
type Config struct {
	// MaxQuantifier caps the n/m values accepted inside {n}/{n,m} braces.
	// Default: 10,000
	MaxQuantifier int

	// MaxRecursionDepth limits how deep the backtracking matcher may
	// recurse while evaluating a single line.
	// Default: 10,000
	MaxRecursionDepth int

	// EnablePrefilter enables the Aho-Corasick literal fast-reject for
	// alternations whose branches are all flat literals.
	// Default: true
	EnablePrefilter bool
}

// DefaultConfig returns a configuration with sensible defaults.
//
// Example:
//
//	config := linematch.DefaultConfig()
//	config.MaxQuantifier = 1000 // tighter bound for untrusted patterns
func DefaultConfig() Config {
	return Config{
		MaxQuantifier:     10_000,
		MaxRecursionDepth: 10_000,
		EnablePrefilter:   true,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxQuantifier: 1 to 1,000,000
//   - MaxRecursionDepth: 10 to 1,000,000
func (c Config) Validate() error {
	if c.MaxQuantifier < 1 || c.MaxQuantifier > 1_000_000 {
		return &ConfigError{
			Field:   "MaxQuantifier",
			Message: "must be between 1 and 1,000,000",
		}
	}
	if c.MaxRecursionDepth < 10 || c.MaxRecursionDepth > 1_000_000 {
		return &ConfigError{
			Field:   "MaxRecursionDepth",
			Message: "must be between 10 and 1,000,000",
		}
	}
	return nil
}

func (c Config) syntaxLimits() syntax.Limits {
	return syntax.Limits{
		MaxQuantifier:   c.MaxQuantifier,
		EnablePrefilter: c.EnablePrefilter,
	}
}

func (c Config) backtrackLimits() backtrack.Limits {
	return backtrack.Limits{MaxRecursionDepth: c.MaxRecursionDepth}
}
