// Package meta ties the compiled buffer, the backtracking matcher and the
// prefix prefilter together into a search engine.
//
// The engine coordinates three parts:
//   - Prefilter: literal-based candidate finding (optional)
//   - Matcher: memoised backtracking from a single start offset
//   - SearchState pool: per-search mutable data for concurrent use
//
// Offsets are tried from left to right. When the pattern has literal
// prefixes only the offsets where one of them occurs are tried, and a
// pattern that is one plain literal is answered by the prefilter alone.
// Patterns starting with ^ are tried at offset 0 only.
package meta

import "github.com/coregx/globre/backtrack"

// Config controls engine behavior and resource limits.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnablePrefilter = false // try every offset
//	engine, err := meta.CompileWithConfig(`[bc]at`, config)
type Config struct {
	// EnablePrefilter enables literal-prefix prefiltering.
	// Default: true
	EnablePrefilter bool

	// MaxPrefixLiterals limits the number of alternative prefixes extracted
	// for the prefilter.
	// Default: 256
	MaxPrefixLiterals int

	// MaxPrefixLen limits the length of each extracted prefix.
	// Default: 64
	MaxPrefixLen int

	// MaxVisitedBits bounds the memo bit vector of the matcher. Inputs whose
	// items*(len+1) exceeds it are searched without memoisation. 0 disables
	// memoisation entirely.
	// Default: 2M bits (256KB)
	MaxVisitedBits int
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:   true,
		MaxPrefixLiterals: 256,
		MaxPrefixLen:      64,
		MaxVisitedBits:    backtrack.DefaultMaxVisitedBits,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxPrefixLiterals: 1 to 1,000 (when the prefilter is enabled)
//   - MaxPrefixLen: 1 to 64 (when the prefilter is enabled)
//   - MaxVisitedBits: 0 to 1<<30
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MaxPrefixLiterals < 1 || c.MaxPrefixLiterals > 1_000 {
			return &ConfigError{
				Field:   "MaxPrefixLiterals",
				Message: "must be between 1 and 1,000",
			}
		}
		if c.MaxPrefixLen < 1 || c.MaxPrefixLen > 64 {
			return &ConfigError{
				Field:   "MaxPrefixLen",
				Message: "must be between 1 and 64",
			}
		}
	}

	if c.MaxVisitedBits < 0 || c.MaxVisitedBits > 1<<30 {
		return &ConfigError{
			Field:   "MaxVisitedBits",
			Message: "must be between 0 and 1<<30",
		}
	}

	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "globre: invalid config: " + e.Field + ": " + e.Message
}
