// Package config resolves wordsim settings from an optional project config
// file. Two formats are supported: .wordsim.kdl (preferred) and
// wordsim.toml. CLI flags override file values; file values override the
// built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// File names probed by Load, in priority order.
const (
	KDLFileName  = ".wordsim.kdl"
	TOMLFileName = "wordsim.toml"
)

type Config struct {
	Compare Compare
	Watch   Watch
}

// Compare holds the settings of a single comparison run.
type Compare struct {
	// MinMatch is the minimum similarity to report, as a percentage in
	// [0, 100]. Divided by 100 before filtering.
	MinMatch float64

	// Workers bounds the comparison worker pool; 0 means one per CPU.
	Workers int

	// Algorithm names the similarity algorithm (see internal/matrix).
	Algorithm string

	// Stem enables Porter2 stemming during normalization.
	Stem bool

	// StreamThreshold is the word count above which the CLI streams
	// filtered pairs row by row instead of materializing the full matrix.
	// 0 disables streaming.
	StreamThreshold int
}

type Watch struct {
	// DebounceMs is how long to wait after the last input-file event
	// before recomputing.
	DebounceMs int
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Compare: Compare{
			MinMatch:        80,
			Workers:         0,
			Algorithm:       "levenshtein",
			Stem:            false,
			StreamThreshold: 10_000,
		},
		Watch: Watch{
			DebounceMs: 250,
		},
	}
}

// Load resolves configuration from dir. A missing config file is not an
// error; defaults apply. A present but unparsable or invalid file is.
func Load(dir string) (*Config, error) {
	kdlPath := filepath.Join(dir, KDLFileName)
	if _, err := os.Stat(kdlPath); err == nil {
		return loadAndValidate(kdlPath, loadKDL)
	}

	tomlPath := filepath.Join(dir, TOMLFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		return loadAndValidate(tomlPath, loadTOML)
	}

	return Default(), nil
}

func loadAndValidate(path string, load func(string) (*Config, error)) (*Config, error) {
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings no run could make sense of. The min_match
// percentage is bounded here at the configuration surface; the reporter
// itself accepts any fraction (out-of-range fractions just admit all pairs
// or none).
func (c *Config) Validate() error {
	if c.Compare.MinMatch < 0 || c.Compare.MinMatch > 100 {
		return fmt.Errorf("min_match must be a percentage in [0, 100], got %v", c.Compare.MinMatch)
	}
	if c.Compare.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", c.Compare.Workers)
	}
	if c.Compare.StreamThreshold < 0 {
		return fmt.Errorf("stream_threshold must be >= 0, got %d", c.Compare.StreamThreshold)
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch debounce_ms must be >= 0, got %d", c.Watch.DebounceMs)
	}
	return nil
}
