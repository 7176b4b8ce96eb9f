package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// tomlFile mirrors Config with pointer fields so that only keys present in
// the file override defaults.
type tomlFile struct {
	Compare struct {
		MinMatch        *float64 `toml:"min_match"`
		Workers         *int     `toml:"workers"`
		Algorithm       *string  `toml:"algorithm"`
		Stem            *bool    `toml:"stem"`
		StreamThreshold *int     `toml:"stream_threshold"`
	} `toml:"compare"`
	Watch struct {
		DebounceMs *int `toml:"debounce_ms"`
	} `toml:"watch"`
}

func loadTOML(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var tf tomlFile
	if err := toml.Unmarshal(content, &tf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg := Default()
	if tf.Compare.MinMatch != nil {
		cfg.Compare.MinMatch = *tf.Compare.MinMatch
	}
	if tf.Compare.Workers != nil {
		cfg.Compare.Workers = *tf.Compare.Workers
	}
	if tf.Compare.Algorithm != nil {
		cfg.Compare.Algorithm = *tf.Compare.Algorithm
	}
	if tf.Compare.Stem != nil {
		cfg.Compare.Stem = *tf.Compare.Stem
	}
	if tf.Compare.StreamThreshold != nil {
		cfg.Compare.StreamThreshold = *tf.Compare.StreamThreshold
	}
	if tf.Watch.DebounceMs != nil {
		cfg.Watch.DebounceMs = *tf.Watch.DebounceMs
	}
	return cfg, nil
}
