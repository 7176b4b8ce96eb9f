package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
	return dir
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 80.0, cfg.Compare.MinMatch)
	assert.Equal(t, "levenshtein", cfg.Compare.Algorithm)
	assert.Equal(t, 10_000, cfg.Compare.StreamThreshold)
	assert.Equal(t, 250, cfg.Watch.DebounceMs)
}

func TestLoad_KDL(t *testing.T) {
	dir := writeConfig(t, KDLFileName, `
compare {
    min_match 65.5
    workers 4
    algorithm "jaro-winkler"
    stem true
    stream_threshold 500
}
watch {
    debounce_ms 100
}
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 65.5, cfg.Compare.MinMatch)
	assert.Equal(t, 4, cfg.Compare.Workers)
	assert.Equal(t, "jaro-winkler", cfg.Compare.Algorithm)
	assert.True(t, cfg.Compare.Stem)
	assert.Equal(t, 500, cfg.Compare.StreamThreshold)
	assert.Equal(t, 100, cfg.Watch.DebounceMs)
}

func TestLoad_KDLPartialKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, KDLFileName, `
compare {
    min_match 90
}
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 90.0, cfg.Compare.MinMatch)
	assert.Equal(t, "levenshtein", cfg.Compare.Algorithm)
	assert.Equal(t, 250, cfg.Watch.DebounceMs)
}

func TestLoad_KDLTemplateParses(t *testing.T) {
	dir := writeConfig(t, KDLFileName, Template)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_TOML(t *testing.T) {
	dir := writeConfig(t, TOMLFileName, `
[compare]
min_match = 75.0
workers = 2
algorithm = "damerau-levenshtein"
stem = true

[watch]
debounce_ms = 50
`)
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 75.0, cfg.Compare.MinMatch)
	assert.Equal(t, 2, cfg.Compare.Workers)
	assert.Equal(t, "damerau-levenshtein", cfg.Compare.Algorithm)
	assert.True(t, cfg.Compare.Stem)
	assert.Equal(t, 10_000, cfg.Compare.StreamThreshold) // untouched default
	assert.Equal(t, 50, cfg.Watch.DebounceMs)
}

func TestLoad_KDLTakesPriorityOverTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, KDLFileName),
		[]byte("compare {\n    min_match 11\n}\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TOMLFileName),
		[]byte("[compare]\nmin_match = 99.0\n"), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 11.0, cfg.Compare.MinMatch)
}

func TestLoad_MalformedFiles(t *testing.T) {
	t.Run("kdl", func(t *testing.T) {
		dir := writeConfig(t, KDLFileName, "compare {\n    min_match\n") // unclosed block
		_, err := Load(dir)
		assert.Error(t, err)
	})
	t.Run("toml", func(t *testing.T) {
		dir := writeConfig(t, TOMLFileName, "[compare\nmin_match = 75")
		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults valid", func(c *Config) {}, ""},
		{"min_match low", func(c *Config) { c.Compare.MinMatch = -1 }, "min_match"},
		{"min_match high", func(c *Config) { c.Compare.MinMatch = 101 }, "min_match"},
		{"negative workers", func(c *Config) { c.Compare.Workers = -2 }, "workers"},
		{"negative threshold", func(c *Config) { c.Compare.StreamThreshold = -1 }, "stream_threshold"},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMs = -5 }, "debounce_ms"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := writeConfig(t, KDLFileName, "compare {\n    min_match 120\n}\n")
	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_match")
}
