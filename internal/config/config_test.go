package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numerals.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
format = "json"
to = "egyptian.Egyptian"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "arabic.Arabic", cfg.From)
	assert.Equal(t, "egyptian.Egyptian", cfg.To)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
format = "json"
log_level = "info"
`)
	t.Setenv("NUMERALS_FORMAT", "text")
	t.Setenv("NUMERALS_FROM", "roman.Standard")
	t.Setenv("NUMERALS_TO", "latin.Latin")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "roman.Standard", cfg.From)
	assert.Equal(t, "latin.Latin", cfg.To)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", `colour = "red"`, "unknown keys: colour"},
		{"malformed", `format = `, "load config"},
		{"bad format", `format = "xml"`, `invalid format "xml"`},
		{"bad system", `from = "mayan.Mayan"`, "unknown numeral system"},
		{"bad level", `log_level = "loud"`, `invalid log level "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLevel(t *testing.T) {
	level, err := Config{LogLevel: "debug"}.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = Default().Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
