// Package config loads CLI settings.
//
// Settings are layered: built-in defaults, then an optional TOML file,
// then NUMERALS_* environment variables. Command-line flags are applied
// last by the cli package.
package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/roach88/numerals/internal/registry"
)

// Config holds the settings shared by every command.
type Config struct {
	// Format is the output format, "text" or "json".
	Format string `env:"NUMERALS_FORMAT"`

	// From and To are the default source and target systems for convert.
	From string `env:"NUMERALS_FROM"`
	To   string `env:"NUMERALS_TO"`

	// LogLevel is a slog level name: debug, info, warn or error.
	LogLevel string `env:"NUMERALS_LOG_LEVEL"`
}

// fileConfig is the TOML key mapping.
type fileConfig struct {
	Format   string `toml:"format"`
	From     string `toml:"from"`
	To       string `toml:"to"`
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Format:   "text",
		From:     "arabic.Arabic",
		To:       "roman.Standard",
		LogLevel: "warn",
	}
}

// Load builds the configuration from defaults, the TOML file at path
// (skipped when path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile overlays the keys defined in a TOML file onto cfg.
func loadFile(path string, cfg *Config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if meta.IsDefined("format") {
		cfg.Format = strings.TrimSpace(raw.Format)
	}
	if meta.IsDefined("from") {
		cfg.From = strings.TrimSpace(raw.From)
	}
	if meta.IsDefined("to") {
		cfg.To = strings.TrimSpace(raw.To)
	}
	if meta.IsDefined("log_level") {
		cfg.LogLevel = strings.TrimSpace(raw.LogLevel)
	}
	return nil
}

// ParseEnv loads configuration from environment variables. Unset
// variables leave the target unchanged.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if !slices.Contains([]string{"text", "json"}, c.Format) {
		return fmt.Errorf("invalid format %q (must be text or json)", c.Format)
	}
	if _, err := registry.Lookup(c.From); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if _, err := registry.Lookup(c.To); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
