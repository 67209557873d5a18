// Package config loads palettekit CLI configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/dshills/palettekit/internal/palette"
)

// Config holds CLI defaults. Flags override config values.
type Config struct {
	// DefaultFormat is the codec name used when a target path's
	// extension is ambiguous or missing.
	DefaultFormat string `toml:"default_format"`

	// SortOrder is the order used by the sort command when no -order
	// flag is given: "brightness", "hue", or "value".
	SortOrder string `toml:"sort_order"`

	// LogLevel is the minimum log level: debug, info, warn, error.
	LogLevel string `toml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultFormat: "json",
		SortOrder:     "hue",
		LogLevel:      "info",
	}
}

// Load reads configuration from path, over the defaults. An empty path
// falls back to the user config file if one exists; a missing explicit
// path is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = userConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting names a known value.
func (c Config) Validate() error {
	if _, err := palette.ParseSortOrder(c.SortOrder); err != nil {
		return err
	}
	if _, err := palette.CodecByName(c.DefaultFormat); err != nil {
		return err
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// userConfigPath returns the per-user config file location, or "" when
// the user config directory cannot be determined.
func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "palettekit", "config.toml")
}
