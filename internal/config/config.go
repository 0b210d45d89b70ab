// Package config holds runtime configuration: defaults, optional config
// file, environment overrides, and validation. The store directory
// resolution order is NAMING_PATH, then the config file, then a fixed
// per-user data directory.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// AppName is used for config and data directory names.
const AppName = "naming"

// EnvStorePath is the environment variable overriding the store directory.
const EnvStorePath = "NAMING_PATH"

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [Load] and then
// optionally mutated by CLI flag overrides before being passed (by
// pointer) to the packages that need it.
type Config struct {
	// StoreDir is where the JSON driver persists convention state.
	StoreDir string

	// Verbose enables debug logging.
	Verbose bool

	// ColorMode controls ANSI colors in CLI output.
	ColorMode ColorMode
}

// DefaultStoreDir returns the per-user fallback store directory
// (~/.local/share/naming).
func DefaultStoreDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", AppName), nil
}

// configDir returns the directory searched for config.toml
// (~/.config/naming, honoring XDG_CONFIG_HOME).
func configDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Load builds a Config from defaults, the optional config file, and
// environment variables. A missing config file is fine; a malformed one
// is an error.
func Load() (*Config, error) {
	defStore, err := DefaultStoreDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetDefault("store_dir", defStore)
	v.SetDefault("color", string(ColorAuto))
	v.SetDefault("verbose", false)

	if dir, err := configDir(); err == nil {
		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	// NAMING_PATH beats the config file for the store directory.
	// NAMING_COLOR and NAMING_VERBOSE follow the prefix convention.
	v.SetEnvPrefix("NAMING")
	if err := v.BindEnv("store_dir", EnvStorePath); err != nil {
		return nil, err
	}
	if err := v.BindEnv("color"); err != nil {
		return nil, err
	}
	if err := v.BindEnv("verbose"); err != nil {
		return nil, err
	}

	cfg := &Config{
		StoreDir:  v.GetString("store_dir"),
		Verbose:   v.GetBool("verbose"),
		ColorMode: ColorMode(v.GetString("color")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that enum fields hold valid values and that the store
// directory is set.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", c.ColorMode)
	}
	if c.StoreDir == "" {
		return errors.New("store directory must not be empty")
	}
	return nil
}
