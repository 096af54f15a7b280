// Package config provides configuration for the caret demo application.
//
// Configuration is loaded from a TOML file, then overlaid with CARET_*
// environment variables. A missing file is not an error; defaults apply.
// The Watcher reloads the file on change for live-tunable settings such as
// the page size.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CARET_"

// Config holds the application settings.
type Config struct {
	// PageSize is the number of lines a page-unit vertical move advances.
	PageSize int `toml:"page_size"`

	// CursorBlinkMs is the cursor blink interval in milliseconds.
	// Zero disables blinking.
	CursorBlinkMs int `toml:"cursor_blink_ms"`

	// HighlightColor is the selection highlight color as a hex string.
	HighlightColor string `toml:"highlight_color"`

	// LogLevel is the minimum log level: debug, info, warn, or error.
	LogLevel string `toml:"log_level"`

	// LogFile is where logs are written. Empty disables file logging.
	LogFile string `toml:"log_file"`

	// KeymapPath points to a JSON keymap file. Empty uses the defaults.
	KeymapPath string `toml:"keymap_path"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		PageSize:       30,
		CursorBlinkMs:  500,
		HighlightColor: "#30508c",
		LogLevel:       "info",
	}
}

// Load reads configuration from the given TOML file, applies environment
// overrides, and validates the result. A missing or empty path yields the
// defaults plus environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// File doesn't exist, not an error
		case err != nil:
			return cfg, fmt.Errorf("reading config file %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, &ParseError{Path: path, Err: err}
			}
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	if c.PageSize < 1 {
		return fmt.Errorf("%w: page_size must be at least 1, got %d", ErrValidationFailed, c.PageSize)
	}
	if c.CursorBlinkMs < 0 {
		return fmt.Errorf("%w: cursor_blink_ms must not be negative, got %d", ErrValidationFailed, c.CursorBlinkMs)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log_level %q", ErrValidationFailed, c.LogLevel)
	}
	if _, err := colorful.Hex(c.HighlightColor); err != nil {
		return fmt.Errorf("%w: highlight_color %q is not a hex color", ErrValidationFailed, c.HighlightColor)
	}
	return nil
}

// applyEnv overlays CARET_* environment variables onto the configuration.
// Unparseable numeric values are ignored.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvPrefix + "PAGE_SIZE"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.PageSize = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "CURSOR_BLINK_MS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.CursorBlinkMs = n
		}
	}
	if v, ok := os.LookupEnv(EnvPrefix + "HIGHLIGHT_COLOR"); ok {
		cfg.HighlightColor = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := os.LookupEnv(EnvPrefix + "KEYMAP"); ok {
		cfg.KeymapPath = v
	}
}
