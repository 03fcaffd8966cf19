package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tally/internal/store"
)

// Config holds runtime settings shared by the TUI and the script runner.
type Config struct {
	Theme    string
	NoColor  bool
	LogFile  string
	IDScheme store.IDScheme
}

var themes = map[string]bool{"classic": true, "neon": true, "mono": true}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{Theme: "classic", IDScheme: store.Sequential}
}

// Load reads configuration from environment variables, falling back to
// defaults for unset values. Malformed values are errors.
func Load() (Config, error) {
	cfg := Default()

	if v := os.Getenv("TALLY_THEME"); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if v := os.Getenv("TALLY_NO_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("TALLY_NO_COLOR: %w", err)
		}
		cfg.NoColor = b
	}
	cfg.LogFile = os.Getenv("TALLY_LOG_FILE")
	if v := os.Getenv("TALLY_ID_SCHEME"); v != "" {
		s, err := store.ParseIDScheme(v)
		if err != nil {
			return cfg, fmt.Errorf("TALLY_ID_SCHEME: %w", err)
		}
		cfg.IDScheme = s
	}
	return cfg, cfg.Validate()
}

// Validate checks values that can also arrive from flags.
func (c Config) Validate() error {
	if !themes[c.Theme] {
		return fmt.Errorf("unknown theme %q (want classic, neon or mono)", c.Theme)
	}
	return nil
}
