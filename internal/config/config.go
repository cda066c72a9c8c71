package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LocaleEnv overrides the configured locale when set.
const LocaleEnv = "CARGO_I18N_LOCALE"

// Config represents the cargo-i18n settings file
type Config struct {
	Locale string `json:"locale"` // "auto" or a language tag (e.g., "fr", "de-AT")
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Locale: "auto", // default: auto-detect system locale
	}
}

// Load reads the settings from Path(), then applies the environment override.
func Load() (*Config, error) {
	return LoadFile(Path())
}

// LoadFile reads the settings from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := NewConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("failed to read settings: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
		}
	}

	if env := strings.TrimSpace(os.Getenv(LocaleEnv)); env != "" {
		cfg.Locale = env
	}

	// Set default locale if empty
	if cfg.Locale == "" {
		cfg.Locale = "auto"
	}

	return cfg, nil
}
