package config

import (
	"os"
	"path/filepath"
)

var (
	homeDir string
)

func init() {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		homeDir = "~"
	}
}

// Dir returns the cargo-i18n config directory path
// ~/.config/cargo-i18n/
func Dir() string {
	return filepath.Join(homeDir, ".config", "cargo-i18n")
}

// Path returns the config.json file path
// ~/.config/cargo-i18n/config.json
func Path() string {
	return filepath.Join(Dir(), "config.json")
}
