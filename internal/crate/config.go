package crate

import (
	"fmt"
	"path/filepath"

	"golang.org/x/text/language"
)

// DefaultConfigFileName is the name of the localization config in a crate root.
const DefaultConfigFileName = "i18n.toml"

// Config is the localization config of a crate (i18n.toml)
type Config struct {
	FallbackLanguage string         `toml:"fallback_language"`
	Subcrates        []string       `toml:"subcrates"`
	Gettext          *GettextConfig `toml:"gettext"`
	Fluent           *FluentConfig  `toml:"fluent"`
}

// GettextConfig configures the gettext localization system
type GettextConfig struct {
	TargetLanguages           []string `toml:"target_languages"`
	OutputDir                 string   `toml:"output_dir"`
	PotDir                    string   `toml:"pot_dir"` // default: <output_dir>/pot
	PoDir                     string   `toml:"po_dir"`  // default: <output_dir>/po
	MoDir                     string   `toml:"mo_dir"`  // default: <output_dir>/mo
	ExtractToParent           bool     `toml:"extract_to_parent"`
	CollateExtractedSubcrates bool     `toml:"collate_extracted_subcrates"`
	Xtr                       *bool    `toml:"xtr"` // default: true
	CopyrightHolder           string   `toml:"copyright_holder"`
	MsgidBugsAddress          string   `toml:"msgid_bugs_address"`
	UseFuzzy                  bool     `toml:"use_fuzzy"`
}

// FluentConfig configures the fluent localization system
type FluentConfig struct {
	AssetsDir string `toml:"assets_dir"`
}

// UseXtr reports whether strings are extracted with the xtr tool.
func (g *GettextConfig) UseXtr() bool {
	return g.Xtr == nil || *g.Xtr
}

// PotPath returns the directory for extracted .pot templates.
func (g *GettextConfig) PotPath() string {
	return dirOr(g.PotDir, g.OutputDir, "pot")
}

// PoPath returns the directory for per-language .po files.
func (g *GettextConfig) PoPath() string {
	return dirOr(g.PoDir, g.OutputDir, "po")
}

// MoPath returns the directory for compiled .mo files.
func (g *GettextConfig) MoPath() string {
	return dirOr(g.MoDir, g.OutputDir, "mo")
}

func dirOr(dir, outputDir, sub string) string {
	if dir != "" {
		return dir
	}
	return filepath.Join(outputDir, sub)
}

// validate checks the rules that do not depend on the crate hierarchy.
func (c *Config) validate() error {
	if c.FallbackLanguage == "" {
		return fmt.Errorf("%w: fallback_language is required", ErrInvalidConfig)
	}
	if _, err := language.Parse(c.FallbackLanguage); err != nil {
		return fmt.Errorf("%w: fallback_language %q: %v", ErrInvalidConfig, c.FallbackLanguage, err)
	}

	if g := c.Gettext; g != nil {
		if g.OutputDir == "" {
			return fmt.Errorf("%w: gettext.output_dir is required", ErrInvalidConfig)
		}
		for _, lang := range g.TargetLanguages {
			if _, err := language.Parse(lang); err != nil {
				return fmt.Errorf("%w: gettext.target_languages %q: %v", ErrInvalidConfig, lang, err)
			}
		}
	}

	if f := c.Fluent; f != nil && f.AssetsDir == "" {
		return fmt.Errorf("%w: fluent.assets_dir is required", ErrInvalidConfig)
	}

	return nil
}
