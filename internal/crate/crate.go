package crate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFile is the cargo manifest filename
const ManifestFile = "Cargo.toml"

var (
	// ErrConfigNotFound is returned when the crate has no localization config.
	ErrConfigNotFound = errors.New("localization config not found")
	// ErrInvalidConfig is returned when the localization config breaks a rule.
	ErrInvalidConfig = errors.New("invalid localization config")
)

// Crate is a cargo crate together with its localization config
type Crate struct {
	Name       string
	Version    string
	Path       string
	ConfigFile string // path of the config file, relative to Path
	Config     *Config
	Parent     *Crate
}

type manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version any    `toml:"version"` // string, or {workspace = true}
	} `toml:"package"`
}

// Open reads the crate at path. The config file is looked up relative to path.
// parent is nil for the top-level crate.
func Open(path, configFileName string, parent *Crate) (*Crate, error) {
	if configFileName == "" {
		configFileName = DefaultConfigFileName
	}

	m, err := readManifest(filepath.Join(path, ManifestFile))
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(path, configFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, configPath, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}
	if cfg.Gettext != nil && cfg.Gettext.ExtractToParent && parent == nil {
		return nil, fmt.Errorf("%s: %w: gettext.extract_to_parent is set but crate %q has no parent",
			configPath, ErrInvalidConfig, m.Package.Name)
	}

	version, _ := m.Package.Version.(string)
	return &Crate{
		Name:       m.Package.Name,
		Version:    version,
		Path:       path,
		ConfigFile: configFileName,
		Config:     &cfg,
		Parent:     parent,
	}, nil
}

func readManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("crate manifest not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read crate manifest: %w", err)
	}

	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse crate manifest %s: %w", path, err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("crate manifest %s has no package name", path)
	}
	return &m, nil
}

// ConfigPath returns the full path of the crate's config file.
func (c *Crate) ConfigPath() string {
	return filepath.Join(c.Path, c.ConfigFile)
}

// Subcrates opens the subcrates listed in the config, relative to the crate path.
// They use the same config file name as their parent.
func (c *Crate) Subcrates() ([]*Crate, error) {
	subcrates := make([]*Crate, 0, len(c.Config.Subcrates))
	for _, sub := range c.Config.Subcrates {
		child, err := Open(filepath.Join(c.Path, sub), c.ConfigFile, c)
		if err != nil {
			return nil, fmt.Errorf("subcrate %s of %s: %w", sub, c.Name, err)
		}
		subcrates = append(subcrates, child)
	}
	return subcrates, nil
}

