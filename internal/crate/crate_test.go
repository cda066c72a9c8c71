package crate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `[package]
name = "example"
version = "0.1.0"
`

const testConfig = `fallback_language = "en"
subcrates = ["sub"]

[gettext]
target_languages = ["fr", "de-AT"]
output_dir = "i18n"
mo_dir = "res/mo"
xtr = false
`

func writeCrate(t *testing.T, dir, manifest, config string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0644))
	}
	if config != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultConfigFileName), []byte(config), 0644))
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	writeCrate(t, dir, testManifest, testConfig)

	c, err := Open(dir, "", nil)
	require.NoError(t, err)

	assert.Equal(t, "example", c.Name)
	assert.Equal(t, "0.1.0", c.Version)
	assert.Equal(t, filepath.Join(dir, "i18n.toml"), c.ConfigPath())
	require.NotNil(t, c.Config.Gettext)
	assert.Equal(t, []string{"fr", "de-AT"}, c.Config.Gettext.TargetLanguages)
	assert.Equal(t, filepath.Join("i18n", "pot"), c.Config.Gettext.PotPath())
	assert.Equal(t, filepath.Join("i18n", "po"), c.Config.Gettext.PoPath())
	assert.Equal(t, "res/mo", c.Config.Gettext.MoPath())
	assert.False(t, c.Config.Gettext.UseXtr())
	assert.Nil(t, c.Config.Fluent)
}

func TestOpenCustomConfigFileName(t *testing.T) {
	dir := t.TempDir()
	writeCrate(t, dir, testManifest, "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "custom.toml"), []byte(`fallback_language = "en"`), 0644))

	c, err := Open(dir, "custom.toml", nil)
	require.NoError(t, err)
	assert.Equal(t, "custom.toml", c.ConfigFile)
	assert.Nil(t, c.Config.Gettext)
}

func TestOpenWorkspaceVersion(t *testing.T) {
	dir := t.TempDir()
	writeCrate(t, dir, "[package]\nname = \"ws\"\nversion.workspace = true\n", `fallback_language = "en"`)

	c, err := Open(dir, "", nil)
	require.NoError(t, err)
	assert.Equal(t, "ws", c.Name)
	assert.Empty(t, c.Version)
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		config   string
		is       error
	}{
		{"missing config", testManifest, "", ErrConfigNotFound},
		{"missing fallback", testManifest, "subcrates = []\n", ErrInvalidConfig},
		{"bad fallback", testManifest, `fallback_language = "not a tag!"`, ErrInvalidConfig},
		{"bad toml", testManifest, `fallback_language = `, ErrInvalidConfig},
		{"missing output dir", testManifest, "fallback_language = \"en\"\n[gettext]\ntarget_languages = [\"fr\"]\n", ErrInvalidConfig},
		{"bad target", testManifest, "fallback_language = \"en\"\n[gettext]\noutput_dir = \"i18n\"\ntarget_languages = [\"??\"]\n", ErrInvalidConfig},
		{"missing assets dir", testManifest, "fallback_language = \"en\"\n[fluent]\n", ErrInvalidConfig},
		{"extract to parent", testManifest, "fallback_language = \"en\"\n[gettext]\noutput_dir = \"i18n\"\nextract_to_parent = true\n", ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeCrate(t, dir, tt.manifest, tt.config)

			_, err := Open(dir, "", nil)
			assert.ErrorIs(t, err, tt.is)
		})
	}
}

func TestOpenMissingManifest(t *testing.T) {
	dir := t.TempDir()
	writeCrate(t, dir, "", testConfig)

	_, err := Open(dir, "", nil)
	assert.ErrorContains(t, err, "crate manifest not found")
}

func TestSubcrates(t *testing.T) {
	dir := t.TempDir()
	writeCrate(t, dir, testManifest, testConfig)
	writeCrate(t, filepath.Join(dir, "sub"), "[package]\nname = \"sub\"\nversion = \"0.2.0\"\n",
		"fallback_language = \"en\"\n[gettext]\noutput_dir = \"i18n\"\nextract_to_parent = true\n")

	c, err := Open(dir, "", nil)
	require.NoError(t, err)

	subs, err := c.Subcrates()
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sub", subs[0].Name)
	assert.Same(t, c, subs[0].Parent)
}

func TestSubcratesMissing(t *testing.T) {
	dir := t.TempDir()
	writeCrate(t, dir, testManifest, testConfig)

	c, err := Open(dir, "", nil)
	require.NoError(t, err)

	_, err = c.Subcrates()
	assert.ErrorContains(t, err, "subcrate sub of example")
}
