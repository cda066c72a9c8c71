package build

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egoavara/cargo-i18n/internal/crate"
	"github.com/egoavara/cargo-i18n/internal/i18n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func newCrate(t *testing.T, config string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "Cargo.toml"), "[package]\nname = \"app\"\nversion = \"1.2.3\"\n")
	writeFile(t, filepath.Join(dir, "i18n.toml"), config)
	return dir
}

func newPreflight(out *bytes.Buffer, installed ...string) *Preflight {
	p := NewPreflight(out, i18n.Source())
	p.lookPath = func(file string) (string, error) {
		for _, name := range installed {
			if name == file {
				return "/usr/bin/" + file, nil
			}
		}
		return "", errors.New("not found")
	}
	return p
}

func TestPreflightAllToolsInstalled(t *testing.T) {
	dir := newCrate(t, "fallback_language = \"en\"\n[gettext]\ntarget_languages = [\"fr\", \"de\"]\noutput_dir = \"i18n\"\n")
	var out bytes.Buffer

	p := newPreflight(&out, "msgcat", "msginit", "msgmerge", "msgfmt", "xtr")
	err := p.Run(context.Background(), Request{Path: dir, ConfigFileName: "i18n.toml"})
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "Crate app 1.2.3")
	assert.Contains(t, report, "Fallback language: en")
	assert.Contains(t, report, "gettext: fr, de -> i18n")
	assert.Contains(t, report, "pot: "+filepath.Join("i18n", "pot")+", po: "+filepath.Join("i18n", "po")+", mo: "+filepath.Join("i18n", "mo"))
	assert.Contains(t, report, "Config file: "+filepath.Join(dir, "i18n.toml"))
	assert.Contains(t, report, "/usr/bin/xtr")
}

func TestPreflightMissingTools(t *testing.T) {
	dir := newCrate(t, "fallback_language = \"en\"\n[gettext]\noutput_dir = \"i18n\"\n")
	var out bytes.Buffer

	p := newPreflight(&out, "msgcat", "msginit", "msgmerge")
	err := p.Run(context.Background(), Request{Path: dir, ConfigFileName: "i18n.toml"})

	assert.ErrorIs(t, err, ErrMissingTools)
	assert.ErrorContains(t, err, "msgfmt, xtr")
	assert.Contains(t, out.String(), "not found in PATH")
	assert.Contains(t, out.String(), "(no target languages)")
}

func TestPreflightXtrDisabled(t *testing.T) {
	dir := newCrate(t, "fallback_language = \"en\"\n[gettext]\noutput_dir = \"i18n\"\nxtr = false\n")
	var out bytes.Buffer

	p := newPreflight(&out, gettextTools...)
	require.NoError(t, p.Run(context.Background(), Request{Path: dir, ConfigFileName: "i18n.toml"}))
	assert.NotContains(t, out.String(), "xtr")
}

func TestPreflightFluentNeedsNoTools(t *testing.T) {
	dir := newCrate(t, "fallback_language = \"en-US\"\n[fluent]\nassets_dir = \"i18n\"\n")
	var out bytes.Buffer

	p := newPreflight(&out)
	require.NoError(t, p.Run(context.Background(), Request{Path: dir, ConfigFileName: "i18n.toml"}))
	assert.Contains(t, out.String(), "fluent: i18n")
	assert.Contains(t, out.String(), "No external tools are required.")
}

func TestPreflightConfigNotFound(t *testing.T) {
	dir := newCrate(t, "fallback_language = \"en\"\n")
	var out bytes.Buffer

	p := newPreflight(&out)
	err := p.Run(context.Background(), Request{Path: dir, ConfigFileName: "other.toml"})
	assert.ErrorIs(t, err, crate.ErrConfigNotFound)
	assert.Empty(t, out.String())
}

func TestPreflightSubcrates(t *testing.T) {
	dir := newCrate(t, "fallback_language = \"en\"\nsubcrates = [\"lib\", \"lib\"]\n")
	writeFile(t, filepath.Join(dir, "lib", "Cargo.toml"), "[package]\nname = \"lib\"\nversion = \"0.1.0\"\n")
	writeFile(t, filepath.Join(dir, "lib", "i18n.toml"),
		"fallback_language = \"en\"\nsubcrates = [\"..\"]\n[gettext]\noutput_dir = \"i18n\"\nextract_to_parent = true\nxtr = false\n")
	var out bytes.Buffer

	p := newPreflight(&out, gettextTools...)
	require.NoError(t, p.Run(context.Background(), Request{Path: dir, ConfigFileName: "i18n.toml"}))

	report := out.String()
	assert.Contains(t, report, "Crate app 1.2.3")
	assert.Contains(t, report, "Crate lib 0.1.0")
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("Crate lib")))
}

func TestPreflightCanceled(t *testing.T) {
	dir := newCrate(t, "fallback_language = \"en\"\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := newPreflight(&bytes.Buffer{}).Run(ctx, Request{Path: dir})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerFunc(t *testing.T) {
	var got Request
	var r Runner = RunnerFunc(func(ctx context.Context, req Request) error {
		got = req
		return nil
	})

	require.NoError(t, r.Run(context.Background(), Request{Path: ".", ConfigFileName: "i18n.toml"}))
	assert.Equal(t, Request{Path: ".", ConfigFileName: "i18n.toml"}, got)
}
