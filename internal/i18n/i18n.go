package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"text/template"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

// SourceLanguage is the language messages are written in.
var SourceLanguage = language.English

var (
	// ErrNoCatalog is returned by Select when no embedded catalog matches the requested locales.
	ErrNoCatalog = errors.New("no translation catalog for the requested locales")
	// ErrCatalogCorrupt is returned when the selected catalog file cannot be parsed.
	ErrCatalogCorrupt = errors.New("translation catalog is corrupt")
)

// Message is a translatable message. Other holds the source-language text and
// may reference template data, e.g. {{.Name}}.
type Message = goi18n.Message

// Translator renders messages in the active locale.
type Translator interface {
	Localize(msg *Message, data map[string]any) string
}

// Catalog is the translation catalog selected for one locale. It is immutable
// once returned by Select.
type Catalog struct {
	tag       language.Tag
	file      string
	localizer *goi18n.Localizer
	source    *goi18n.Localizer
}

var _ Translator = (*Catalog)(nil)

// Source returns a catalog without translations. Every lookup yields the
// source-language text.
func Source() *Catalog {
	source := sourceLocalizer()
	return &Catalog{
		tag:       language.Und,
		localizer: source,
		source:    source,
	}
}

// Select picks the catalog in dir that best matches the requested locales and
// parses it. When nothing matches it returns the source catalog together with
// ErrNoCatalog, so callers may ignore that error and keep going. The source
// language counts as available: when it is preferred over every catalog the
// result is the same as no match. A catalog that fails to parse, or holds a
// malformed template, yields an error wrapping ErrCatalogCorrupt.
func Select(fsys fs.FS, dir string, requested ...string) (*Catalog, error) {
	available, err := catalogFiles(fsys, dir)
	if err != nil {
		return Source(), err
	}

	file, tag, ok := match(available, requested)
	if !ok {
		return Source(), ErrNoCatalog
	}

	buf, err := fs.ReadFile(fsys, file)
	if err != nil {
		return Source(), fmt.Errorf("failed to read catalog %s: %w", file, err)
	}

	bundle := newBundle()
	mf, err := bundle.ParseMessageFileBytes(buf, file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCatalogCorrupt, file, err)
	}
	for _, m := range mf.Messages {
		if err := checkTemplates(m); err != nil {
			return nil, fmt.Errorf("%w: %s: message %q: %v", ErrCatalogCorrupt, file, m.ID, err)
		}
	}

	return &Catalog{
		tag:       tag,
		file:      file,
		localizer: goi18n.NewLocalizer(bundle, tag.String()),
		source:    sourceLocalizer(),
	}, nil
}

// Tag returns the locale of the catalog, or language.Und for the source catalog.
func (c *Catalog) Tag() language.Tag {
	return c.tag
}

// File returns the path of the catalog file that was loaded, if any.
func (c *Catalog) File() string {
	return c.file
}

// Localize renders msg in the catalog's locale. Missing translations, and
// translations that fail to render, fall back to the rendered source text of msg.
func (c *Catalog) Localize(msg *Message, data map[string]any) string {
	if msg == nil {
		return ""
	}

	cfg := &goi18n.LocalizeConfig{
		DefaultMessage: msg,
		TemplateData:   data,
	}
	text, err := c.localizer.Localize(cfg)
	if err == nil {
		return text
	}
	var notFound *goi18n.MessageNotFoundErr
	if errors.As(err, &notFound) && text != "" {
		return text
	}

	// the source localizer has no messages, so it renders msg itself
	text, err = c.source.Localize(cfg)
	if text == "" && err != nil {
		return msg.Other
	}
	return text
}

// T looks up messageID and returns it unchanged when the catalog has no
// translation for it.
func (c *Catalog) T(messageID string) string {
	text, err := c.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID: messageID,
	})
	if err != nil || text == "" {
		return messageID
	}
	return text
}

func sourceLocalizer() *goi18n.Localizer {
	return goi18n.NewLocalizer(newBundle(), SourceLanguage.String())
}

func newBundle() *goi18n.Bundle {
	bundle := goi18n.NewBundle(SourceLanguage)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

type catalogFile struct {
	path string
	tag  language.Tag
}

// catalogFiles lists <lang>.json and <lang>.toml files directly under dir.
// Files whose name is not a language tag are skipped.
func catalogFiles(fsys fs.FS, dir string) ([]catalogFile, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalogs in %s: %w", dir, err)
	}

	var files []catalogFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := path.Ext(name)
		if ext != ".json" && ext != ".toml" {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(name, ext))
		if err != nil {
			continue
		}
		files = append(files, catalogFile{path: path.Join(dir, name), tag: tag})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].path < files[j].path
	})
	return files, nil
}

// checkTemplates parses every plural form of m the way go-i18n renders it.
func checkTemplates(m *goi18n.Message) error {
	left, right := m.LeftDelim, m.RightDelim
	if left == "" {
		left = "{{"
	}
	if right == "" {
		right = "}}"
	}
	for _, text := range []string{m.Zero, m.One, m.Two, m.Few, m.Many, m.Other} {
		if !strings.Contains(text, left) {
			continue
		}
		if _, err := template.New(m.ID).Delims(left, right).Parse(text); err != nil {
			return err
		}
	}
	return nil
}

// match returns the catalog file for the best requested locale. A region
// specific request ("fr-CA") falls back to the language-only catalog ("fr").
// SourceLanguage competes with the catalogs; when it wins there is no match.
func match(files []catalogFile, requested []string) (string, language.Tag, bool) {
	if len(files) == 0 {
		return "", language.Und, false
	}

	var want []language.Tag
	for _, r := range requested {
		if tag, err := language.Parse(r); err == nil {
			want = append(want, tag)
		}
	}
	if len(want) == 0 {
		return "", language.Und, false
	}

	supported := make([]language.Tag, 0, len(files)+1)
	supported = append(supported, SourceLanguage)
	for _, f := range files {
		supported = append(supported, f.tag)
	}

	_, index, confidence := language.NewMatcher(supported).Match(want...)
	if confidence == language.No || index == 0 {
		return "", language.Und, false
	}
	f := files[index-1]
	return f.path, f.tag, true
}
