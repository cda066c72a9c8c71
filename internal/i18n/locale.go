package i18n

import (
	"strings"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"
)

// Auto means the locale is taken from the operating system.
const Auto = "auto"

// systemLocales is replaced in tests.
var systemLocales = locale.GetLocales

// DetectLocales returns the preferred locales, most preferred first. A
// non-empty override other than "auto" takes precedence over the OS setting.
// Entries that are not valid language tags are dropped.
func DetectLocales(override string) []string {
	override = strings.TrimSpace(override)
	if override != "" && !strings.EqualFold(override, Auto) {
		return normalize([]string{override})
	}

	userLocales, err := systemLocales()
	if err != nil {
		return nil
	}
	return normalize(userLocales)
}

func normalize(locales []string) []string {
	var tags []string
	seen := make(map[string]bool)
	for _, l := range locales {
		// POSIX style values such as "fr_CA.UTF-8".
		l, _, _ = strings.Cut(l, ".")
		l = strings.ReplaceAll(l, "_", "-")
		tag, err := language.Parse(l)
		if err != nil || tag == language.Und {
			continue
		}
		s := tag.String()
		if !seen[s] {
			seen[s] = true
			tags = append(tags, s)
		}
	}
	return tags
}
