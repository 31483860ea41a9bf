// Package locale derives the language and country hints sent with store
// searches, and the language tag used to collate results.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Locale holds the regional hints for one search surface.
type Locale struct {
	Language string       // "lang" hint, e.g. "en_US"
	Country  string       // "country" hint, ISO 3166 alpha-2, e.g. "US"
	Tag      language.Tag // collation language
}

// Default is used when the environment has no usable locale.
var Default = Locale{
	Language: "en_US",
	Country:  "US",
	Tag:      language.AmericanEnglish,
}

// The store rejects some language/region pairs; they are sent as a supported
// neighbour instead. The country hint is left as detected.
var languageRemap = map[string]string{
	"en_IL": "en_US",
}

// envVars are consulted in POSIX precedence order.
var envVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// Detect returns the locale of the current process environment.
func Detect() Locale {
	return FromEnv(os.Getenv)
}

// FromEnv returns the locale named by the first non-empty locale variable.
func FromEnv(getenv func(string) string) Locale {
	for _, name := range envVars {
		if v := getenv(name); v != "" {
			return Parse(v)
		}
	}
	return Default
}

// Parse converts a POSIX locale name ("he_IL.UTF-8", "de_DE@euro") or a BCP 47
// tag ("pt-BR") into a Locale. Unusable names yield Default.
func Parse(name string) Locale {
	name = strings.TrimSpace(name)
	if i := strings.IndexAny(name, ".@"); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return Default
	}

	tag, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return Default
	}

	base, _ := tag.Base()
	country := Default.Country
	if region, conf := tag.Region(); conf != language.No && region.IsCountry() {
		country = region.String()
	}

	return Locale{
		Language: normalizeLanguage(base.String() + "_" + country),
		Country:  country,
		Tag:      tag,
	}
}

// WithOverrides replaces the language and/or country hints when non-empty.
func (l Locale) WithOverrides(lang, country string) Locale {
	if lang != "" {
		parsed := Parse(lang)
		l.Language = normalizeLanguage(lang)
		l.Tag = parsed.Tag
	}
	if country != "" {
		l.Country = strings.ToUpper(country)
	}
	return l
}

func normalizeLanguage(id string) string {
	if mapped, ok := languageRemap[id]; ok {
		return mapped
	}
	return id
}
