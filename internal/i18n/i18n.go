// Package i18n resolves the user's language preference to one of the
// supported catalog languages and renders localized CLI text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Default is used when no preference is stored or nothing matches.
var Default = language.Turkish

// Supported lists the languages the catalog ships text for. The first entry
// is the matcher's fallback.
var Supported = []language.Tag{
	language.Turkish,
	language.English,
	language.German,
	language.French,
}

var matcher = language.NewMatcher(Supported)

// Match maps a language code or tag ("en", "de-AT", "fr_CA") to the closest
// supported language. Empty or unparsable input yields Default.
func Match(code string) language.Tag {
	if code == "" {
		return Default
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Code returns the two-letter code stored under the language key.
func Code(tag language.Tag) string {
	base, _ := tag.Base()
	return base.String()
}

// IsSupported reports whether code matches a supported language exactly.
func IsSupported(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	for _, s := range Supported {
		if Code(s) == Code(tag) {
			return true
		}
	}
	return false
}

// Printer renders catalog messages in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

func NewPrinter(code string) *Printer {
	tag := Match(code)
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(messages))}
}

// Lang returns the two-letter code of the printer's language.
func (p *Printer) Lang() string {
	return Code(p.tag)
}

// Sprintf looks key up in the catalog and formats it. Unknown keys are
// formatted as-is.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

var messages = func() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, table := range translations {
		for key, msg := range table {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
	return b
}()
