// Package localeformat renders integers as grouped decimals for a locale.
package localeformat

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is Mexican Spanish.
const DefaultLocale = "es-MX"

// Parse accepts BCP 47 tags ("es-MX") and underscore spellings ("es_MX").
// An empty locale selects DefaultLocale.
func Parse(locale string) (language.Tag, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return tag, nil
}

type Formatter struct {
	tag language.Tag
}

func New(tag language.Tag) *Formatter {
	return &Formatter{tag: tag}
}

// ForLocale parses locale and returns its Formatter.
func ForLocale(locale string) (*Formatter, error) {
	tag, err := Parse(locale)
	if err != nil {
		return nil, err
	}
	return New(tag), nil
}

func (f *Formatter) Tag() language.Tag {
	return f.tag
}

// Format returns n with the locale's digit grouping, e.g. 12345 is
// "12,345" in es-MX and "12.345" in de-DE.
func (f *Formatter) Format(n int64) string {
	// message.Printer is not safe for concurrent use.
	return message.NewPrinter(f.tag).Sprintf("%d", n)
}

// MustParse is like Parse but panics on invalid input.
func MustParse(locale string) language.Tag {
	tag, err := Parse(locale)
	if err != nil {
		panic(err)
	}
	return tag
}
