// Package datedisplay renders today's date as a long localized string,
// e.g. "Jueves, 19 de febrero de 2026" for es-MX.
package datedisplay

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/en_US"
	"github.com/go-playground/locales/es"
	"github.com/go-playground/locales/es_MX"
	"github.com/go-playground/locales/pt_BR"
	"golang.org/x/text/language"

	"github.com/ManuelReschke/visitas/internal/pkg/dom"
)

const DefaultElementID = "dateDisplay"

var translators = map[string]func() locales.Translator{
	"es-MX": es_MX.New,
	"es":    es.New,
	"en":    en.New,
	"en-US": en_US.New,
	"pt-BR": pt_BR.New,
	"pt":    pt_BR.New,
}

type Display struct {
	translator locales.Translator
	location   *time.Location
	elementID  string
}

type Option func(*Display)

// WithLocation formats dates in loc instead of time.Local.
func WithLocation(loc *time.Location) Option {
	return func(d *Display) {
		if loc != nil {
			d.location = loc
		}
	}
}

func WithElementID(id string) Option {
	return func(d *Display) {
		if id != "" {
			d.elementID = id
		}
	}
}

// New returns a Display for tag. Unsupported tags fall back to their base
// language and then to es-MX.
func New(tag language.Tag, opts ...Option) *Display {
	d := &Display{
		translator: translatorFor(tag),
		location:   time.Local,
		elementID:  DefaultElementID,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func translatorFor(tag language.Tag) locales.Translator {
	if fn, ok := translators[tag.String()]; ok {
		return fn()
	}
	base, _ := tag.Base()
	if fn, ok := translators[base.String()]; ok {
		return fn()
	}
	return es_MX.New()
}

// Locale returns the CLDR locale used for month and weekday names.
func (d *Display) Locale() string {
	return d.translator.Locale()
}

func (d *Display) ElementID() string {
	return d.elementID
}

// Format returns the full date of t with the first letter upper-cased.
func (d *Display) Format(t time.Time) string {
	return capitalize(d.translator.FmtDateFull(t.In(d.location)))
}

// Render writes the formatted date into the display element. It reports
// whether the element was present.
func (d *Display) Render(doc dom.Document, now time.Time) bool {
	if doc == nil {
		return false
	}
	el, ok := doc.ElementByID(d.elementID)
	if !ok {
		return false
	}
	el.SetText(d.Format(now))
	return true
}

func capitalize(s string) string {
	s = strings.TrimSpace(s)
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
