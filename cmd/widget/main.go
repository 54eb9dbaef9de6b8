//go:build js && wasm

// Command widget runs the view counter and the date display once, directly
// in the browser:
//
//	GOOS=js GOARCH=wasm go build -o public/assets/widget.wasm ./cmd/widget
package main

import (
	"context"

	"github.com/ManuelReschke/visitas/internal/pkg/browser"
	"github.com/ManuelReschke/visitas/internal/pkg/datedisplay"
	"github.com/ManuelReschke/visitas/internal/pkg/localeformat"
	"github.com/ManuelReschke/visitas/internal/pkg/widget"
)

func main() {
	// the hosting page may pin the locale with <html data-locale="...">
	tag, err := localeformat.Parse(browser.PageLocale(localeformat.DefaultLocale))
	if err != nil {
		tag = localeformat.MustParse(localeformat.DefaultLocale)
	}

	host := widget.NewHost(browser.LocalStorage{}, widget.Options{
		Formatter: localeformat.New(tag),
		Date:      datedisplay.New(tag),
	})
	host.Load(context.Background(), "", browser.Document{})
}
