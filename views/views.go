// Package views holds the page layout and the widget fragments.
package views

import (
	"context"
	"embed"
	"io"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templates embed.FS

// Engine returns the html view engine over the embedded templates.
func Engine() *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// Badge renders a single widget element: <tag id="id">text</tag>.
func Badge(tag, id, text string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<"+tag+` id="`+templ.EscapeString(id)+`">`+templ.EscapeString(text)+"</"+tag+">")
		return err
	})
}

// CounterBadge is the view counter element.
func CounterBadge(id, text string) templ.Component {
	return Badge("strong", id, text)
}

// DateBadge is the date display element.
func DateBadge(id, text string) templ.Component {
	return Badge("span", id, text)
}
