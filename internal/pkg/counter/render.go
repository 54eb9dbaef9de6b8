package counter

import (
	"context"

	"github.com/ManuelReschke/visitas/internal/pkg/dom"
)

// Renderer is the display port: it receives the new count after each visit.
type Renderer interface {
	Render(ctx context.Context, count int64)
}

// RendererFunc adapts a plain function to Renderer.
type RendererFunc func(ctx context.Context, count int64)

func (f RendererFunc) Render(ctx context.Context, count int64) {
	f(ctx, count)
}

// Formatter turns a count into display text.
type Formatter interface {
	Format(n int64) string
}

// ElementRenderer writes the formatted count into the element with
// ElementID. A document without that element is left untouched.
type ElementRenderer struct {
	Document  dom.Document
	ElementID string
	Formatter Formatter
}

func (r ElementRenderer) Render(_ context.Context, count int64) {
	if r.Document == nil {
		return
	}
	el, ok := r.Document.ElementByID(r.ElementID)
	if !ok {
		return
	}
	if r.Formatter == nil {
		el.SetText(Encode(count))
		return
	}
	el.SetText(r.Formatter.Format(count))
}

// MultiRenderer renders into every non-nil renderer in order.
type MultiRenderer []Renderer

func (m MultiRenderer) Render(ctx context.Context, count int64) {
	for _, r := range m {
		if r != nil {
			r.Render(ctx, count)
		}
	}
}
