// Package widget runs the page widgets of one load: the view counter and
// the date display.
package widget

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/ManuelReschke/visitas/internal/pkg/counter"
	"github.com/ManuelReschke/visitas/internal/pkg/datedisplay"
	"github.com/ManuelReschke/visitas/internal/pkg/dom"
	"github.com/ManuelReschke/visitas/internal/pkg/localeformat"
)

const DefaultCounterElementID = "viewCount"

type Options struct {
	Key              string
	CounterElementID string
	Formatter        *localeformat.Formatter
	Date             *datedisplay.Display
	Logger           counter.Logger
	Now              func() time.Time
}

// Host runs the widgets against one store. Scopes keep the counts of
// different browsers apart inside that store.
type Host struct {
	store            counter.Store
	key              string
	counterElementID string
	formatter        *localeformat.Formatter
	date             *datedisplay.Display
	logger           counter.Logger
	now              func() time.Time
}

func NewHost(store counter.Store, opts Options) *Host {
	h := &Host{
		store:            store,
		key:              opts.Key,
		counterElementID: opts.CounterElementID,
		formatter:        opts.Formatter,
		date:             opts.Date,
		logger:           opts.Logger,
		now:              opts.Now,
	}
	if h.key == "" {
		h.key = counter.DefaultKey
	}
	if h.counterElementID == "" {
		h.counterElementID = DefaultCounterElementID
	}
	if h.formatter == nil {
		h.formatter = localeformat.New(localeformat.MustParse(localeformat.DefaultLocale))
	}
	if h.date == nil {
		h.date = datedisplay.New(h.formatter.Tag())
	}
	if h.logger == nil {
		h.logger = log.DefaultLogger()
	}
	if h.now == nil {
		h.now = time.Now
	}
	return h
}

func (h *Host) Formatter() *localeformat.Formatter {
	return h.formatter
}

func (h *Host) Key() string {
	return h.key
}

func (h *Host) CounterElementID() string {
	return h.counterElementID
}

func (h *Host) DateElementID() string {
	return h.date.ElementID()
}

// NewPage returns a document holding both widget elements.
func (h *Host) NewPage() *dom.Page {
	return dom.NewPage(h.counterElementID, h.date.ElementID())
}

// Counter returns the counter of scope rendering into renderers. An empty
// scope uses the store unprefixed, as the browser build does.
func (h *Host) Counter(scope string, renderers ...counter.Renderer) *counter.Counter {
	opts := []counter.Option{
		counter.WithKey(h.key),
		counter.WithLogger(h.logger),
	}
	switch len(renderers) {
	case 0:
	case 1:
		opts = append(opts, counter.WithRenderer(renderers[0]))
	default:
		opts = append(opts, counter.WithRenderer(counter.MultiRenderer(renderers)))
	}
	return counter.New(counter.Scoped(h.store, scopePrefix(scope)), opts...)
}

// Load performs one page load for scope: the counter visit rendered into
// doc, then the date display. Either element may be missing from doc.
func (h *Host) Load(ctx context.Context, scope string, doc dom.Document) counter.Result {
	res := h.Counter(scope, h.elementRenderer(doc)).Visit(ctx)
	h.RenderDate(doc)
	return res
}

// RenderDate writes today's date into doc. It reports false when doc has
// no date element.
func (h *Host) RenderDate(doc dom.Document) bool {
	return h.date.Render(doc, h.now())
}

// Visit increments the counter of scope without a document.
func (h *Host) Visit(ctx context.Context, scope string) counter.Result {
	return h.Counter(scope).Visit(ctx)
}

// Peek reads the count of scope without incrementing it.
func (h *Host) Peek(ctx context.Context, scope string) int64 {
	return h.Counter(scope).Peek(ctx)
}

func (h *Host) elementRenderer(doc dom.Document) counter.Renderer {
	return counter.ElementRenderer{
		Document:  doc,
		ElementID: h.counterElementID,
		Formatter: h.formatter,
	}
}

func scopePrefix(scope string) string {
	if scope == "" {
		return ""
	}
	return scope + ":"
}
