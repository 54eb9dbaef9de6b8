package counter

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2/log"
)

// DefaultKey is the storage key of the view count.
const DefaultKey = "viewCount"

// Logger is the subset of fiber's log.AllLogger the counter reports to.
type Logger interface {
	Warnf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// Result describes one visit.
type Result struct {
	Previous  int64 `json:"previous"`
	Count     int64 `json:"count"`
	Persisted bool  `json:"persisted"`
}

// Counter increments a persisted count once per page load and hands the
// new value to its renderer.
type Counter struct {
	store    Store
	key      string
	renderer Renderer
	logger   Logger
}

type Option func(*Counter)

func WithKey(key string) Option {
	return func(c *Counter) {
		if key != "" {
			c.key = key
		}
	}
}

func WithRenderer(r Renderer) Option {
	return func(c *Counter) {
		c.renderer = r
	}
}

func WithLogger(l Logger) Option {
	return func(c *Counter) {
		if l != nil {
			c.logger = l
		}
	}
}

func New(store Store, opts ...Option) *Counter {
	c := &Counter{
		store:  store,
		key:    DefaultKey,
		logger: log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key returns the storage key the counter uses.
func (c *Counter) Key() string {
	return c.key
}

// Peek returns the normalized stored count without incrementing it.
func (c *Counter) Peek(ctx context.Context) int64 {
	return c.read(ctx)
}

// Visit reads the stored count, increments it by one, writes it back and
// renders it. Storage failures are logged and never returned: a failed
// write leaves Persisted false and nothing is rendered, so the display
// never shows a count the store does not hold.
func (c *Counter) Visit(ctx context.Context) Result {
	prev := c.read(ctx)
	res := Result{Previous: prev, Count: increment(prev)}

	if err := c.store.Set(ctx, c.key, Encode(res.Count)); err != nil {
		c.logger.Errorf("counter: could not persist %q: %v", c.key, err)
		return res
	}
	res.Persisted = true

	if c.renderer != nil {
		c.renderer.Render(ctx, res.Count)
	}
	return res
}

func (c *Counter) read(ctx context.Context) int64 {
	raw, err := c.store.Get(ctx, c.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			c.logger.Warnf("counter: could not read %q, starting from 0: %v", c.key, err)
		}
		return 0
	}
	return Normalize(raw)
}
