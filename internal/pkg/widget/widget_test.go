package widget

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/ManuelReschke/visitas/internal/pkg/counter"
	"github.com/ManuelReschke/visitas/internal/pkg/datedisplay"
	"github.com/ManuelReschke/visitas/internal/pkg/dom"
	"github.com/ManuelReschke/visitas/internal/pkg/localeformat"
)

var fixedNow = time.Date(2026, time.February, 19, 12, 0, 0, 0, time.UTC)

func newTestHost(store counter.Store) *Host {
	mx := language.MustParse("es-MX")
	return NewHost(store, Options{
		Formatter: localeformat.New(mx),
		Date:      datedisplay.New(mx, datedisplay.WithLocation(time.UTC)),
		Now:       func() time.Time { return fixedNow },
	})
}

func TestLoadRendersBothWidgets(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := counter.NewMemoryStore()
	host := newTestHost(store)

	page := host.NewPage()
	res := host.Load(ctx, "", page)

	assert.Equal(t, int64(1), res.Count)
	assert.Equal(t, "1", page.Text("viewCount"))
	assert.True(t, strings.HasPrefix(page.Text("dateDisplay"), "Jueves"), page.Text("dateDisplay"))

	page = host.NewPage()
	host.Load(ctx, "", page)
	assert.Equal(t, "2", page.Text("viewCount"))

	v, err := store.Get(ctx, "viewCount")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestLoadGroupsLargeCounts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := counter.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "viewCount", "12344"))
	host := newTestHost(store)

	page := host.NewPage()
	host.Load(ctx, "", page)

	assert.Equal(t, "12,345", page.Text("viewCount"))
}

func TestLoadWithoutElements(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := counter.NewMemoryStore()
	host := newTestHost(store)
	page := dom.NewPage("unrelated")

	res := host.Load(ctx, "", page)

	assert.Equal(t, int64(1), res.Count)
	assert.Equal(t, "", page.Text("unrelated"))
	v, err := store.Get(ctx, "viewCount")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestScopesAreIndependent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := counter.NewMemoryStore()
	host := newTestHost(store)

	host.Visit(ctx, "a")
	host.Visit(ctx, "a")
	host.Visit(ctx, "b")

	assert.Equal(t, int64(2), host.Peek(ctx, "a"))
	assert.Equal(t, int64(1), host.Peek(ctx, "b"))
	assert.Equal(t, int64(0), host.Peek(ctx, "c"))

	v, err := store.Get(ctx, "a:viewCount")
	require.NoError(t, err)
	assert.Equal(t, "2", v)
}

func TestCounterFansOutRenderers(t *testing.T) {
	t.Parallel()

	host := newTestHost(counter.NewMemoryStore())
	var got []int64
	record := counter.RendererFunc(func(_ context.Context, n int64) { got = append(got, n) })

	host.Counter("x", record, record).Visit(context.Background())

	assert.Equal(t, []int64{1, 1}, got)
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	host := NewHost(counter.NewMemoryStore(), Options{})

	assert.Equal(t, counter.DefaultKey, host.Key())
	assert.Equal(t, DefaultCounterElementID, host.CounterElementID())
	assert.Equal(t, datedisplay.DefaultElementID, host.DateElementID())
	assert.Equal(t, "es-MX", host.Formatter().Tag().String())
}

func TestRenderDateDoesNotCount(t *testing.T) {
	t.Parallel()

	store := counter.NewMemoryStore()
	host := newTestHost(store)
	page := host.NewPage()

	assert.True(t, host.RenderDate(page))
	assert.Equal(t, "Jueves, 19 de febrero de 2026", page.Text("dateDisplay"))
	assert.Empty(t, page.Text("viewCount"))
	assert.Equal(t, 0, store.Len())

	assert.False(t, host.RenderDate(dom.NewPage()))
}
