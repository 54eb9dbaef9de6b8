package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageElementLookup(t *testing.T) {
	t.Parallel()

	page := NewPage("viewCount")

	el, ok := page.ElementByID("viewCount")
	require.True(t, ok)
	assert.Equal(t, "", el.Text())

	el.SetText("1")
	assert.Equal(t, "1", page.Text("viewCount"))

	_, ok = page.ElementByID("missing")
	assert.False(t, ok)
	assert.Equal(t, "", page.Text("missing"))
}

func TestPageAddReplaces(t *testing.T) {
	t.Parallel()

	page := NewPage()
	page.Add("dateDisplay", "old")
	n := page.Add("dateDisplay", "new")

	assert.Equal(t, "dateDisplay", n.ID())
	assert.Equal(t, "new", page.Text("dateDisplay"))
}
