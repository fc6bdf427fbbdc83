package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

var searchEntries = []types.Entry{
	{ID: "1", Content: "Walked by the Harbor today", Poem: "salt air lifts"},
	{ID: "2", Content: "quiet evening", Poem: "the HARBOR lights hum"},
	{ID: "3", Content: "work was long", Poem: ""},
}

func TestSearchMatchesContentAndPoem(t *testing.T) {
	res := Search(searchEntries, "harbor")
	assert.True(t, res.Active)
	assert.Len(t, res.Entries, 2)

	res = Search(searchEntries, "WORK")
	assert.True(t, res.Active)
	assert.Len(t, res.Entries, 1)
	assert.Equal(t, "3", res.Entries[0].ID)
}

func TestSearchInactiveVsZeroMatches(t *testing.T) {
	// empty and whitespace-only queries are an inactive search, not a miss
	for _, q := range []string{"", "   ", "\t\n"} {
		res := Search(searchEntries, q)
		assert.False(t, res.Active)
		assert.Empty(t, res.Entries)
	}

	// an active search with no hits is a different state
	res := Search(searchEntries, "zzzznomatch")
	assert.True(t, res.Active)
	assert.Empty(t, res.Entries)
}

func TestCache(t *testing.T) {
	c := NewCache()

	_, ok := c.Get("u1")
	assert.False(t, ok)

	c.Set("u1", searchEntries)
	got, ok := c.Get("u1")
	assert.True(t, ok)
	assert.Len(t, got, 3)

	c.Invalidate("u1")
	_, ok = c.Get("u1")
	assert.False(t, ok)
}
