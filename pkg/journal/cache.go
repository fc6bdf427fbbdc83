package journal

import (
	cmap "github.com/orcaman/concurrent-map/v2"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

// Cache holds each owner's fetched entry list so filter and search never
// issue a store query per keystroke. Lists are replaced wholesale after a
// successful create or delete.
type Cache struct {
	entries cmap.ConcurrentMap[string, []types.Entry]
}

func NewCache() *Cache {
	return &Cache{
		entries: cmap.New[[]types.Entry](),
	}
}

func (c *Cache) Get(userID string) ([]types.Entry, bool) {
	return c.entries.Get(userID)
}

func (c *Cache) Set(userID string, list []types.Entry) {
	c.entries.Set(userID, list)
}

func (c *Cache) Invalidate(userID string) {
	c.entries.Remove(userID)
}
