package sqlstore

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

func TestSortEntriesNewestFirst(t *testing.T) {
	entries := []types.Entry{
		{ID: "b", CreatedAt: 200},
		{ID: "d", CreatedAt: 50},
		{ID: "a", CreatedAt: 400},
		{ID: "c", CreatedAt: 100},
	}

	SortEntriesNewestFirst(entries)

	var ids []string
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestSortEntriesNewestFirstStable(t *testing.T) {
	// Equal timestamps keep their incoming order.
	entries := []types.Entry{
		{ID: "first", CreatedAt: 100},
		{ID: "second", CreatedAt: 100},
		{ID: "newest", CreatedAt: 300},
	}

	SortEntriesNewestFirst(entries)

	assert.Equal(t, "newest", entries[0].ID)
	assert.Equal(t, "first", entries[1].ID)
	assert.Equal(t, "second", entries[2].ID)
}
