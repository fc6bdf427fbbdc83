package journal

import (
	"strings"

	"github.com/gorlea-ink/gorlea/pkg/types"
)

// SearchResult separates "no search active" from "search active, zero
// matches": both carry empty Entries but only the latter has Active set.
type SearchResult struct {
	Entries []types.Entry
	Active  bool
}

// Search returns entries whose content or poem contains query as a
// case-insensitive substring. A trimmed-empty query deactivates search.
// Search never touches the store; it operates on the locally cached list.
func Search(entries []types.Entry, query string) SearchResult {
	normalized := strings.ToLower(strings.TrimSpace(query))
	if normalized == "" {
		return SearchResult{}
	}

	result := SearchResult{Active: true}
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Content), normalized) ||
			strings.Contains(strings.ToLower(entry.Poem), normalized) {
			result.Entries = append(result.Entries, entry)
		}
	}
	return result
}
