package workflow

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// itemSource adapts a result list for fuzzy matching.
type itemSource []Item

// String returns the searchable string for an item.
func (s itemSource) String(i int) string {
	item := s[i]
	if item.Subtitle == "" {
		return strings.ToLower(item.Title)
	}
	return strings.ToLower(item.Title + " " + item.Subtitle)
}

// Len returns the number of items.
func (s itemSource) Len() int {
	return len(s)
}

// Filter ranks items against query, best match first. An empty query
// returns the items unchanged in producer order.
func Filter(items []Item, query string) []Item {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return items
	}

	matches := fuzzy.FindFrom(query, itemSource(items))
	out := make([]Item, len(matches))
	for i, match := range matches {
		out[i] = items[match.Index]
	}
	return out
}
