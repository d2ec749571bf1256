// Package typeahead implements the suggestion filter behind the console's
// incremental search inputs. It is pure: no I/O, no mutation, deterministic
// for the same cache contents and query.
package typeahead

import "strings"

// DefaultLimit caps how many suggestions a search may return.
const DefaultLimit = 10

// Filter returns the first limit items whose display string contains query
// as a case-insensitive substring, preserving input order.
//
// An empty query returns an empty result, not the full collection.
func Filter[T any](query string, items []T, display func(T) string, limit int) []T {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(query) < 1 {
		return nil
	}

	needle := strings.ToLower(query)
	matches := make([]T, 0, limit)
	for _, item := range items {
		if strings.Contains(strings.ToLower(display(item)), needle) {
			matches = append(matches, item)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}
