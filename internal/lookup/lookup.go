// Package lookup holds fetch-once reference collections (cities, users,
// crops, supplies, lots) used for display-name resolution and typeahead
// suggestion. A cache never blocks the primary resource screens: when its
// load failed, resolution falls back to the unknown sentinel.
package lookup

import (
	"context"
	"fmt"
	"sync"

	"github.com/fincaudita/agroconsole/internal/typeahead"
)

// Unknown is the label shown for any id that cannot be resolved.
const Unknown = "Desconocido"

// Lister is the read side of a resource gateway.
type Lister[R any] interface {
	List(ctx context.Context) ([]R, error)
}

// Cache is a read-only id → display-name map over one reference collection.
// The collection is fetched once and is immutable for the session.
type Cache[R any] struct {
	source  Lister[R]
	id      func(R) int64
	display func(R) string

	mu     sync.RWMutex
	items  []R
	byID   map[int64]string
	loaded bool
}

// NewCache constructs an empty cache. id and display nominate the key and
// the display field of R.
func NewCache[R any](source Lister[R], id func(R) int64, display func(R) string) *Cache[R] {
	return &Cache[R]{
		source:  source,
		id:      id,
		display: display,
		byID:    make(map[int64]string),
	}
}

// Load fetches the full collection and replaces the cache contents. On
// failure the previous contents (possibly empty) are kept and the error is
// returned for reporting; the cache stays usable either way.
func (c *Cache[R]) Load(ctx context.Context) error {
	items, err := c.source.List(ctx)
	if err != nil {
		return fmt.Errorf("load reference collection: %w", err)
	}

	byID := make(map[int64]string, len(items))
	for _, item := range items {
		byID[c.id(item)] = c.display(item)
	}

	c.mu.Lock()
	c.items = items
	c.byID = byID
	c.loaded = true
	c.mu.Unlock()

	return nil
}

// Loaded reports whether a Load has succeeded this session.
func (c *Cache[R]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Resolve returns the display name for id, or the Unknown sentinel when the
// id is absent. It never panics, loaded or not.
func (c *Cache[R]) Resolve(id int64) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if name, ok := c.byID[id]; ok {
		return name
	}
	return Unknown
}

// Search runs the typeahead filter over the cached collection.
func (c *Cache[R]) Search(query string) []R {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return typeahead.Filter(query, c.items, c.display, typeahead.DefaultLimit)
}

// Items returns the cached collection as-is.
func (c *Cache[R]) Items() []R {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items
}
