package lookup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincaudita/agroconsole/internal/lookup"
)

type crop struct {
	ID   int64
	Name string
}

type stubLister struct {
	items []crop
	err   error
}

func (s *stubLister) List(context.Context) ([]crop, error) {
	return s.items, s.err
}

func newCropCache(source *stubLister) *lookup.Cache[crop] {
	return lookup.NewCache(source,
		func(c crop) int64 { return c.ID },
		func(c crop) string { return c.Name },
	)
}

func TestResolveBeforeLoad(t *testing.T) {
	cache := newCropCache(&stubLister{})

	assert.False(t, cache.Loaded())
	assert.Equal(t, lookup.Unknown, cache.Resolve(1))
}

func TestResolveAfterLoad(t *testing.T) {
	cache := newCropCache(&stubLister{items: []crop{{1, "Café"}, {2, "Cacao"}}})

	require.NoError(t, cache.Load(context.Background()))

	assert.True(t, cache.Loaded())
	assert.Equal(t, "Café", cache.Resolve(1))
	assert.Equal(t, "Cacao", cache.Resolve(2))
	assert.Equal(t, lookup.Unknown, cache.Resolve(99))
}

func TestLoadFailureKeepsContents(t *testing.T) {
	source := &stubLister{items: []crop{{1, "Café"}}}
	cache := newCropCache(source)
	require.NoError(t, cache.Load(context.Background()))

	source.items = nil
	source.err = errors.New("connection refused")

	err := cache.Load(context.Background())
	require.Error(t, err)

	assert.True(t, cache.Loaded())
	assert.Equal(t, "Café", cache.Resolve(1))
	assert.Len(t, cache.Items(), 1)
}

func TestSearchRunsTypeaheadOverCachedItems(t *testing.T) {
	cache := newCropCache(&stubLister{items: []crop{{1, "Café"}, {2, "Cacao"}, {3, "Plátano"}}})
	require.NoError(t, cache.Load(context.Background()))

	got := cache.Search("ca")
	names := make([]string, len(got))
	for i, c := range got {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Café", "Cacao"}, names)

	assert.Empty(t, cache.Search(""), "la consulta vacía no sugiere nada")
}
