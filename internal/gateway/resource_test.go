package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func newWidgetResource(t *testing.T, handler http.Handler, spec Spec) *Resource[widget] {
	t.Helper()
	client := newTestClient(t, handler)
	client.SetToken("session-token")
	return NewResource[widget](client, spec)
}

func TestResourceList(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/Farm", r.URL.Path)
		assert.Equal(t, "Bearer session-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"La Esperanza"},{"id":2,"name":"El Roble"}]`))
	})

	res := newWidgetResource(t, handler, Spec{Path: "/api/Farm"})

	items, err := res.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "La Esperanza", items[0].Name)
	assert.Equal(t, int64(2), items[1].ID)
}

func TestResourceGet(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Farm/5", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":5,"name":"La Loma"}`))
	})

	res := newWidgetResource(t, handler, Spec{Path: "/api/Farm"})

	item, err := res.Get(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "La Loma", item.Name)
}

func TestResourceCreateDecodesEcho(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/Farm", r.URL.Path)

		var sent widget
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, int64(0), sent.ID)

		sent.ID = 33
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(sent)
	})

	res := newWidgetResource(t, handler, Spec{Path: "/api/Farm"})

	created, err := res.Create(context.Background(), widget{Name: "Nueva"})
	require.NoError(t, err)
	assert.Equal(t, int64(33), created.ID)
	assert.Equal(t, "Nueva", created.Name)
}

func TestResourceCreateEmptyBodyKeepsItem(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	res := newWidgetResource(t, handler, Spec{Path: "/api/Farm"})

	created, err := res.Create(context.Background(), widget{Name: "Nueva"})
	require.NoError(t, err)
	assert.Equal(t, widget{Name: "Nueva"}, created)
}

func TestResourceUpdateBarePath(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/Farm", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	res := newWidgetResource(t, handler, Spec{Path: "/api/Farm"})

	err := res.Update(context.Background(), 5, widget{ID: 5, Name: "Renombrada"})
	require.NoError(t, err)
}

func TestResourceUpdateWithIDInPath(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/api/Treatment/5", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	res := newWidgetResource(t, handler, Spec{Path: "/api/Treatment", UpdateWithID: true})

	err := res.Update(context.Background(), 5, widget{ID: 5, Name: "Ajustada"})
	require.NoError(t, err)
}

func TestResourceRemove(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/api/Farm/9", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	res := newWidgetResource(t, handler, Spec{Path: "/api/Farm"})

	require.NoError(t, res.Remove(context.Background(), 9))
}

func TestResourceListMapsServerErrors(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	res := newWidgetResource(t, handler, Spec{Path: "api/Farm/"})

	_, err := res.List(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestNewResourceNormalizesPath(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/Module", r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	})

	res := newWidgetResource(t, handler, Spec{Path: "api/Module/"})

	_, err := res.List(context.Background())
	require.NoError(t, err)
}
