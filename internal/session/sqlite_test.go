package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincaudita/agroconsole/internal/config"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.db")
	store, err := NewSQLiteStore(context.Background(), config.ClientSession{Path: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	return store
}

func TestRestoreWithoutSavedSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Restore(context.Background())
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestSaveAndRestore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	saved := models.Session{
		UserID:           7,
		Username:         "admin",
		Token:            "signed-token",
		ProfileImagePath: "avatars/admin.png",
		At:               time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, store.Save(ctx, saved))

	got, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.UserID, got.UserID)
	assert.Equal(t, saved.Username, got.Username)
	assert.Equal(t, saved.Token, got.Token)
	assert.Equal(t, saved.ProfileImagePath, got.ProfileImagePath)
	assert.True(t, saved.At.Equal(got.At), "saved %v, restored %v", saved.At, got.At)
}

func TestSaveReplacesPreviousSession(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Session{UserID: 1, Username: "primero", Token: "a", At: time.Now().UTC()}))
	require.NoError(t, store.Save(ctx, models.Session{UserID: 2, Username: "segundo", Token: "b", At: time.Now().UTC()}))

	got, err := store.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.UserID)
	assert.Equal(t, "segundo", got.Username)
}

func TestClear(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, models.Session{UserID: 7, Username: "admin", Token: "t", At: time.Now().UTC()}))
	require.NoError(t, store.Clear(ctx))

	_, err := store.Restore(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestClearWithoutSessionIsNoop(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Clear(context.Background()))
}

func TestSessionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	store, err := NewSQLiteStore(ctx, config.ClientSession{Path: path}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, models.Session{UserID: 7, Username: "admin", Token: "t", At: time.Now().UTC()}))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(ctx, config.ClientSession{Path: path}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { reopened.Close() })

	got, err := reopened.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin", got.Username)
}
