package session

import (
	"context"

	"github.com/fincaudita/agroconsole/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_session.go -package=mock

// Store persists the signed-in user's session between console runs: token,
// identity, and the chosen profile image path. One session at a time.
type Store interface {
	Save(ctx context.Context, session models.Session) error
	Restore(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
	Close() error
}
