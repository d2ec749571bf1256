package service

import (
	"context"

	"github.com/fincaudita/agroconsole/internal/store"
	"github.com/fincaudita/agroconsole/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_service.go -package=mock

// AuthService owns credential verification and the JWT lifecycle.
type AuthService interface {
	Login(ctx context.Context, credentials models.Credentials) (store.Account, error)
	UpdateProfile(ctx context.Context, update models.PasswordUpdate) error
	CreateToken(ctx context.Context, account store.Account) (string, error)
	ParseToken(ctx context.Context, tokenString string) (int64, error)
}
