package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fincaudita/agroconsole/internal/config"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/store"
	"github.com/fincaudita/agroconsole/models"
)

type mockUserRepo struct {
	findByUsernameFn func(ctx context.Context, username string) (store.Account, error)
	updateFn         func(ctx context.Context, id int64, passwordHash, profileImagePath string) error
}

func (m *mockUserRepo) FindByUsername(ctx context.Context, username string) (store.Account, error) {
	return m.findByUsernameFn(ctx, username)
}

func (m *mockUserRepo) List(context.Context) ([]models.User, error) {
	return nil, nil
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, passwordHash, profileImagePath string) error {
	return m.updateFn(ctx, id, passwordHash, profileImagePath)
}

var testAuthConfig = config.Auth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "fincaudita",
	TokenDuration: time.Hour,
}

func newTestAuthService(users *mockUserRepo) AuthService {
	return NewAuthService(users, testAuthConfig, logger.Nop())
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthLogin(t *testing.T) {
	hash := hashOf(t, "secreta")
	svc := newTestAuthService(&mockUserRepo{
		findByUsernameFn: func(_ context.Context, username string) (store.Account, error) {
			assert.Equal(t, "admin", username)
			return store.Account{ID: 7, Username: "admin", PasswordHash: hash}, nil
		},
	})

	account, err := svc.Login(context.Background(), models.Credentials{Username: "admin", Password: "secreta"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
}

func TestAuthLoginWrongPassword(t *testing.T) {
	hash := hashOf(t, "secreta")
	svc := newTestAuthService(&mockUserRepo{
		findByUsernameFn: func(context.Context, string) (store.Account, error) {
			return store.Account{ID: 7, Username: "admin", PasswordHash: hash}, nil
		},
	})

	_, err := svc.Login(context.Background(), models.Credentials{Username: "admin", Password: "otra"})
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthLoginEmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	_, err := svc.Login(context.Background(), models.Credentials{Username: "admin"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(context.Background(), models.Credentials{Password: "secreta"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{
		findByUsernameFn: func(context.Context, string) (store.Account, error) {
			return store.Account{}, store.ErrNoUserWasFound
		},
	})

	_, err := svc.Login(context.Background(), models.Credentials{Username: "ghost", Password: "x"})
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

func TestUpdateProfileHashesNewPassword(t *testing.T) {
	var gotHash, gotImage string
	svc := newTestAuthService(&mockUserRepo{
		updateFn: func(_ context.Context, id int64, passwordHash, profileImagePath string) error {
			assert.Equal(t, int64(7), id)
			gotHash = passwordHash
			gotImage = profileImagePath
			return nil
		},
	})

	err := svc.UpdateProfile(context.Background(), models.PasswordUpdate{
		UserID:           7,
		NewPassword:      "nueva",
		ProfileImagePath: "avatars/nuevo.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "avatars/nuevo.png", gotImage)
	require.NotEmpty(t, gotHash)
	assert.NotEqual(t, "nueva", gotHash, "the plain password must never reach the store")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(gotHash), []byte("nueva")))
}

func TestUpdateProfileImageOnlyKeepsHashEmpty(t *testing.T) {
	var gotHash string
	svc := newTestAuthService(&mockUserRepo{
		updateFn: func(_ context.Context, _ int64, passwordHash, _ string) error {
			gotHash = passwordHash
			return nil
		},
	})

	err := svc.UpdateProfile(context.Background(), models.PasswordUpdate{
		UserID:           7,
		ProfileImagePath: "avatars/nuevo.png",
	})
	require.NoError(t, err)
	assert.Empty(t, gotHash)
}

func TestUpdateProfileWithoutUserID(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	err := svc.UpdateProfile(context.Background(), models.PasswordUpdate{NewPassword: "nueva"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestUpdateProfileStoreFailure(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{
		updateFn: func(context.Context, int64, string, string) error {
			return store.ErrNotFound
		},
	})

	err := svc.UpdateProfile(context.Background(), models.PasswordUpdate{UserID: 99, NewPassword: "nueva"})
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCreateAndParseTokenRoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	token, err := svc.CreateToken(context.Background(), store.Account{ID: 7, Username: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ParseToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestParseTokenRejectsForeignSignature(t *testing.T) {
	other := NewAuthService(&mockUserRepo{}, config.Auth{
		TokenSignKey:  "another-key",
		TokenIssuer:   "fincaudita",
		TokenDuration: time.Hour,
	}, logger.Nop())

	token, err := other.CreateToken(context.Background(), store.Account{ID: 7})
	require.NoError(t, err)

	svc := newTestAuthService(&mockUserRepo{})
	_, err = svc.ParseToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestParseTokenGarbage(t *testing.T) {
	svc := newTestAuthService(&mockUserRepo{})

	_, err := svc.ParseToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestCreateTokenMissingSignKey(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, config.Auth{TokenIssuer: "fincaudita", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), store.Account{ID: 7})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
