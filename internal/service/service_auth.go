package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/fincaudita/agroconsole/internal/config"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/store"
	"github.com/fincaudita/agroconsole/internal/utils"
	"github.com/fincaudita/agroconsole/models"
)

// authService is the concrete implementation of [AuthService]. Passwords are
// stored as bcrypt hashes; sessions are bearer JWTs signed with HMAC-SHA256.
type authService struct {
	userRepository store.UserRepository

	auth   config.Auth
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and populated with token parameters from cfg. The returned service is safe
// for concurrent use; all state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		auth:           cfg,
		logger:         logger,
	}
}

// Login authenticates an existing account.
//
// Returns the stored account record or:
//   - ErrInvalidDataProvided if username or password is empty.
//   - A wrapped storage error if the lookup fails (see store.ErrNoUserWasFound).
//   - ErrWrongPassword if the bcrypt comparison fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (store.Account, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid credentials provided")
		return store.Account{}, ErrInvalidDataProvided
	}

	account, err := a.userRepository.FindByUsername(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return store.Account{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Error().Int64("id", account.ID).Str("username", account.Username).Msg("wrong password")
		return store.Account{}, ErrWrongPassword
	}

	return account, nil
}

// UpdateProfile applies the password and profile-image changes coming from
// the console's profile screen. An empty NewPassword keeps the stored hash;
// an empty ProfileImagePath keeps the stored path.
func (a *authService) UpdateProfile(ctx context.Context, update models.PasswordUpdate) error {
	log := logger.FromContext(ctx)

	if update.UserID == 0 {
		log.Error().Msg("profile update without user id")
		return ErrInvalidDataProvided
	}

	var passwordHash string
	if update.NewPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(update.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Err(err).Int64("id", update.UserID).Msg("password hashing failed")
			return fmt.Errorf("password hashing failed: %w", err)
		}
		passwordHash = string(hash)
	}

	if err := a.userRepository.Update(ctx, update.UserID, passwordHash, update.ProfileImagePath); err != nil {
		log.Err(err).Int64("id", update.UserID).Msg("profile update failed")
		return fmt.Errorf("profile update failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for the given account.
func (a *authService) CreateToken(_ context.Context, account store.Account) (string, error) {
	token, err := utils.GenerateJWTToken(a.auth.TokenIssuer, account.ID, a.auth.TokenDuration, a.auth.TokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string and returns the user id it carries.
// Any validation failure is normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(_ context.Context, tokenString string) (int64, error) {
	userID, err := utils.ValidateAndParseJWTToken(tokenString, a.auth.TokenSignKey, a.auth.TokenIssuer)
	if err != nil {
		return 0, ErrTokenIsExpiredOrInvalid
	}

	return userID, nil
}
