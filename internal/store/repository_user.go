package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindByUsername retrieves the account used to verify a login attempt.
func (r *userRepository) FindByUsername(ctx context.Context, username string) (Account, error) {
	log := logger.FromContext(ctx)

	var account Account
	row := r.db.QueryRowContext(ctx, findAccountByUsername, username)
	err := row.Scan(&account.ID, &account.Username, &account.PasswordHash, &account.ProfileImagePath)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindByUsername").Msg("error: scanning error")
		return Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// List returns the public user reference rows consumed by the farm form's
// typeahead. Password hashes never leave the repository.
func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUsers)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.List").Msg("failed to execute query for listing users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, 50)
	for rows.Next() {
		var user models.User
		if scanErr := rows.Scan(&user.ID, &user.Username); scanErr != nil {
			log.Err(scanErr).Str("func", "*userRepository.List").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, user)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*userRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return users, nil
}

// Update applies the profile changes coming from the console. Either field
// may be empty, in which case the stored value is kept; with both empty the
// call is a no-op.
func (r *userRepository) Update(ctx context.Context, id int64, passwordHash, profileImagePath string) error {
	log := logger.FromContext(ctx)

	if passwordHash == "" && profileImagePath == "" {
		log.Warn().Str("func", "*userRepository.Update").Int64("id", id).Msg("no fields to update, skipping")
		return nil
	}

	query, args, err := buildUpdateAccountQuery(ctx, id, passwordHash, profileImagePath)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Int64("id", id).Msg("failed to build update query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.Update").Int64("id", id).Msg("failed to execute update query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// classifyWriteError maps driver-level constraint failures to the store's
// sentinel errors.
func classifyWriteError(err error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrDuplicate
	case pgerrcode.ForeignKeyViolation:
		return ErrReferenced
	default:
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}
