// Package session stores the console's sign-in state in a local SQLite file
// so a restart does not force a new login.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/fincaudita/agroconsole/internal/config"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

type sqliteStore struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteStore opens (creating if needed) the local session database and
// ensures its schema.
func NewSQLiteStore(ctx context.Context, cfg config.ClientSession, log *logger.Logger) (Store, error) {
	if err := createDBFileIfNotExists(cfg.Path); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error creating session database file")
		return nil, fmt.Errorf("create session database file: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error opening session database")
		return nil, fmt.Errorf("open session database: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error connecting session database")
		return nil, fmt.Errorf("ping session database: %w", err)
	}

	if _, err = db.ExecContext(ctx, bootstrapSessionTable); err != nil {
		log.Err(err).Str("func", "NewSQLiteStore").Msg("error bootstrapping session schema")
		return nil, fmt.Errorf("bootstrap session schema: %w", err)
	}

	log.Debug().Str("func", "NewSQLiteStore").Str("path", cfg.Path).Msg("session store ready")
	return &sqliteStore{db: db, logger: log}, nil
}

func (s *sqliteStore) Save(ctx context.Context, session models.Session) error {
	_, err := s.db.ExecContext(ctx, saveSession,
		session.UserID, session.Username, session.Token, session.ProfileImagePath, session.At)
	if err != nil {
		s.logger.Err(err).Str("func", "Save").Msg("error saving session")
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *sqliteStore) Restore(ctx context.Context) (models.Session, error) {
	var session models.Session
	row := s.db.QueryRowContext(ctx, restoreSession)
	err := row.Scan(&session.UserID, &session.Username, &session.Token, &session.ProfileImagePath, &session.At)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		s.logger.Err(err).Str("func", "Restore").Msg("error restoring session")
		return models.Session{}, fmt.Errorf("restore session: %w", err)
	}
	return session, nil
}

func (s *sqliteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, clearSession); err != nil {
		s.logger.Err(err).Str("func", "Clear").Msg("error clearing session")
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func createDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("create session DB file: %w", err)
		}
		f.Close()
	}
	return nil
}
