package store

import (
	"context"
	"fmt"

	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

// moduleRepository is the PostgreSQL-backed implementation of [ModuleRepository].
type moduleRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewModuleRepository(db *DB, logger *logger.Logger) ModuleRepository {
	logger.Debug().Msg("creating module repository")
	return &moduleRepository{
		db:     db,
		logger: logger,
	}
}

func (r *moduleRepository) List(ctx context.Context) ([]models.Module, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listModules)
	if err != nil {
		log.Err(err).Str("func", "*moduleRepository.List").Msg("failed to execute query for listing modules")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	modules := make([]models.Module, 0, 50)
	for rows.Next() {
		var module models.Module
		scanErr := rows.Scan(&module.ID, &module.Name, &module.Description, &module.Position, &module.State)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*moduleRepository.List").Msg("failed to scan module row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		modules = append(modules, module)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*moduleRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return modules, nil
}

func (r *moduleRepository) Create(ctx context.Context, module models.Module) (models.Module, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createModule, module.Name, module.Description, module.Position, module.State)
	if err := row.Scan(&module.ID); err != nil {
		log.Err(err).Str("func", "*moduleRepository.Create").Msg("failed to insert module")
		return models.Module{}, classifyWriteError(err)
	}

	return module, nil
}

func (r *moduleRepository) Update(ctx context.Context, module models.Module) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateModule, module.Name, module.Description, module.Position, module.State, module.ID)
	if err != nil {
		log.Err(err).Str("func", "*moduleRepository.Update").Int64("id", module.ID).Msg("failed to update module")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *moduleRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteModule, id)
	if err != nil {
		log.Err(err).Str("func", "*moduleRepository.Delete").Int64("id", id).Msg("failed to delete module")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}
