package store

import (
	"context"
	"fmt"

	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

// farmRepository is the PostgreSQL-backed implementation of [FarmRepository].
// A farm row and its nested farm_lots rows are written together in one
// transaction; an update replaces the lot set wholesale, mirroring how the
// console submits the full nested list on every save.
type farmRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewFarmRepository(db *DB, logger *logger.Logger) FarmRepository {
	logger.Debug().Msg("creating farm repository")
	return &farmRepository{
		db:     db,
		logger: logger,
	}
}

func (r *farmRepository) List(ctx context.Context) ([]models.Farm, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFarms)
	if err != nil {
		log.Err(err).Str("func", "*farmRepository.List").Msg("failed to execute query for listing farms")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	farms := make([]models.Farm, 0, 50)
	index := make(map[int64]int)
	for rows.Next() {
		var farm models.Farm
		scanErr := rows.Scan(&farm.ID, &farm.Name, &farm.CityID, &farm.UserID, &farm.Addres, &farm.Dimension, &farm.State)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*farmRepository.List").Msg("failed to scan farm row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		farm.Lots = []models.Lot{}
		index[farm.ID] = len(farms)
		farms = append(farms, farm)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*farmRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if err = r.attachLots(ctx, farms, index); err != nil {
		return nil, err
	}

	return farms, nil
}

// attachLots loads the nested lot rows for every listed farm in one query
// and distributes them by farm id.
func (r *farmRepository) attachLots(ctx context.Context, farms []models.Farm, index map[int64]int) error {
	log := logger.FromContext(ctx)

	if len(farms) == 0 {
		return nil
	}

	query, args, err := buildListFarmLotsQuery(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*farmRepository.attachLots").Msg("failed to build farm lots query")
		return err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*farmRepository.attachLots").Msg("failed to execute query for listing farm lots")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var farmID int64
		var lot models.Lot
		if scanErr := rows.Scan(&farmID, &lot.CropID, &lot.NumHectareas); scanErr != nil {
			log.Err(scanErr).Str("func", "*farmRepository.attachLots").Msg("failed to scan farm lot row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if i, ok := index[farmID]; ok {
			farms[i].Lots = append(farms[i].Lots, lot)
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*farmRepository.attachLots").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

func (r *farmRepository) Create(ctx context.Context, farm models.Farm) (models.Farm, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*farmRepository.Create").Msg("failed to begin transaction")
		return models.Farm{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createFarm, farm.Name, farm.CityID, farm.UserID, farm.Addres, farm.Dimension, farm.State)
	if err = row.Scan(&farm.ID); err != nil {
		log.Err(err).Str("func", "*farmRepository.Create").Msg("failed to insert farm")
		return models.Farm{}, classifyWriteError(err)
	}

	for _, lot := range farm.Lots {
		if _, err = tx.ExecContext(ctx, insertFarmLot, farm.ID, lot.CropID, lot.NumHectareas); err != nil {
			log.Err(err).Str("func", "*farmRepository.Create").Int64("crop_id", lot.CropID).Msg("failed to insert farm lot")
			return models.Farm{}, classifyWriteError(err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*farmRepository.Create").Msg("failed to commit transaction")
		return models.Farm{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return farm, nil
}

func (r *farmRepository) Update(ctx context.Context, farm models.Farm) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*farmRepository.Update").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateFarm, farm.Name, farm.CityID, farm.UserID, farm.Addres, farm.Dimension, farm.State, farm.ID)
	if err != nil {
		log.Err(err).Str("func", "*farmRepository.Update").Int64("id", farm.ID).Msg("failed to update farm")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	// replace the nested lot set
	if _, err = tx.ExecContext(ctx, clearFarmLots, farm.ID); err != nil {
		log.Err(err).Str("func", "*farmRepository.Update").Int64("id", farm.ID).Msg("failed to clear farm lots")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	for _, lot := range farm.Lots {
		if _, err = tx.ExecContext(ctx, insertFarmLot, farm.ID, lot.CropID, lot.NumHectareas); err != nil {
			log.Err(err).Str("func", "*farmRepository.Update").Int64("crop_id", lot.CropID).Msg("failed to insert farm lot")
			return classifyWriteError(err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*farmRepository.Update").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (r *farmRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFarm, id)
	if err != nil {
		log.Err(err).Str("func", "*farmRepository.Delete").Int64("id", id).Msg("failed to delete farm")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}
