package store

import (
	"context"
	"fmt"

	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

// treatmentRepository is the PostgreSQL-backed implementation of
// [TreatmentRepository]. The treatment row and both nested sets (lots and
// supplies) are written in one transaction; updates replace the nested sets
// wholesale.
type treatmentRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewTreatmentRepository(db *DB, logger *logger.Logger) TreatmentRepository {
	logger.Debug().Msg("creating treatment repository")
	return &treatmentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *treatmentRepository) List(ctx context.Context) ([]models.Treatment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTreatments)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.List").Msg("failed to execute query for listing treatments")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	treatments := make([]models.Treatment, 0, 50)
	index := make(map[int64]int)
	for rows.Next() {
		var treatment models.Treatment
		scanErr := rows.Scan(
			&treatment.ID,
			&treatment.DateTreatment.Time,
			&treatment.TypeTreatment,
			&treatment.QuantityMix,
			&treatment.State,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*treatmentRepository.List").Msg("failed to scan treatment row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		treatment.LotList = []models.TreatmentLot{}
		treatment.SupplieList = []models.TreatmentSupply{}
		index[treatment.ID] = len(treatments)
		treatments = append(treatments, treatment)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*treatmentRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	if len(treatments) == 0 {
		return treatments, nil
	}
	if err = r.attachLots(ctx, treatments, index); err != nil {
		return nil, err
	}
	if err = r.attachSupplies(ctx, treatments, index); err != nil {
		return nil, err
	}

	return treatments, nil
}

func (r *treatmentRepository) attachLots(ctx context.Context, treatments []models.Treatment, index map[int64]int) error {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTreatmentLots)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.attachLots").Msg("failed to execute query for listing treatment lots")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var treatmentID int64
		var lot models.TreatmentLot
		if scanErr := rows.Scan(&treatmentID, &lot.LotID); scanErr != nil {
			log.Err(scanErr).Str("func", "*treatmentRepository.attachLots").Msg("failed to scan treatment lot row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if i, ok := index[treatmentID]; ok {
			treatments[i].LotList = append(treatments[i].LotList, lot)
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*treatmentRepository.attachLots").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

func (r *treatmentRepository) attachSupplies(ctx context.Context, treatments []models.Treatment, index map[int64]int) error {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listTreatmentSupplies)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.attachSupplies").Msg("failed to execute query for listing treatment supplies")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var treatmentID int64
		var supply models.TreatmentSupply
		if scanErr := rows.Scan(&treatmentID, &supply.SuppliesID, &supply.Dose); scanErr != nil {
			log.Err(scanErr).Str("func", "*treatmentRepository.attachSupplies").Msg("failed to scan treatment supply row")
			return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if i, ok := index[treatmentID]; ok {
			treatments[i].SupplieList = append(treatments[i].SupplieList, supply)
		}
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*treatmentRepository.attachSupplies").Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return nil
}

func (r *treatmentRepository) Create(ctx context.Context, treatment models.Treatment) (models.Treatment, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.Create").Msg("failed to begin transaction")
		return models.Treatment{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx, createTreatment,
		treatment.DateTreatment.Time,
		treatment.TypeTreatment,
		treatment.QuantityMix,
		treatment.State,
	)
	if err = row.Scan(&treatment.ID); err != nil {
		log.Err(err).Str("func", "*treatmentRepository.Create").Msg("failed to insert treatment")
		return models.Treatment{}, classifyWriteError(err)
	}

	for _, lot := range treatment.LotList {
		if _, err = tx.ExecContext(ctx, insertTreatmentLot, treatment.ID, lot.LotID); err != nil {
			log.Err(err).Str("func", "*treatmentRepository.Create").Int64("lot_id", lot.LotID).Msg("failed to insert treatment lot")
			return models.Treatment{}, classifyWriteError(err)
		}
	}
	for _, supply := range treatment.SupplieList {
		if _, err = tx.ExecContext(ctx, insertTreatmentSupply, treatment.ID, supply.SuppliesID, supply.Dose); err != nil {
			log.Err(err).Str("func", "*treatmentRepository.Create").Int64("supply_id", supply.SuppliesID).Msg("failed to insert treatment supply")
			return models.Treatment{}, classifyWriteError(err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*treatmentRepository.Create").Msg("failed to commit transaction")
		return models.Treatment{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return treatment, nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment models.Treatment) error {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.Update").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateTreatment,
		treatment.DateTreatment.Time,
		treatment.TypeTreatment,
		treatment.QuantityMix,
		treatment.State,
		treatment.ID,
	)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.Update").Int64("id", treatment.ID).Msg("failed to update treatment")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	// replace both nested sets
	if _, err = tx.ExecContext(ctx, clearTreatmentLots, treatment.ID); err != nil {
		log.Err(err).Str("func", "*treatmentRepository.Update").Int64("id", treatment.ID).Msg("failed to clear treatment lots")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if _, err = tx.ExecContext(ctx, clearTreatmentSupplies, treatment.ID); err != nil {
		log.Err(err).Str("func", "*treatmentRepository.Update").Int64("id", treatment.ID).Msg("failed to clear treatment supplies")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	for _, lot := range treatment.LotList {
		if _, err = tx.ExecContext(ctx, insertTreatmentLot, treatment.ID, lot.LotID); err != nil {
			log.Err(err).Str("func", "*treatmentRepository.Update").Int64("lot_id", lot.LotID).Msg("failed to insert treatment lot")
			return classifyWriteError(err)
		}
	}
	for _, supply := range treatment.SupplieList {
		if _, err = tx.ExecContext(ctx, insertTreatmentSupply, treatment.ID, supply.SuppliesID, supply.Dose); err != nil {
			log.Err(err).Str("func", "*treatmentRepository.Update").Int64("supply_id", supply.SuppliesID).Msg("failed to insert treatment supply")
			return classifyWriteError(err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "*treatmentRepository.Update").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	return nil
}

func (r *treatmentRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteTreatment, id)
	if err != nil {
		log.Err(err).Str("func", "*treatmentRepository.Delete").Int64("id", id).Msg("failed to delete treatment")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}
