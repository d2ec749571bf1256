package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

// referenceRepository serves the read-only lookup collections: cities, crops,
// supplies, and lots. These tables are seeded by migrations and never written
// through the API.
type referenceRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	logger.Debug().Msg("creating reference repository")
	return &referenceRepository{
		db:     db,
		logger: logger,
	}
}

func (r *referenceRepository) ListCities(ctx context.Context) ([]models.City, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCities)
	if err != nil {
		log.Err(err).Str("func", "*referenceRepository.ListCities").Msg("failed to execute query for listing cities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cities := make([]models.City, 0, 50)
	for rows.Next() {
		var city models.City
		if scanErr := rows.Scan(&city.ID, &city.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "*referenceRepository.ListCities").Msg("failed to scan city row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		cities = append(cities, city)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*referenceRepository.ListCities").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return cities, nil
}

func (r *referenceRepository) ListCrops(ctx context.Context) ([]models.Crop, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCrops)
	if err != nil {
		log.Err(err).Str("func", "*referenceRepository.ListCrops").Msg("failed to execute query for listing crops")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	crops := make([]models.Crop, 0, 50)
	for rows.Next() {
		var crop models.Crop
		if scanErr := rows.Scan(&crop.ID, &crop.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "*referenceRepository.ListCrops").Msg("failed to scan crop row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		crops = append(crops, crop)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*referenceRepository.ListCrops").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return crops, nil
}

func (r *referenceRepository) ListSupplies(ctx context.Context) ([]models.Supply, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listSupplies)
	if err != nil {
		log.Err(err).Str("func", "*referenceRepository.ListSupplies").Msg("failed to execute query for listing supplies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	supplies := make([]models.Supply, 0, 50)
	for rows.Next() {
		var supply models.Supply
		if scanErr := rows.Scan(&supply.ID, &supply.Name); scanErr != nil {
			log.Err(scanErr).Str("func", "*referenceRepository.ListSupplies").Msg("failed to scan supply row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		supplies = append(supplies, supply)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*referenceRepository.ListSupplies").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return supplies, nil
}

// ListLots embeds each lot's crop so the console can label the row; lots
// whose crop was removed come back without one.
func (r *referenceRepository) ListLots(ctx context.Context) ([]models.LotRef, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listLots)
	if err != nil {
		log.Err(err).Str("func", "*referenceRepository.ListLots").Msg("failed to execute query for listing lots")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lots := make([]models.LotRef, 0, 50)
	for rows.Next() {
		var lot models.LotRef
		var cropID sql.NullInt64
		var cropName sql.NullString

		if scanErr := rows.Scan(&lot.ID, &cropID, &cropName); scanErr != nil {
			log.Err(scanErr).Str("func", "*referenceRepository.ListLots").Msg("failed to scan lot row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if cropID.Valid {
			lot.Crop = &models.Crop{ID: cropID.Int64, Name: cropName.String}
		}
		lots = append(lots, lot)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*referenceRepository.ListLots").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return lots, nil
}
