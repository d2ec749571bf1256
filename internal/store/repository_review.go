package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository]. The qualification checklist is stored as a JSONB
// column: its shape is owned by the console and the server never inspects
// individual checklist rows.
type reviewRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewReviewRepository(db *DB, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		db:     db,
		logger: logger,
	}
}

func (r *reviewRepository) List(ctx context.Context) ([]models.TechnicalReview, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listReviews)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.List").Msg("failed to execute query for listing reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	reviews := make([]models.TechnicalReview, 0, 50)
	for rows.Next() {
		var review models.TechnicalReview
		var checklists []byte

		scanErr := rows.Scan(
			&review.ID,
			&review.DateReview.Time,
			&review.Technician,
			&review.State,
			&review.Farm,
			&review.CropCode,
			&review.Producer,
			&review.Observations,
			&checklists,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*reviewRepository.List").Msg("failed to scan review row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		if err = json.Unmarshal(checklists, &review.Checklists); err != nil {
			log.Err(err).Str("func", "*reviewRepository.List").Int64("id", review.ID).Msg("failed to decode checklist column")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		reviews = append(reviews, review)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*reviewRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review models.TechnicalReview) (models.TechnicalReview, error) {
	log := logger.FromContext(ctx)

	checklists, err := json.Marshal(review.Checklists)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Create").Msg("failed to encode checklist column")
		return models.TechnicalReview{}, fmt.Errorf("encode checklist: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createReview,
		review.DateReview.Time,
		review.Technician,
		review.State,
		review.Farm,
		review.CropCode,
		review.Producer,
		review.Observations,
		checklists,
	)
	if err = row.Scan(&review.ID); err != nil {
		log.Err(err).Str("func", "*reviewRepository.Create").Msg("failed to insert review")
		return models.TechnicalReview{}, classifyWriteError(err)
	}

	return review, nil
}

func (r *reviewRepository) Update(ctx context.Context, review models.TechnicalReview) error {
	log := logger.FromContext(ctx)

	checklists, err := json.Marshal(review.Checklists)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Update").Msg("failed to encode checklist column")
		return fmt.Errorf("encode checklist: %w", err)
	}

	result, err := r.db.ExecContext(ctx, updateReview,
		review.DateReview.Time,
		review.Technician,
		review.State,
		review.Farm,
		review.CropCode,
		review.Producer,
		review.Observations,
		checklists,
		review.ID,
	)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Update").Int64("id", review.ID).Msg("failed to update review")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteReview, id)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.Delete").Int64("id", id).Msg("failed to delete review")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}
