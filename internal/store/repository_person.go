package store

import (
	"context"
	"fmt"

	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/models"
)

// personRepository is the PostgreSQL-backed implementation of [PersonRepository].
type personRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewPersonRepository(db *DB, logger *logger.Logger) PersonRepository {
	logger.Debug().Msg("creating person repository")
	return &personRepository{
		db:     db,
		logger: logger,
	}
}

func (r *personRepository) List(ctx context.Context) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listPersons)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.List").Msg("failed to execute query for listing persons")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	persons := make([]models.Person, 0, 50)
	for rows.Next() {
		var person models.Person
		scanErr := rows.Scan(
			&person.ID,
			&person.FirstName,
			&person.LastName,
			&person.Email,
			&person.TypeDocument,
			&person.Document,
			&person.Addres,
			&person.Phone,
			&person.BirthOfDate.Time,
			&person.CityID,
			&person.State,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*personRepository.List").Msg("failed to scan person row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		persons = append(persons, person)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*personRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return persons, nil
}

func (r *personRepository) Create(ctx context.Context, person models.Person) (models.Person, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createPerson,
		person.FirstName,
		person.LastName,
		person.Email,
		person.TypeDocument,
		person.Document,
		person.Addres,
		person.Phone,
		person.BirthOfDate.Time,
		person.CityID,
		person.State,
	)
	if err := row.Scan(&person.ID); err != nil {
		log.Err(err).Str("func", "*personRepository.Create").Msg("failed to insert person")
		return models.Person{}, classifyWriteError(err)
	}

	return person, nil
}

func (r *personRepository) Update(ctx context.Context, person models.Person) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updatePerson,
		person.FirstName,
		person.LastName,
		person.Email,
		person.TypeDocument,
		person.Document,
		person.Addres,
		person.Phone,
		person.BirthOfDate.Time,
		person.CityID,
		person.State,
		person.ID,
	)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.Update").Int64("id", person.ID).Msg("failed to update person")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *personRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deletePerson, id)
	if err != nil {
		log.Err(err).Str("func", "*personRepository.Delete").Int64("id", id).Msg("failed to delete person")
		return classifyWriteError(err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return ErrNotFound
	}

	return nil
}
