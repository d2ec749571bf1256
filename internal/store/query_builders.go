package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// psql is the shared statement builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateAccountQuery builds the dynamic profile update. The password
// hash and the profile image path are each optional: an empty value leaves
// the stored column untouched.
func buildUpdateAccountQuery(_ context.Context, id int64, passwordHash, profileImagePath string) (string, []any, error) {
	update := psql.Update("users")

	if passwordHash != "" {
		update = update.Set("password_hash", passwordHash)
	}
	if profileImagePath != "" {
		update = update.Set("profile_image_path", profileImagePath)
	}

	query, args, err := update.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListFarmLotsQuery selects the nested lot rows for the given farms.
// With no ids the filter is omitted and every row is returned.
func buildListFarmLotsQuery(_ context.Context, farmIDs []int64) (string, []any, error) {
	builder := psql.
		Select("farm_id", "crop_id", "num_hectareas").
		From("farm_lots").
		OrderBy("farm_id", "id")

	if len(farmIDs) > 0 {
		builder = builder.Where(sq.Eq{"farm_id": farmIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
