package store

import (
	"context"

	"github.com/fincaudita/agroconsole/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// Account is the server-side user record. PasswordHash is a bcrypt hash and
// never leaves the store layer.
type Account struct {
	ID               int64
	Username         string
	PasswordHash     string
	ProfileImagePath string
}

// UserRepository manages accounts: login lookup, the reference listing used
// by the farm form, and the profile update issued from the console.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (Account, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, passwordHash, profileImagePath string) error
}

// ReferenceRepository serves the read-only lookup collections.
type ReferenceRepository interface {
	ListCities(ctx context.Context) ([]models.City, error)
	ListCrops(ctx context.Context) ([]models.Crop, error)
	ListSupplies(ctx context.Context) ([]models.Supply, error)
	ListLots(ctx context.Context) ([]models.LotRef, error)
}

type FarmRepository interface {
	List(ctx context.Context) ([]models.Farm, error)
	Create(ctx context.Context, farm models.Farm) (models.Farm, error)
	Update(ctx context.Context, farm models.Farm) error
	Delete(ctx context.Context, id int64) error
}

type PersonRepository interface {
	List(ctx context.Context) ([]models.Person, error)
	Create(ctx context.Context, person models.Person) (models.Person, error)
	Update(ctx context.Context, person models.Person) error
	Delete(ctx context.Context, id int64) error
}

type ModuleRepository interface {
	List(ctx context.Context) ([]models.Module, error)
	Create(ctx context.Context, module models.Module) (models.Module, error)
	Update(ctx context.Context, module models.Module) error
	Delete(ctx context.Context, id int64) error
}

type TreatmentRepository interface {
	List(ctx context.Context) ([]models.Treatment, error)
	Create(ctx context.Context, treatment models.Treatment) (models.Treatment, error)
	Update(ctx context.Context, treatment models.Treatment) error
	Delete(ctx context.Context, id int64) error
}

type ReviewRepository interface {
	List(ctx context.Context) ([]models.TechnicalReview, error)
	Create(ctx context.Context, review models.TechnicalReview) (models.TechnicalReview, error)
	Update(ctx context.Context, review models.TechnicalReview) error
	Delete(ctx context.Context, id int64) error
}
