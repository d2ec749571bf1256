package service

import (
	"github.com/fincaudita/agroconsole/internal/config"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/store"
)

// Services aggregates everything the HTTP handlers depend on: the auth
// service plus the per-resource repositories.
type Services struct {
	Auth AuthService

	Users      store.UserRepository
	References store.ReferenceRepository
	Farms      store.FarmRepository
	Persons    store.PersonRepository
	Modules    store.ModuleRepository
	Treatments store.TreatmentRepository
	Reviews    store.ReviewRepository
}

func NewServices(db *store.DB, cfg *config.ServerConfig, log *logger.Logger) *Services {
	users := store.NewUserRepository(db, log)

	return &Services{
		Auth:       NewAuthService(users, cfg.Auth, log),
		Users:      users,
		References: store.NewReferenceRepository(db, log),
		Farms:      store.NewFarmRepository(db, log),
		Persons:    store.NewPersonRepository(db, log),
		Modules:    store.NewModuleRepository(db, log),
		Treatments: store.NewTreatmentRepository(db, log),
		Reviews:    store.NewReviewRepository(db, log),
	}
}
