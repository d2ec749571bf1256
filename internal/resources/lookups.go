package resources

import (
	"context"
	"errors"

	"github.com/fincaudita/agroconsole/internal/gateway"
	"github.com/fincaudita/agroconsole/internal/lookup"
	"github.com/fincaudita/agroconsole/models"
)

// Lookups bundles the five reference caches the console forms depend on.
// Each cache is fetched once per session and kept for the session lifetime.
type Lookups struct {
	Cities   *lookup.Cache[models.City]
	Users    *lookup.Cache[models.User]
	Crops    *lookup.Cache[models.Crop]
	Lots     *lookup.Cache[models.LotRef]
	Supplies *lookup.Cache[models.Supply]
}

// NewLookups builds the reference caches over the shared HTTP client.
func NewLookups(client *gateway.Client) *Lookups {
	return &Lookups{
		Cities: lookup.NewCache(
			gateway.NewResource[models.City](client, CitySpec),
			func(c models.City) int64 { return c.ID },
			func(c models.City) string { return c.Name },
		),
		Users: lookup.NewCache(
			gateway.NewResource[models.User](client, UserSpec),
			func(u models.User) int64 { return u.ID },
			func(u models.User) string { return u.Username },
		),
		Crops: lookup.NewCache(
			gateway.NewResource[models.Crop](client, CropSpec),
			func(c models.Crop) int64 { return c.ID },
			func(c models.Crop) string { return c.Name },
		),
		Lots: lookup.NewCache(
			gateway.NewResource[models.LotRef](client, LotSpec),
			func(l models.LotRef) int64 { return l.ID },
			func(l models.LotRef) string { return l.DisplayName() },
		),
		Supplies: lookup.NewCache(
			gateway.NewResource[models.Supply](client, SupplySpec),
			func(s models.Supply) int64 { return s.ID },
			func(s models.Supply) string { return s.Name },
		),
	}
}

// LoadAll fetches every reference collection. A failed cache keeps its
// previous contents and resolves to the unknown sentinel; the errors are
// joined so the caller can report them once.
func (l *Lookups) LoadAll(ctx context.Context) error {
	return errors.Join(
		l.Cities.Load(ctx),
		l.Users.Load(ctx),
		l.Crops.Load(ctx),
		l.Lots.Load(ctx),
		l.Supplies.Load(ctx),
	)
}
