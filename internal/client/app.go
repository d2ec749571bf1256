package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/fincaudita/agroconsole/internal/config"
	"github.com/fincaudita/agroconsole/internal/controller"
	"github.com/fincaudita/agroconsole/internal/gateway"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/resources"
	"github.com/fincaudita/agroconsole/internal/session"
	"github.com/fincaudita/agroconsole/internal/tui"
	"github.com/fincaudita/agroconsole/models"
)

// App is the console application: gateway, session store, lookups,
// controllers, and the TUI assembled into one Run loop.
type App struct {
	client   *gateway.Client
	sessions session.Store
	tui      *tui.TUI
	logger   *logger.Logger
}

// NewApp wires the console from its configuration. The prompter and toast
// bridge are shared between the controllers and the TUI so confirmations
// and notifications flow through the event loop.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	httpClient, err := gateway.NewClient(cfg.API, log)
	if err != nil {
		return nil, fmt.Errorf("create http client: %w", err)
	}

	sessions, err := session.NewSQLiteStore(context.Background(), cfg.Session, log)
	if err != nil {
		return nil, fmt.Errorf("create session store: %w", err)
	}

	lookups := resources.NewLookups(httpClient)
	prompter := tui.NewPrompter()
	toasts := tui.NewToasts()

	farms := controller.New(
		resources.FarmConfig(lookups.Crops),
		gateway.NewResource[models.Farm](httpClient, resources.FarmSpec),
		prompter, toasts, log,
	)
	persons := controller.New(
		resources.PersonConfig(lookups.Cities),
		gateway.NewResource[models.Person](httpClient, resources.PersonSpec),
		prompter, toasts, log,
	)
	modules := controller.New(
		resources.ModuleConfig(),
		gateway.NewResource[models.Module](httpClient, resources.ModuleSpec),
		prompter, toasts, log,
	)
	treatments := controller.New(
		resources.TreatmentConfig(),
		gateway.NewResource[models.Treatment](httpClient, resources.TreatmentSpec),
		prompter, toasts, log,
	)
	reviews := controller.New(
		resources.ReviewConfig(),
		gateway.NewResource[models.TechnicalReview](httpClient, resources.ReviewSpec),
		prompter, toasts, log,
	)

	ui, err := tui.New(tui.Deps{
		Client:     httpClient,
		Sessions:   sessions,
		Lookups:    lookups,
		Farms:      farms,
		Persons:    persons,
		Modules:    modules,
		Treatments: treatments,
		Reviews:    reviews,
		Prompter:   prompter,
		Toasts:     toasts,
		Logger:     log,
	})
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		client:   httpClient,
		sessions: sessions,
		tui:      ui,
		logger:   log,
	}, nil
}

// Run restores the persisted session or walks the login flow, then runs the
// main loop. A logout clears the token and starts over at the login screen;
// quitting from the login screen exits cleanly.
func (a *App) Run() error {
	ctx := context.Background()

	sess, err := a.sessions.Restore(ctx)
	switch {
	case err == nil:
		a.client.SetToken(sess.Token)
	case errors.Is(err, session.ErrNoSession):
		sess, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	default:
		return fmt.Errorf("restore session: %w", err)
	}

	logout, err := a.tui.MainLoop(ctx, sess)
	if err != nil {
		return err
	}
	if logout {
		a.client.SetToken("")
		return a.Run()
	}
	return nil
}

// Close releases the session store.
func (a *App) Close() error {
	return a.sessions.Close()
}
