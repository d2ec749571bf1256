package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/internal/controller"
	"github.com/fincaudita/agroconsole/internal/gateway"
	"github.com/fincaudita/agroconsole/internal/logger"
	"github.com/fincaudita/agroconsole/internal/resources"
	"github.com/fincaudita/agroconsole/internal/session"
	"github.com/fincaudita/agroconsole/models"
)

// ErrUserQuit reports that the user left the program from the login screen.
var ErrUserQuit = errors.New("salió del programa")

// Deps wires the TUI to the rest of the console. The prompter and toasts are
// the same values the controllers were built with: answers to their blocking
// Confirm calls travel back through the TUI event loop.
type Deps struct {
	Client   *gateway.Client
	Sessions session.Store
	Lookups  *resources.Lookups

	Farms      *controller.Controller[models.Farm]
	Persons    *controller.Controller[models.Person]
	Modules    *controller.Controller[models.Module]
	Treatments *controller.Controller[models.Treatment]
	Reviews    *controller.Controller[models.TechnicalReview]

	Prompter *Prompter
	Toasts   *Toasts
	Logger   *logger.Logger
}

type TUI struct {
	deps Deps
}

func New(deps Deps) (*TUI, error) {
	if deps.Client == nil || deps.Sessions == nil || deps.Lookups == nil {
		return nil, errors.New("tui: client, session store and lookups are required")
	}
	if deps.Prompter == nil || deps.Toasts == nil {
		return nil, errors.New("tui: prompter and toasts are required")
	}
	return &TUI{deps: deps}, nil
}

// LoginFlow runs the login screen until the user signs in or quits. The
// obtained session is persisted before returning.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginModel(ctx, t.deps.Client)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	if err = t.deps.Sessions.Save(ctx, result.session); err != nil {
		t.deps.Logger.Err(err).Msg("persist session after login")
	}
	return result.session, nil
}

// MainLoop runs the main console until the user quits or logs out. On
// logout the persisted session is cleared so the next run starts at the
// login screen.
func (t *TUI) MainLoop(ctx context.Context, sess models.Session) (logout bool, err error) {
	model := newMainModel(ctx, t.deps, sess)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}

	if result.logout {
		if err = t.deps.Sessions.Clear(ctx); err != nil {
			t.deps.Logger.Err(err).Msg("clear session on logout")
		}
	}
	return result.logout, nil
}
