package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/internal/controller"
)

const toastDuration = 3 * time.Second

type toast struct {
	kind    controller.Kind
	title   string
	message string
}

func (t toast) empty() bool {
	return t.title == "" && t.message == ""
}

func (t toast) render() string {
	line := t.title + ": " + t.message
	switch t.kind {
	case controller.KindSuccess:
		return successStyle.Render(line)
	case controller.KindWarning:
		return warningStyle.Render(line)
	default:
		return errorStyle.Render(line)
	}
}

// Toasts bridges controller notifications into Bubble Tea messages. Notify
// never blocks the caller: when the TUI is not draining (shutdown races),
// the notification is dropped.
type Toasts struct {
	ch chan toast
}

func NewToasts() *Toasts {
	return &Toasts{ch: make(chan toast, 8)}
}

// Notify implements controller.Notifier.
func (t *Toasts) Notify(kind controller.Kind, title, message string) {
	select {
	case t.ch <- toast{kind: kind, title: title, message: message}:
	default:
	}
}

func (t *Toasts) cmdAwaitToast() tea.Cmd {
	return func() tea.Msg {
		return toastMsg{toast: <-t.ch}
	}
}

func cmdClearToast(seq uint64) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{seq: seq}
	})
}
