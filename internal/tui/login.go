package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/internal/gateway"
	"github.com/fincaudita/agroconsole/models"
)

// loginModel renders the username/password form and dispatches an async
// login command on submit. The resulting session is handed back to
// [TUI.LoginFlow] through the final model.
type loginModel struct {
	ctx    context.Context
	client *gateway.Client

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	session    models.Session
	quitByUser bool
}

func newLoginModel(ctx context.Context, client *gateway.Client) loginModel {
	user := textinput.New()
	user.Placeholder = "usuario"
	user.CharLimit = 60
	user.Width = 40
	user.Focus()

	pass := textinput.New()
	pass.Placeholder = "contraseña"
	pass.CharLimit = 256
	pass.Width = 40
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '*'

	return loginModel{
		ctx:    ctx,
		client: client,
		inputs: []textinput.Model{user, pass},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(loginDoneMsg); ok {
		m.submitting = false
		if done.err != nil {
			m.errMsg = humanizeLoginError(done.err)
			return m, nil
		}
		m.session = done.session
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if username == "" || password == "" {
				m.errMsg = "Usuario y contraseña son obligatorios"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Campo       │ Valor\n")
	b.WriteString("────────────┼────────────────────────────────────────────\n")
	b.WriteString("Usuario     │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Contraseña  │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Ingresando...]\n")
	} else {
		b.WriteString("\n[Ingresar]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return appStyle.Render(renderPage(
		"FINCAUDITA │ INICIAR SESIÓN",
		strings.TrimRight(b.String(), "\n"),
		"tab: sig. campo │ enter: ingresar │ esc: salir",
	))
}

func (m loginModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	client := m.client

	return func() tea.Msg {
		sess, err := client.Login(ctx, models.Credentials{Username: username, Password: password})
		return loginDoneMsg{session: sess, err: err}
	}
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *loginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func humanizeLoginError(err error) string {
	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "El servidor no está disponible"
	}
	if strings.Contains(s, "unauthorized") {
		return "Usuario o contraseña incorrectos"
	}
	return err.Error()
}
