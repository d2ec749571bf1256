package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/internal/controller"
	"github.com/fincaudita/agroconsole/models"
)

// profileForm edits the signed-in user's own account: a new password and the
// profile image path. Empty fields are left unchanged on the server.
type profileForm struct {
	password   textinput.Model
	repeat     textinput.Model
	imagePath  textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newProfileForm(sess models.Session) profileForm {
	password := textinput.New()
	password.Placeholder = "Nueva contraseña (vacío: sin cambio)"
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'
	password.Focus()

	repeat := textinput.New()
	repeat.Placeholder = "Repetir contraseña"
	repeat.Width = 40
	repeat.EchoMode = textinput.EchoPassword
	repeat.EchoCharacter = '*'

	imagePath := textinput.New()
	imagePath.Placeholder = "Ruta de imagen de perfil"
	imagePath.Width = 40
	imagePath.SetValue(sess.ProfileImagePath)

	return profileForm{password: password, repeat: repeat, imagePath: imagePath}
}

func (m mainModel) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.profileForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.currentScreen = screenMenu
			return m, nil
		case "tab":
			f.setFocus((f.focus + 1) % 3)
			return m, nil
		case "shift+tab":
			f.setFocus((f.focus - 1 + 3) % 3)
			return m, nil
		case "enter", "ctrl+s":
			if f.submitting {
				return m, nil
			}

			password := f.password.Value()
			if password != f.repeat.Value() {
				f.errMsg = "Las contraseñas no coinciden."
				return m, nil
			}
			imagePath := strings.TrimSpace(f.imagePath.Value())
			if password == "" && imagePath == m.session.ProfileImagePath {
				f.errMsg = "No hay cambios para guardar."
				return m, nil
			}

			f.errMsg = ""
			f.submitting = true
			return m, m.cmdSaveProfile(models.PasswordUpdate{
				UserID:           m.session.UserID,
				NewPassword:      password,
				ProfileImagePath: imagePath,
			})
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.password, cmd = f.password.Update(msg)
	case 1:
		f.repeat, cmd = f.repeat.Update(msg)
	case 2:
		f.imagePath, cmd = f.imagePath.Update(msg)
	}
	return m, cmd
}

func (m mainModel) cmdSaveProfile(update models.PasswordUpdate) tea.Cmd {
	ctx := m.ctx
	client := m.deps.Client
	return func() tea.Msg {
		return profileSavedMsg{err: client.UpdateUser(ctx, update)}
	}
}

func (m mainModel) onProfileSaved(msg profileSavedMsg) (tea.Model, tea.Cmd) {
	m.profileForm.submitting = false
	if msg.err != nil {
		m.deps.Logger.Err(msg.err).Msg("update profile")
		m.deps.Toasts.Notify(controller.KindError, "Error", "Hubo un problema al actualizar el perfil.")
		return m, nil
	}

	m.session.ProfileImagePath = strings.TrimSpace(m.profileForm.imagePath.Value())
	if err := m.deps.Sessions.Save(m.ctx, m.session); err != nil {
		m.deps.Logger.Err(err).Msg("persist session after profile update")
	}

	m.deps.Toasts.Notify(controller.KindSuccess, "Éxito", "¡Perfil actualizado exitosamente!")
	m.currentScreen = screenMenu
	return m, nil
}

func (f *profileForm) setFocus(idx int) {
	f.password.Blur()
	f.repeat.Blur()
	f.imagePath.Blur()

	f.focus = idx
	switch idx {
	case 0:
		f.password.Focus()
	case 1:
		f.repeat.Focus()
	case 2:
		f.imagePath.Focus()
	}
}

func (m mainModel) viewProfile() string {
	f := m.profileForm

	var b strings.Builder
	b.WriteString("Usuario     : " + m.session.Username + "\n\n")
	b.WriteString("Contraseña  : [ " + f.password.View() + " ]\n")
	b.WriteString("Repetir     : [ " + f.repeat.View() + " ]\n")
	b.WriteString("Imagen      : [ " + f.imagePath.View() + " ]\n")

	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+f.errMsg) + "\n")
	}
	if f.submitting {
		b.WriteString("\nGuardando...\n")
	}

	return renderPage("MI PERFIL", strings.TrimRight(b.String(), "\n"),
		"tab: sig. campo │ enter: guardar │ esc: menú")
}
