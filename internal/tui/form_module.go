package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/models"
)

// moduleForm edits the security-module draft.
type moduleForm struct {
	inputs []textinput.Model // name, description, position

	state      bool
	focus      int
	editing    bool
	submitting bool
	errMsg     string
}

func newModuleForm(deps Deps) moduleForm {
	draft := deps.Modules.Draft()

	name := textinput.New()
	name.Placeholder = "Nombre"
	name.Width = 40
	name.SetValue(draft.Name)
	name.Focus()

	description := textinput.New()
	description.Placeholder = "Descripción"
	description.Width = 40
	description.SetValue(draft.Description)

	position := textinput.New()
	position.Placeholder = "Posición"
	position.Width = 40
	if draft.Position != 0 {
		position.SetValue(strconv.Itoa(draft.Position))
	}

	return moduleForm{
		inputs:  []textinput.Model{name, description, position},
		state:   draft.State,
		editing: draft.ID != 0,
	}
}

func (m mainModel) updateModuleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.moduleForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			f.setFocus((f.focus + 1) % len(f.inputs))
			return m, nil
		case "shift+tab":
			f.setFocus((f.focus - 1 + len(f.inputs)) % len(f.inputs))
			return m, nil
		case "ctrl+t":
			f.state = !f.state
			return m, nil
		case "enter", "ctrl+s":
			if f.submitting {
				return m, nil
			}
			return m.submitModuleForm()
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return m, cmd
}

func (m mainModel) submitModuleForm() (tea.Model, tea.Cmd) {
	f := &m.moduleForm

	var position int
	if raw := strings.TrimSpace(f.inputs[2].Value()); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			f.errMsg = "La posición debe ser un número entero."
			return m, nil
		}
		position = parsed
	}

	f.errMsg = ""
	updateErr := m.deps.Modules.UpdateDraft(func(draft *models.Module) {
		draft.Name = strings.TrimSpace(f.inputs[0].Value())
		draft.Description = strings.TrimSpace(f.inputs[1].Value())
		draft.Position = position
		draft.State = f.state
	})
	if updateErr != nil {
		return m, nil
	}

	f.submitting = true
	ctx := m.ctx
	modules := m.deps.Modules
	return m, func() tea.Msg {
		return actionDoneMsg{err: modules.Submit(ctx)}
	}
}

func (f *moduleForm) setFocus(idx int) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.focus = idx
	f.inputs[idx].Focus()
}

func (m mainModel) viewModuleForm() string {
	f := m.moduleForm

	var b strings.Builder
	b.WriteString("Nombre      : [ " + f.inputs[0].View() + " ]\n")
	b.WriteString("Descripción : [ " + f.inputs[1].View() + " ]\n")
	b.WriteString("Posición    : [ " + f.inputs[2].View() + " ]\n")
	b.WriteString("Estado      : " + boolLabel(f.state) + "  [ctrl+t: cambiar]\n")

	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+f.errMsg) + "\n")
	}
	if f.submitting {
		b.WriteString("\nGuardando...\n")
	}

	title := "NUEVO MÓDULO"
	if f.editing {
		title = "EDITAR MÓDULO"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: sig. campo │ enter: guardar │ esc: cancelar")
}
