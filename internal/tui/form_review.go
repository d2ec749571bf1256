package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/models"
)

// reviewForm edits the revisión técnica draft: visit fields plus one
// calification input per checklist row.
type reviewForm struct {
	inputs        []textinput.Model // date, technician, farm, cropCode, producer, observations
	checklist     []models.ChecklistItem
	califications []textinput.Model

	state      bool
	focus      int
	editing    bool
	submitting bool
	errMsg     string
}

func newReviewForm(deps Deps) reviewForm {
	draft := deps.Reviews.Draft()

	mk := func(placeholder, value string) textinput.Model {
		input := textinput.New()
		input.Placeholder = placeholder
		input.Width = 40
		input.SetValue(value)
		return input
	}

	inputs := []textinput.Model{
		mk("Fecha (aaaa-mm-dd)", draft.DateReview.Display()),
		mk("Técnico", draft.Technician),
		mk("Finca", draft.Farm),
		mk("Código de cultivo", draft.CropCode),
		mk("Productor", draft.Producer),
		mk("Observaciones", draft.Observations),
	}
	inputs[0].Focus()

	checklist := draft.Checklists.Qualifications
	califications := make([]textinput.Model, len(checklist))
	for i, item := range checklist {
		value := ""
		if item.Calification != 0 {
			value = strconv.Itoa(item.Calification)
		}
		califications[i] = mk("Calificación (1-5)", value)
		califications[i].Width = 10
	}

	return reviewForm{
		inputs:        inputs,
		checklist:     checklist,
		califications: califications,
		state:         draft.State,
		editing:       draft.ID != 0,
	}
}

func (m mainModel) updateReviewForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.reviewForm
	widgets := len(f.inputs) + len(f.califications)

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			f.setFocus((f.focus + 1) % widgets)
			return m, nil
		case "shift+tab":
			f.setFocus((f.focus - 1 + widgets) % widgets)
			return m, nil
		case "ctrl+t":
			f.state = !f.state
			return m, nil
		case "enter", "ctrl+s":
			if f.submitting {
				return m, nil
			}
			return m.submitReviewForm()
		}
	}

	var cmd tea.Cmd
	if f.focus < len(f.inputs) {
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	} else {
		idx := f.focus - len(f.inputs)
		f.califications[idx], cmd = f.califications[idx].Update(msg)
	}
	return m, cmd
}

func (m mainModel) submitReviewForm() (tea.Model, tea.Cmd) {
	f := &m.reviewForm

	date, err := models.ParseDate(f.inputs[0].Value())
	if err != nil {
		f.errMsg = "La fecha debe tener el formato aaaa-mm-dd."
		return m, nil
	}

	checklist := make([]models.ChecklistItem, len(f.checklist))
	copy(checklist, f.checklist)
	for i := range checklist {
		raw := strings.TrimSpace(f.califications[i].Value())
		if raw == "" {
			continue
		}
		calification, parseErr := strconv.Atoi(raw)
		if parseErr != nil || calification < 1 || calification > 5 {
			f.errMsg = "Las calificaciones deben ser números entre 1 y 5."
			return m, nil
		}
		checklist[i].Calification = calification
	}

	f.errMsg = ""
	updateErr := m.deps.Reviews.UpdateDraft(func(draft *models.TechnicalReview) {
		draft.DateReview = date
		draft.Technician = strings.TrimSpace(f.inputs[1].Value())
		draft.Farm = strings.TrimSpace(f.inputs[2].Value())
		draft.CropCode = strings.TrimSpace(f.inputs[3].Value())
		draft.Producer = strings.TrimSpace(f.inputs[4].Value())
		draft.Observations = strings.TrimSpace(f.inputs[5].Value())
		draft.State = f.state
		draft.Checklists.Qualifications = checklist
	})
	if updateErr != nil {
		return m, nil
	}

	f.submitting = true
	ctx := m.ctx
	reviews := m.deps.Reviews
	return m, func() tea.Msg {
		return actionDoneMsg{err: reviews.Submit(ctx)}
	}
}

func (f *reviewForm) setFocus(idx int) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	for i := range f.califications {
		f.califications[i].Blur()
	}

	f.focus = idx
	if idx < len(f.inputs) {
		f.inputs[idx].Focus()
		return
	}
	f.califications[idx-len(f.inputs)].Focus()
}

func (m mainModel) viewReviewForm() string {
	f := m.reviewForm

	labels := []string{
		"Fecha        ", "Técnico      ", "Finca        ",
		"Cód. cultivo ", "Productor    ", "Observaciones",
	}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label + ": [ " + f.inputs[i].View() + " ]\n")
	}
	b.WriteString("Estado       : " + boolLabel(f.state) + "  [ctrl+t: cambiar]\n")

	b.WriteString("\n[ LISTA DE CHEQUEO ]\n")
	for i, item := range f.checklist {
		b.WriteString("- " + item.Observation + "\n")
		b.WriteString("  Calificación: [ " + f.califications[i].View() + " ]\n")
	}

	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+f.errMsg) + "\n")
	}
	if f.submitting {
		b.WriteString("\nGuardando...\n")
	}

	title := "NUEVA REVISIÓN TÉCNICA"
	if f.editing {
		title = "EDITAR REVISIÓN TÉCNICA"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: sig. campo │ enter: guardar │ esc: cancelar")
}
