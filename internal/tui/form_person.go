package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/models"
)

// personForm edits the persona draft: identity fields, birth date, and the
// city typeahead picker.
type personForm struct {
	inputs []textinput.Model // firstName, lastName, email, typeDocument, document, addres, phone, birth
	city   picker

	state      bool
	focus      int
	editing    bool
	submitting bool
	errMsg     string
}

const personCityWidget = 8

func newPersonForm(deps Deps) personForm {
	draft := deps.Persons.Draft()

	mk := func(placeholder, value string) textinput.Model {
		input := textinput.New()
		input.Placeholder = placeholder
		input.Width = 40
		input.SetValue(value)
		return input
	}

	phone := ""
	if draft.Phone != 0 {
		phone = strconv.FormatInt(draft.Phone, 10)
	}

	inputs := []textinput.Model{
		mk("Nombres", draft.FirstName),
		mk("Apellidos", draft.LastName),
		mk("Correo", draft.Email),
		mk("Tipo de documento (CC, TI...)", draft.TypeDocument),
		mk("Documento", draft.Document),
		mk("Dirección", draft.Addres),
		mk("Teléfono", phone),
		mk("Fecha de nacimiento (aaaa-mm-dd)", draft.BirthOfDate.Display()),
	}
	inputs[0].Focus()

	cities := deps.Lookups.Cities
	city := newPicker("Buscar ciudad...", func(q string) []option {
		return cacheOptions(cities.Search(q),
			func(c models.City) int64 { return c.ID },
			func(c models.City) string { return c.Name })
	}, false)

	f := personForm{
		inputs:  inputs,
		city:    city,
		state:   draft.State,
		editing: draft.ID != 0,
	}
	if f.editing {
		f.city.preselect(draft.CityID, cities.Resolve(draft.CityID))
	} else {
		f.state = true
	}
	return f
}

func (m mainModel) updatePersonForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.personForm
	widgets := len(f.inputs) + 1

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
		case "ctrl+s":
			if f.submitting {
				return m, nil
			}
			return m.submitPersonForm()
		}

		if f.focus == personCityWidget && f.city.handleKey(keyMsg) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	if f.focus == personCityWidget {
		f.city, cmd = f.city.update(msg)
	} else {
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	}
	return m, cmd
}

func (m mainModel) submitPersonForm() (tea.Model, tea.Cmd) {
	f := &m.personForm

	var phone int64
	if raw := strings.TrimSpace(f.inputs[6].Value()); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			f.errMsg = "El teléfono debe ser numérico."
			return m, nil
		}
		phone = parsed
	}

	birth, err := models.ParseDate(f.inputs[7].Value())
	if err != nil {
		f.errMsg = "La fecha de nacimiento debe tener el formato aaaa-mm-dd."
		return m, nil
	}

	f.errMsg = ""
	updateErr := m.deps.Persons.UpdateDraft(func(draft *models.Person) {
		draft.FirstName = strings.TrimSpace(f.inputs[0].Value())
		draft.LastName = strings.TrimSpace(f.inputs[1].Value())
		draft.Email = strings.TrimSpace(f.inputs[2].Value())
		draft.TypeDocument = strings.TrimSpace(f.inputs[3].Value())
		draft.Document = strings.TrimSpace(f.inputs[4].Value())
		draft.Addres = strings.TrimSpace(f.inputs[5].Value())
		draft.Phone = phone
		draft.BirthOfDate = birth
		draft.CityID = f.city.chosen.id
		draft.State = f.state
	})
	if updateErr != nil {
		return m, nil
	}

	f.submitting = true
	ctx := m.ctx
	persons := m.deps.Persons
	return m, func() tea.Msg {
		return actionDoneMsg{err: persons.Submit(ctx)}
	}
}

func (f *personForm) setFocus(idx int) {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
	f.city.blur()

	f.focus = idx
	if idx == personCityWidget {
		f.city.focus()
		return
	}
	f.inputs[idx].Focus()
}

func (m mainModel) viewPersonForm() string {
	f := m.personForm

	labels := []string{
		"Nombres    ", "Apellidos  ", "Correo     ", "Tipo doc.  ",
		"Documento  ", "Dirección  ", "Teléfono   ", "Nacimiento ",
	}

	var b strings.Builder
	for i, label := range labels {
		b.WriteString(label + ": [ " + f.inputs[i].View() + " ]\n")
	}
	b.WriteString("Ciudad     : " + f.city.view() + "\n")
	b.WriteString("Estado     : " + boolLabel(f.state) + "  [ctrl+t: cambiar]\n")

	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+f.errMsg) + "\n")
	}
	if f.submitting {
		b.WriteString("\nGuardando...\n")
	}

	title := "NUEVA PERSONA"
	if f.editing {
		title = "EDITAR PERSONA"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: sig. campo │ ctrl+s: guardar │ esc: cancelar")
}
