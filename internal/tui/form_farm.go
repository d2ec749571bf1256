package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/internal/resources"
	"github.com/fincaudita/agroconsole/models"
)

// farmForm edits the finca draft held by the farm controller: scalar fields,
// city and user typeahead pickers, and the nested lot subform (crop
// multi-picker plus hectares).
type farmForm struct {
	name      textinput.Model
	addres    textinput.Model
	dimension textinput.Model
	city      picker
	user      picker
	crops     picker
	hectares  textinput.Model

	state      bool
	focus      int
	editing    bool
	submitting bool
	errMsg     string
}

const farmWidgets = 7

func newFarmForm(deps Deps) farmForm {
	draft := deps.Farms.Draft()

	name := textinput.New()
	name.Placeholder = "Nombre"
	name.Width = 40
	name.SetValue(draft.Name)
	name.Focus()

	addres := textinput.New()
	addres.Placeholder = "Dirección"
	addres.Width = 40
	addres.SetValue(draft.Addres)

	dimension := textinput.New()
	dimension.Placeholder = "Dimensión (ha)"
	dimension.Width = 40
	if draft.Dimension > 0 {
		dimension.SetValue(formatFloat(draft.Dimension))
	}

	cities := deps.Lookups.Cities
	city := newPicker("Buscar ciudad...", func(q string) []option {
		return cacheOptions(cities.Search(q),
			func(c models.City) int64 { return c.ID },
			func(c models.City) string { return c.Name })
	}, false)

	users := deps.Lookups.Users
	user := newPicker("Buscar usuario...", func(q string) []option {
		return cacheOptions(users.Search(q),
			func(u models.User) int64 { return u.ID },
			func(u models.User) string { return u.Username })
	}, false)

	cropsCache := deps.Lookups.Crops
	crops := newPicker("Buscar cultivo...", func(q string) []option {
		return cacheOptions(cropsCache.Search(q),
			func(c models.Crop) int64 { return c.ID },
			func(c models.Crop) string { return c.Name })
	}, true)

	hectares := textinput.New()
	hectares.Placeholder = "Hectáreas del lote"
	hectares.Width = 40

	f := farmForm{
		name:      name,
		addres:    addres,
		dimension: dimension,
		city:      city,
		user:      user,
		crops:     crops,
		hectares:  hectares,
		state:     draft.State,
		editing:   draft.ID != 0,
	}

	if f.editing {
		f.city.preselect(draft.CityID, cities.Resolve(draft.CityID))
		f.user.preselect(draft.UserID, users.Resolve(draft.UserID))
	} else {
		f.state = true
	}
	return f
}

func (m mainModel) updateFarmForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.farmForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			f.setFocus((f.focus + 1) % farmWidgets)
			return m, nil
		case "shift+tab":
			f.setFocus((f.focus - 1 + farmWidgets) % farmWidgets)
			return m, nil
		case "ctrl+t":
			f.state = !f.state
			return m, nil
		case "ctrl+l":
			hectares, err := strconv.ParseFloat(strings.TrimSpace(f.hectares.Value()), 64)
			if err != nil {
				hectares = 0
			}
			if addErr := resources.AddFarmLots(m.deps.Farms, f.crops.selectedIDs(), hectares); addErr == nil {
				f.crops.reset()
				f.hectares.SetValue("")
			}
			return m, nil
		case "ctrl+s":
			if f.submitting {
				return m, nil
			}
			return m.submitFarmForm()
		}

		if p := f.focusedPicker(); p != nil && p.handleKey(keyMsg) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.name, cmd = f.name.Update(msg)
	case 1:
		f.addres, cmd = f.addres.Update(msg)
	case 2:
		f.dimension, cmd = f.dimension.Update(msg)
	case 3:
		f.city, cmd = f.city.update(msg)
	case 4:
		f.user, cmd = f.user.update(msg)
	case 5:
		f.crops, cmd = f.crops.update(msg)
	case 6:
		f.hectares, cmd = f.hectares.Update(msg)
	}
	return m, cmd
}

func (m mainModel) submitFarmForm() (tea.Model, tea.Cmd) {
	f := &m.farmForm

	dimension, err := strconv.ParseFloat(strings.TrimSpace(f.dimension.Value()), 64)
	if err != nil && strings.TrimSpace(f.dimension.Value()) != "" {
		f.errMsg = "La dimensión debe ser un número."
		return m, nil
	}

	f.errMsg = ""
	updateErr := m.deps.Farms.UpdateDraft(func(draft *models.Farm) {
		draft.Name = strings.TrimSpace(f.name.Value())
		draft.Addres = strings.TrimSpace(f.addres.Value())
		draft.Dimension = dimension
		draft.CityID = f.city.chosen.id
		draft.UserID = f.user.chosen.id
		draft.State = f.state
	})
	if updateErr != nil {
		return m, nil
	}

	f.submitting = true
	ctx := m.ctx
	farms := m.deps.Farms
	return m, func() tea.Msg {
		return actionDoneMsg{err: farms.Submit(ctx)}
	}
}

func (f *farmForm) setFocus(idx int) {
	f.name.Blur()
	f.addres.Blur()
	f.dimension.Blur()
	f.city.blur()
	f.user.blur()
	f.crops.blur()
	f.hectares.Blur()

	f.focus = idx
	switch idx {
	case 0:
		f.name.Focus()
	case 1:
		f.addres.Focus()
	case 2:
		f.dimension.Focus()
	case 3:
		f.city.focus()
	case 4:
		f.user.focus()
	case 5:
		f.crops.focus()
	case 6:
		f.hectares.Focus()
	}
}

func (f *farmForm) focusedPicker() *picker {
	switch f.focus {
	case 3:
		return &f.city
	case 4:
		return &f.user
	case 5:
		return &f.crops
	}
	return nil
}

func (m mainModel) viewFarmForm() string {
	f := m.farmForm
	draft := m.deps.Farms.Draft()

	var b strings.Builder
	b.WriteString("Nombre     : [ " + f.name.View() + " ]\n")
	b.WriteString("Dirección  : [ " + f.addres.View() + " ]\n")
	b.WriteString("Dimensión  : [ " + f.dimension.View() + " ]\n")
	b.WriteString("Ciudad     : " + f.city.view() + "\n")
	b.WriteString("Usuario    : " + f.user.view() + "\n")
	b.WriteString("Estado     : " + boolLabel(f.state) + "  [ctrl+t: cambiar]\n")
	b.WriteString("\n[ LOTES ]\n")
	b.WriteString("Cultivos   : " + f.crops.view() + "\n")
	b.WriteString("Hectáreas  : [ " + f.hectares.View() + " ]\n")
	b.WriteString("Agregados  : " + draft.LotSummary(m.deps.Lookups.Crops.Resolve) + "\n")

	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+f.errMsg) + "\n")
	}
	if f.submitting {
		b.WriteString("\nGuardando...\n")
	}

	title := "NUEVA FINCA"
	if f.editing {
		title = "EDITAR FINCA"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: sig. campo │ ctrl+l: agregar lote │ ctrl+s: guardar │ esc: cancelar")
}
