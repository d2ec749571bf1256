package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/internal/resources"
	"github.com/fincaudita/agroconsole/models"
)

// treatmentForm edits the tratamiento draft: scalar fields plus the two
// nested subforms, a lot multi-picker and a supply-with-dose picker.
type treatmentForm struct {
	date        textinput.Model
	treatment   textinput.Model
	quantityMix textinput.Model
	lots        picker
	supply      picker
	dose        textinput.Model

	state      bool
	focus      int
	editing    bool
	submitting bool
	errMsg     string
}

const treatmentWidgets = 6

func newTreatmentForm(deps Deps) treatmentForm {
	draft := deps.Treatments.Draft()

	date := textinput.New()
	date.Placeholder = "Fecha (aaaa-mm-dd)"
	date.Width = 40
	date.SetValue(draft.DateTreatment.Display())
	date.Focus()

	treatment := textinput.New()
	treatment.Placeholder = "Tipo de tratamiento"
	treatment.Width = 40
	treatment.SetValue(draft.TypeTreatment)

	quantityMix := textinput.New()
	quantityMix.Placeholder = "Cantidad de mezcla"
	quantityMix.Width = 40
	quantityMix.SetValue(draft.QuantityMix)

	lotsCache := deps.Lookups.Lots
	lots := newPicker("Buscar lote...", func(q string) []option {
		return cacheOptions(lotsCache.Search(q),
			func(l models.LotRef) int64 { return l.ID },
			func(l models.LotRef) string { return l.DisplayName() })
	}, true)

	supplies := deps.Lookups.Supplies
	supply := newPicker("Buscar suministro...", func(q string) []option {
		return cacheOptions(supplies.Search(q),
			func(s models.Supply) int64 { return s.ID },
			func(s models.Supply) string { return s.Name })
	}, false)

	dose := textinput.New()
	dose.Placeholder = "Dosis"
	dose.Width = 40

	return treatmentForm{
		date:        date,
		treatment:   treatment,
		quantityMix: quantityMix,
		lots:        lots,
		supply:      supply,
		dose:        dose,
		state:       draft.State,
		editing:     draft.ID != 0,
	}
}

func (m mainModel) updateTreatmentForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f := &m.treatmentForm

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			f.setFocus((f.focus + 1) % treatmentWidgets)
			return m, nil
		case "shift+tab":
			f.setFocus((f.focus - 1 + treatmentWidgets) % treatmentWidgets)
			return m, nil
		case "ctrl+t":
			f.state = !f.state
			return m, nil
		case "ctrl+l":
			if err := resources.AddTreatmentLots(m.deps.Treatments, f.lots.selectedIDs()); err == nil {
				f.lots.reset()
			}
			return m, nil
		case "ctrl+u":
			return m.addTreatmentSupply()
		case "ctrl+s":
			if f.submitting {
				return m, nil
			}
			return m.submitTreatmentForm()
		}

		if p := f.focusedPicker(); p != nil && p.handleKey(keyMsg) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case 0:
		f.date, cmd = f.date.Update(msg)
	case 1:
		f.treatment, cmd = f.treatment.Update(msg)
	case 2:
		f.quantityMix, cmd = f.quantityMix.Update(msg)
	case 3:
		f.lots, cmd = f.lots.update(msg)
	case 4:
		f.supply, cmd = f.supply.update(msg)
	case 5:
		f.dose, cmd = f.dose.Update(msg)
	}
	return m, cmd
}

func (m mainModel) addTreatmentSupply() (tea.Model, tea.Cmd) {
	f := &m.treatmentForm

	var picked []models.TreatmentSupply
	if f.supply.chosen.id != 0 && strings.TrimSpace(f.dose.Value()) != "" {
		picked = append(picked, models.TreatmentSupply{
			SuppliesID: f.supply.chosen.id,
			Dose:       strings.TrimSpace(f.dose.Value()),
		})
	}

	if err := resources.AddTreatmentSupplies(m.deps.Treatments, picked); err == nil {
		f.supply.reset()
		f.dose.SetValue("")
	}
	return m, nil
}

func (m mainModel) submitTreatmentForm() (tea.Model, tea.Cmd) {
	f := &m.treatmentForm

	date, err := models.ParseDate(f.date.Value())
	if err != nil {
		f.errMsg = "La fecha debe tener el formato aaaa-mm-dd."
		return m, nil
	}

	f.errMsg = ""
	updateErr := m.deps.Treatments.UpdateDraft(func(draft *models.Treatment) {
		draft.DateTreatment = date
		draft.TypeTreatment = strings.TrimSpace(f.treatment.Value())
		draft.QuantityMix = strings.TrimSpace(f.quantityMix.Value())
		draft.State = f.state
	})
	if updateErr != nil {
		return m, nil
	}

	f.submitting = true
	ctx := m.ctx
	treatments := m.deps.Treatments
	return m, func() tea.Msg {
		return actionDoneMsg{err: treatments.Submit(ctx)}
	}
}

func (f *treatmentForm) setFocus(idx int) {
	f.date.Blur()
	f.treatment.Blur()
	f.quantityMix.Blur()
	f.lots.blur()
	f.supply.blur()
	f.dose.Blur()

	f.focus = idx
	switch idx {
	case 0:
		f.date.Focus()
	case 1:
		f.treatment.Focus()
	case 2:
		f.quantityMix.Focus()
	case 3:
		f.lots.focus()
	case 4:
		f.supply.focus()
	case 5:
		f.dose.Focus()
	}
}

func (f *treatmentForm) focusedPicker() *picker {
	switch f.focus {
	case 3:
		return &f.lots
	case 4:
		return &f.supply
	}
	return nil
}

func (m mainModel) viewTreatmentForm() string {
	f := m.treatmentForm
	draft := m.deps.Treatments.Draft()

	var b strings.Builder
	b.WriteString("Fecha       : [ " + f.date.View() + " ]\n")
	b.WriteString("Tipo        : [ " + f.treatment.View() + " ]\n")
	b.WriteString("Mezcla      : [ " + f.quantityMix.View() + " ]\n")
	b.WriteString("Estado      : " + boolLabel(f.state) + "  [ctrl+t: cambiar]\n")

	b.WriteString("\n[ LOTES ]\n")
	b.WriteString("Lotes       : " + f.lots.view() + "\n")
	b.WriteString("Agregados   : " + treatmentLotSummary(draft, m.deps.Lookups.Lots.Resolve) + "\n")

	b.WriteString("\n[ SUMINISTROS ]\n")
	b.WriteString("Suministro  : " + f.supply.view() + "\n")
	b.WriteString("Dosis       : [ " + f.dose.View() + " ]\n")
	b.WriteString("Agregados   : " + treatmentSupplySummary(draft, m.deps.Lookups.Supplies.Resolve) + "\n")

	if f.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+f.errMsg) + "\n")
	}
	if f.submitting {
		b.WriteString("\nGuardando...\n")
	}

	title := "NUEVO TRATAMIENTO"
	if f.editing {
		title = "EDITAR TRATAMIENTO"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: sig. campo │ ctrl+l: agregar lotes │ ctrl+u: agregar suministro │ ctrl+s: guardar │ esc: cancelar")
}

func treatmentLotSummary(t models.Treatment, lotName func(int64) string) string {
	if len(t.LotList) == 0 {
		return "Ninguno"
	}
	names := make([]string, len(t.LotList))
	for i, lot := range t.LotList {
		names[i] = lotName(lot.LotID)
	}
	return strings.Join(names, ", ")
}

func treatmentSupplySummary(t models.Treatment, supplyName func(int64) string) string {
	if len(t.SupplieList) == 0 {
		return "Ninguno"
	}
	parts := make([]string, len(t.SupplieList))
	for i, supply := range t.SupplieList {
		parts[i] = fmt.Sprintf("%s (%s)", supplyName(supply.SuppliesID), supply.Dose)
	}
	return strings.Join(parts, ", ")
}
