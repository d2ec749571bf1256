package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fincaudita/agroconsole/internal/controller"
	"github.com/fincaudita/agroconsole/models"
)

type screen int

const (
	screenMenu screen = iota
	screenList
	screenForm
	screenProfile
)

type section int

const (
	sectionFarms section = iota
	sectionPersons
	sectionModules
	sectionTreatments
	sectionReviews
	sectionProfile
)

var menuEntries = []struct {
	label   string
	section section
}{
	{"Fincas", sectionFarms},
	{"Personas", sectionPersons},
	{"Módulos", sectionModules},
	{"Tratamientos", sectionTreatments},
	{"Revisiones Técnicas", sectionReviews},
	{"Mi Perfil", sectionProfile},
}

// mainModel is the root model of the signed-in console: menu, resource list
// screens, edit forms, profile, plus the confirmation overlay and toasts.
type mainModel struct {
	ctx     context.Context
	deps    Deps
	session models.Session

	currentScreen screen
	menuIdx       int

	active  section
	panes   map[section]resourcePane
	listIdx int
	loading bool

	farmForm      farmForm
	personForm    personForm
	moduleForm    moduleForm
	treatmentForm treatmentForm
	reviewForm    reviewForm
	profileForm   profileForm

	confirm  confirmModel
	toast    toast
	toastSeq uint64

	logout bool
}

func newMainModel(ctx context.Context, deps Deps, sess models.Session) mainModel {
	return mainModel{
		ctx:     ctx,
		deps:    deps,
		session: sess,
		panes:   newPanes(deps),
	}
}

func newPanes(deps Deps) map[section]resourcePane {
	cities := deps.Lookups.Cities
	users := deps.Lookups.Users

	return map[section]resourcePane{
		sectionFarms: newPane(deps.Farms,
			"FINCAS",
			[]string{"Nombre", "Ciudad", "Usuario", "Dimensión", "Lotes", "Estado"},
			func(f models.Farm) int64 { return f.ID },
			func(f models.Farm) []string {
				return []string{
					f.Name,
					cities.Resolve(f.CityID),
					users.Resolve(f.UserID),
					formatFloat(f.Dimension),
					f.LotString,
					boolLabel(f.State),
				}
			},
			func(f models.Farm) string { return f.Name },
		),
		sectionPersons: newPane(deps.Persons,
			"PERSONAS",
			[]string{"Nombre", "Correo", "Documento", "Ciudad", "Estado"},
			func(p models.Person) int64 { return p.ID },
			func(p models.Person) []string {
				return []string{
					p.FullName(),
					p.Email,
					p.TypeDocument + " " + p.Document,
					p.CityName,
					boolLabel(p.State),
				}
			},
			func(p models.Person) string { return p.FullName() },
		),
		sectionModules: newPane(deps.Modules,
			"MÓDULOS",
			[]string{"Nombre", "Descripción", "Posición", "Estado"},
			func(m models.Module) int64 { return m.ID },
			func(m models.Module) []string {
				return []string{
					m.Name,
					m.Description,
					strconv.Itoa(m.Position),
					boolLabel(m.State),
				}
			},
			func(m models.Module) string { return m.Name },
		),
		sectionTreatments: newPane(deps.Treatments,
			"TRATAMIENTOS",
			[]string{"Tipo", "Fecha", "Mezcla", "Lotes", "Suministros", "Estado"},
			func(t models.Treatment) int64 { return t.ID },
			func(t models.Treatment) []string {
				return []string{
					t.TypeTreatment,
					t.DateTreatment.Display(),
					t.QuantityMix,
					strconv.Itoa(len(t.LotList)),
					strconv.Itoa(len(t.SupplieList)),
					boolLabel(t.State),
				}
			},
			func(t models.Treatment) string { return t.TypeTreatment },
		),
		sectionReviews: newPane(deps.Reviews,
			"REVISIONES TÉCNICAS",
			[]string{"Finca", "Técnico", "Fecha", "Productor", "Estado"},
			func(r models.TechnicalReview) int64 { return r.ID },
			func(r models.TechnicalReview) []string {
				return []string{
					r.Farm,
					r.Technician,
					r.DateReview.Display(),
					r.Producer,
					boolLabel(r.State),
				}
			},
			func(r models.TechnicalReview) string { return r.Farm + " - " + r.Technician },
		),
	}
}

func (m mainModel) Init() tea.Cmd {
	return tea.Batch(
		m.deps.Prompter.cmdAwaitConfirm(),
		m.deps.Toasts.cmdAwaitToast(),
		m.cmdLoadLookups(),
	)
}

func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case confirmRequestMsg:
		req := msg.req
		m.confirm.req = &req
		return m, nil
	case toastMsg:
		m.toast = msg.toast
		m.toastSeq++
		return m, cmdClearToast(m.toastSeq)
	case clearToastMsg:
		// Only the clear scheduled by the latest toast may wipe it.
		if msg.seq == m.toastSeq {
			m.toast = toast{}
		}
		return m, nil
	case lookupsLoadedMsg:
		if msg.err != nil {
			m.deps.Logger.Err(msg.err).Msg("load reference caches")
		}
		return m, nil
	case listLoadedMsg:
		m.loading = false
		m.clampListIdx()
		return m, nil
	case actionDoneMsg:
		return m.onActionDone()
	case profileSavedMsg:
		return m.onProfileSaved(msg)
	case copiedMsg:
		if msg.err != nil {
			m.deps.Logger.Err(msg.err).Msg("copy to clipboard")
		}
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.confirm.req != nil {
			return m.updateConfirm(keyMsg)
		}
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	switch m.currentScreen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenList:
		return m.updateList(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenProfile:
		return m.updateProfile(msg)
	}
	return m, nil
}

func (m mainModel) View() string {
	var body string
	switch m.currentScreen {
	case screenMenu:
		body = m.viewMenu()
	case screenList:
		body = m.viewList()
	case screenForm:
		body = m.viewForm()
	case screenProfile:
		body = m.viewProfile()
	}

	if !m.toast.empty() {
		body += "\n\n" + m.toast.render()
	}
	if m.confirm.req != nil {
		body += "\n\n" + m.confirm.View()
	}
	return appStyle.Render(body)
}

func (m mainModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.confirm.req.reply <- true
	case "n", "esc":
		m.confirm.req.reply <- false
	default:
		return m, nil
	}
	m.confirm.req = nil
	return m, m.deps.Prompter.cmdAwaitConfirm()
}

func (m mainModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.menuIdx > 0 {
			m.menuIdx--
		}
	case "down", "j":
		if m.menuIdx < len(menuEntries)-1 {
			m.menuIdx++
		}
	case "ctrl+l":
		m.logout = true
		return m, tea.Quit
	case "enter":
		entry := menuEntries[m.menuIdx]
		if entry.section == sectionProfile {
			m.currentScreen = screenProfile
			m.profileForm = newProfileForm(m.session)
			return m, nil
		}
		m.active = entry.section
		m.currentScreen = screenList
		m.listIdx = 0
		m.loading = true
		return m, m.cmdLoadPane()
	}
	return m, nil
}

func (m mainModel) viewMenu() string {
	var b strings.Builder
	b.WriteString("Bienvenido, " + m.session.Username + "\n\n")
	for i, entry := range menuEntries {
		cursor := "  "
		if i == m.menuIdx {
			cursor = "> "
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, i+1, entry.label))
	}
	return renderPage(
		"FINCAUDITA │ MENÚ PRINCIPAL",
		strings.TrimRight(b.String(), "\n"),
		"enter: abrir │ ↑/↓: navegación │ ctrl+l: cerrar sesión",
	)
}

func (m mainModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	pane := m.panes[m.active]
	rows := pane.Rows()

	switch keyMsg.String() {
	case "esc":
		m.currentScreen = screenMenu
	case "up", "k":
		if m.listIdx > 0 {
			m.listIdx--
		}
	case "down", "j":
		if m.listIdx < len(rows)-1 {
			m.listIdx++
		}
	case " ":
		if row, ok := m.currentRow(rows); ok {
			pane.SetSelected(row.id, !row.selected)
		}
	case "ctrl+a":
		pane.ToggleAll(!pane.AllSelected())
	case "r":
		m.loading = true
		return m, m.cmdLoadPane()
	case "n":
		pane.OpenCreate()
		m.openForm()
		return m, nil
	case "e":
		row, ok := m.currentRow(rows)
		if !ok {
			return m, nil
		}
		if pane.OpenEdit(row.id) {
			m.openForm()
		}
		return m, nil
	case "ctrl+d":
		row, ok := m.currentRow(rows)
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(row.id)
	case "ctrl+x":
		if !pane.AnySelected() {
			m.deps.Toasts.Notify(controller.KindWarning, "Advertencia", "No hay registros seleccionados.")
			return m, nil
		}
		return m, m.cmdDeleteSelected()
	case "c":
		row, ok := m.currentRow(rows)
		if !ok {
			return m, nil
		}
		if text, ok := pane.CopyText(row.id); ok {
			return m, cmdCopyToClipboard(text)
		}
	}
	return m, nil
}

func (m mainModel) viewList() string {
	pane := m.panes[m.active]

	if m.loading {
		return renderPage(pane.Title(), "Cargando registros...", "")
	}

	rows := pane.Rows()
	var b strings.Builder

	headers := pane.Headers()
	b.WriteString("      " + strings.Join(headers, " │ ") + "\n")
	b.WriteString(strings.Repeat("─", 6+len(strings.Join(headers, " │ "))) + "\n")

	if len(rows) == 0 {
		b.WriteString("No hay registros\n")
	}
	for i, row := range rows {
		cursor := "  "
		if i == m.listIdx {
			cursor = "> "
		}
		cells := make([]string, len(row.cells))
		for j := range row.cells {
			cells[j] = fitText(row.cells[j], 24)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, checkbox(row.selected), strings.Join(cells, " │ ")))
	}

	return renderPage(
		pane.Title(),
		strings.TrimRight(b.String(), "\n"),
		"n: nuevo │ e: editar │ ctrl+d: eliminar │ espacio: marcar │ ctrl+a: todos │ ctrl+x: eliminar marcados │ c: copiar │ r: actualizar │ esc: menú",
	)
}

func (m mainModel) currentRow(rows []paneRow) (paneRow, bool) {
	if len(rows) == 0 || m.listIdx < 0 || m.listIdx >= len(rows) {
		return paneRow{}, false
	}
	return rows[m.listIdx], true
}

func (m *mainModel) clampListIdx() {
	rows := m.panes[m.active].Rows()
	if m.listIdx >= len(rows) {
		m.listIdx = len(rows) - 1
	}
	if m.listIdx < 0 {
		m.listIdx = 0
	}
}

func (m *mainModel) openForm() {
	switch m.active {
	case sectionFarms:
		m.farmForm = newFarmForm(m.deps)
	case sectionPersons:
		m.personForm = newPersonForm(m.deps)
	case sectionModules:
		m.moduleForm = newModuleForm(m.deps)
	case sectionTreatments:
		m.treatmentForm = newTreatmentForm(m.deps)
	case sectionReviews:
		m.reviewForm = newReviewForm(m.deps)
	}
	m.currentScreen = screenForm
}

func (m mainModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.panes[m.active].Close()
		m.currentScreen = screenList
		return m, nil
	}

	switch m.active {
	case sectionFarms:
		return m.updateFarmForm(msg)
	case sectionPersons:
		return m.updatePersonForm(msg)
	case sectionModules:
		return m.updateModuleForm(msg)
	case sectionTreatments:
		return m.updateTreatmentForm(msg)
	case sectionReviews:
		return m.updateReviewForm(msg)
	}
	return m, nil
}

func (m mainModel) viewForm() string {
	switch m.active {
	case sectionFarms:
		return m.viewFarmForm()
	case sectionPersons:
		return m.viewPersonForm()
	case sectionModules:
		return m.viewModuleForm()
	case sectionTreatments:
		return m.viewTreatmentForm()
	case sectionReviews:
		return m.viewReviewForm()
	}
	return ""
}

// onActionDone resolves a finished submit. Success closes the modal on the
// controller side, so the open flag decides whether the form stays up.
func (m mainModel) onActionDone() (tea.Model, tea.Cmd) {
	m.setFormSubmitting(false)

	if m.currentScreen == screenForm {
		switch m.active {
		case sectionFarms:
			if !m.deps.Farms.ModalOpen() {
				m.currentScreen = screenList
			}
		case sectionPersons:
			if !m.deps.Persons.ModalOpen() {
				m.currentScreen = screenList
			}
		case sectionModules:
			if !m.deps.Modules.ModalOpen() {
				m.currentScreen = screenList
			}
		case sectionTreatments:
			if !m.deps.Treatments.ModalOpen() {
				m.currentScreen = screenList
			}
		case sectionReviews:
			if !m.deps.Reviews.ModalOpen() {
				m.currentScreen = screenList
			}
		}
	}

	m.clampListIdx()
	return m, nil
}

func (m *mainModel) setFormSubmitting(v bool) {
	m.farmForm.submitting = v
	m.personForm.submitting = v
	m.moduleForm.submitting = v
	m.treatmentForm.submitting = v
	m.reviewForm.submitting = v
}

func (m mainModel) cmdLoadLookups() tea.Cmd {
	ctx := m.ctx
	lookups := m.deps.Lookups
	return func() tea.Msg {
		return lookupsLoadedMsg{err: lookups.LoadAll(ctx)}
	}
}

func (m mainModel) cmdLoadPane() tea.Cmd {
	ctx := m.ctx
	pane := m.panes[m.active]
	return func() tea.Msg {
		return listLoadedMsg{err: pane.Load(ctx)}
	}
}

func (m mainModel) cmdDelete(id int64) tea.Cmd {
	ctx := m.ctx
	pane := m.panes[m.active]
	return func() tea.Msg {
		return actionDoneMsg{err: pane.Delete(ctx, id)}
	}
}

func (m mainModel) cmdDeleteSelected() tea.Cmd {
	ctx := m.ctx
	pane := m.panes[m.active]
	return func() tea.Msg {
		return actionDoneMsg{err: pane.DeleteSelected(ctx)}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
