package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincaudita/agroconsole/internal/controller"
)

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
}

func fixedSearch(options ...option) func(string) []option {
	return func(string) []option { return options }
}

func TestPickerIgnoresKeysWithoutSuggestions(t *testing.T) {
	p := newPicker("Ciudad", fixedSearch(), false)

	assert.False(t, p.handleKey(keyMsg("up")))
	assert.False(t, p.handleKey(keyMsg("enter")))
}

func TestPickerSingleSelect(t *testing.T) {
	p := newPicker("Ciudad", fixedSearch(), false)
	p.options = []option{{1, "Medellín"}, {2, "Bogotá"}, {3, "Bucaramanga"}}

	require.True(t, p.handleKey(keyMsg("down")))
	require.True(t, p.handleKey(keyMsg("down")))
	require.True(t, p.handleKey(keyMsg("up")))
	require.True(t, p.handleKey(keyMsg("enter")))

	assert.Equal(t, int64(2), p.chosen.id)
	assert.Equal(t, "Bogotá", p.input.Value())
	assert.Empty(t, p.options, "elegir cierra la lista de sugerencias")
}

func TestPickerCursorStaysInBounds(t *testing.T) {
	p := newPicker("Ciudad", fixedSearch(), false)
	p.options = []option{{1, "Medellín"}, {2, "Bogotá"}}

	p.handleKey(keyMsg("up"))
	assert.Equal(t, 0, p.idx)

	p.handleKey(keyMsg("down"))
	p.handleKey(keyMsg("down"))
	p.handleKey(keyMsg("down"))
	assert.Equal(t, 1, p.idx)
}

func TestPickerMultiSelectTogglesMembership(t *testing.T) {
	p := newPicker("Cultivos", fixedSearch(), true)
	p.options = []option{{1, "Café"}, {2, "Cacao"}}

	require.True(t, p.handleKey(keyMsg("enter")))
	assert.Equal(t, []int64{1}, p.selectedIDs())
	assert.NotEmpty(t, p.options, "en modo múltiple la lista queda abierta")

	p.handleKey(keyMsg("down"))
	require.True(t, p.handleKey(keyMsg("enter")))
	assert.Equal(t, []int64{1, 2}, p.selectedIDs())

	// a second enter on the same option removes it
	require.True(t, p.handleKey(keyMsg("enter")))
	assert.Equal(t, []int64{1}, p.selectedIDs())
}

func TestPickerPreselect(t *testing.T) {
	p := newPicker("Ciudad", fixedSearch(), false)
	p.preselect(3, "Bucaramanga")

	assert.Equal(t, int64(3), p.chosen.id)
	assert.Equal(t, "Bucaramanga", p.input.Value())
}

func TestPickerReset(t *testing.T) {
	p := newPicker("Cultivos", fixedSearch(), true)
	p.options = []option{{1, "Café"}}
	p.handleKey(keyMsg("enter"))
	p.input.SetValue("caf")

	p.reset()

	assert.Empty(t, p.input.Value())
	assert.Empty(t, p.options)
	assert.Empty(t, p.selectedIDs())
}

func TestPickerUpdateRefreshesSuggestions(t *testing.T) {
	var lastQuery string
	p := newPicker("Ciudad", func(query string) []option {
		lastQuery = query
		return []option{{1, "Medellín"}}
	}, false)
	p.focus()

	p, _ = p.update(keyMsg("m"))

	assert.Equal(t, "m", lastQuery)
	require.Len(t, p.options, 1)
	assert.Equal(t, "Medellín", p.options[0].label)
}

func TestPickerUpdateClearsStaleChoice(t *testing.T) {
	p := newPicker("Ciudad", fixedSearch(option{1, "Medellín"}), false)
	p.preselect(1, "Medellín")
	p.focus()
	p.input.SetCursor(len(p.input.Value()))

	p, _ = p.update(tea.KeyMsg{Type: tea.KeyBackspace})

	assert.Zero(t, p.chosen.id, "editar la consulta invalida la opción elegida")
}

func TestCacheOptions(t *testing.T) {
	type crop struct {
		ID   int64
		Name string
	}
	got := cacheOptions([]crop{{1, "Café"}, {2, "Cacao"}},
		func(c crop) int64 { return c.ID },
		func(c crop) string { return c.Name },
	)

	require.Len(t, got, 2)
	assert.Equal(t, option{1, "Café"}, got[0])
	assert.Equal(t, option{2, "Cacao"}, got[1])
}

func TestToastsNotifyNeverBlocks(t *testing.T) {
	toasts := NewToasts()

	// More notifications than buffer capacity; the overflow is dropped
	// instead of blocking the controller goroutine.
	done := make(chan struct{})
	go func() {
		for i := 0; i < 20; i++ {
			toasts.Notify(controller.KindSuccess, "Éxito", "mensaje")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on a full buffer")
	}
}

func TestToastsDeliverInOrder(t *testing.T) {
	toasts := NewToasts()
	toasts.Notify(controller.KindSuccess, "Éxito", "primero")
	toasts.Notify(controller.KindError, "Error", "segundo")

	msg := toasts.cmdAwaitToast()()
	first, ok := msg.(toastMsg)
	require.True(t, ok)
	assert.Equal(t, "primero", first.toast.message)

	msg = toasts.cmdAwaitToast()()
	second, ok := msg.(toastMsg)
	require.True(t, ok)
	assert.Equal(t, controller.KindError, second.toast.kind)
}

func TestToastRender(t *testing.T) {
	success := toast{kind: controller.KindSuccess, title: "Éxito", message: "guardado"}
	assert.Contains(t, success.render(), "Éxito: guardado")

	assert.True(t, toast{}.empty())
	assert.False(t, success.empty())
}

func TestPrompterBridgesAnswerBack(t *testing.T) {
	prompter := NewPrompter()

	answer := make(chan bool, 1)
	go func() {
		answer <- prompter.Confirm("¿Estás seguro?", "¡No podrás revertir esto!")
	}()

	msg := prompter.cmdAwaitConfirm()()
	req, ok := msg.(confirmRequestMsg)
	require.True(t, ok)
	assert.Equal(t, "¿Estás seguro?", req.req.title)

	req.req.reply <- true

	select {
	case got := <-answer:
		assert.True(t, got)
	case <-time.After(time.Second):
		t.Fatal("Confirm never returned")
	}
}

func TestConfirmModelView(t *testing.T) {
	empty := confirmModel{}
	assert.Empty(t, empty.View())

	m := confirmModel{req: &confirmRequest{title: "¿Estás seguro?", message: "¡No podrás revertir esto!"}}
	view := m.View()
	assert.Contains(t, view, "¿Estás seguro?")
	assert.Contains(t, view, "y sí")
	assert.Contains(t, view, "n no")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "corto", fitText("corto", 10))
	assert.Equal(t, "exacto", fitText("exacto", 6))
	assert.Equal(t, "una lin...", fitText("una linea larga", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "sin límite", fitText("sin límite", 0))
}

func TestViewHelperLabels(t *testing.T) {
	assert.Equal(t, "[x]", checkbox(true))
	assert.Equal(t, "[ ]", checkbox(false))
	assert.Equal(t, "Activo", boolLabel(true))
	assert.Equal(t, "Inactivo", boolLabel(false))
	assert.Equal(t, "2.5", formatFloat(2.5))
	assert.Equal(t, "12", formatFloat(12))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("FINCAUDITA │ FINCAS", "fila uno\nfila dos", "n: nueva")

	assert.Contains(t, page, "FINCAUDITA │ FINCAS")
	assert.Contains(t, page, "fila uno")
	assert.Contains(t, page, "n: nueva")
	assert.Contains(t, page, "ctrl+c: salir")
	assert.Equal(t, 2, strings.Count(page, uiDivider))
}

func TestRenderPageEmptyData(t *testing.T) {
	page := renderPage("FINCAUDITA │ FINCAS", "", "")
	assert.Contains(t, page, "-")
}
