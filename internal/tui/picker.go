package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// option is one typeahead suggestion.
type option struct {
	id    int64
	label string
}

// picker is an incremental-search input over a reference cache. Typing
// filters the cached collection; up/down move through suggestions; enter
// picks the highlighted one. In multi mode enter toggles membership instead
// and the picked set accumulates.
type picker struct {
	input    textinput.Model
	search   func(query string) []option
	options  []option
	idx      int
	multi    bool
	chosen   option
	selected []option
}

func newPicker(placeholder string, search func(string) []option, multi bool) picker {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Width = 40
	return picker{input: input, search: search, multi: multi}
}

func (p picker) focused() bool { return p.input.Focused() }

func (p *picker) focus() { p.input.Focus() }
func (p *picker) blur()  { p.input.Blur() }

// reset clears the query, the suggestions, and the picked value(s).
func (p *picker) reset() {
	p.input.SetValue("")
	p.options = nil
	p.idx = 0
	p.chosen = option{}
	p.selected = nil
}

// preselect seeds a single-select picker with an already-stored value.
func (p *picker) preselect(id int64, label string) {
	p.chosen = option{id: id, label: label}
	p.input.SetValue(label)
	p.options = nil
	p.idx = 0
}

func (p picker) selectedIDs() []int64 {
	ids := make([]int64, 0, len(p.selected))
	for _, o := range p.selected {
		ids = append(ids, o.id)
	}
	return ids
}

func (p picker) isSelected(id int64) bool {
	for _, o := range p.selected {
		if o.id == id {
			return true
		}
	}
	return false
}

func (p *picker) toggle(o option) {
	for i, cur := range p.selected {
		if cur.id == o.id {
			p.selected = append(p.selected[:i], p.selected[i+1:]...)
			return
		}
	}
	p.selected = append(p.selected, o)
}

// handleKey consumes navigation and pick keys while suggestions are shown.
// Returns false when the key belongs to the text input instead.
func (p *picker) handleKey(msg tea.KeyMsg) bool {
	if len(p.options) == 0 {
		return false
	}

	switch msg.String() {
	case "up":
		if p.idx > 0 {
			p.idx--
		}
		return true
	case "down":
		if p.idx < len(p.options)-1 {
			p.idx++
		}
		return true
	case "enter":
		picked := p.options[p.idx]
		if p.multi {
			p.toggle(picked)
			return true
		}
		p.chosen = picked
		p.input.SetValue(picked.label)
		p.options = nil
		p.idx = 0
		return true
	}
	return false
}

// update forwards the message to the text input and refreshes the
// suggestion list from the cache when the query changed.
func (p picker) update(msg tea.Msg) (picker, tea.Cmd) {
	before := p.input.Value()

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)

	if after := p.input.Value(); after != before {
		p.options = p.search(after)
		p.idx = 0
		if !p.multi && p.chosen.label != after {
			p.chosen = option{}
		}
	}
	return p, cmd
}

func (p picker) view() string {
	var b strings.Builder
	b.WriteString("[ ")
	b.WriteString(p.input.View())
	b.WriteString(" ]")

	for i, o := range p.options {
		b.WriteString("\n    ")
		if i == p.idx {
			b.WriteString("> ")
		} else {
			b.WriteString("  ")
		}
		if p.multi {
			b.WriteString(checkbox(p.isSelected(o.id)) + " ")
		}
		b.WriteString(o.label)
	}

	if p.multi && len(p.selected) > 0 {
		labels := make([]string, len(p.selected))
		for i, o := range p.selected {
			labels[i] = o.label
		}
		b.WriteString("\n    Seleccionados: " + strings.Join(labels, ", "))
	}
	return b.String()
}

func cacheOptions[R any](items []R, id func(R) int64, label func(R) string) []option {
	out := make([]option, len(items))
	for i, item := range items {
		out[i] = option{id: id(item), label: label(item)}
	}
	return out
}
