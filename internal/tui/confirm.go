package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmRequest carries one pending yes/no question from a controller
// goroutine to the TUI event loop. The answer travels back over reply.
type confirmRequest struct {
	title   string
	message string
	reply   chan bool
}

// Prompter bridges the controllers' blocking Confirm calls into Bubble Tea
// messages. Confirm runs inside a tea.Cmd goroutine and blocks there until
// the user answers in the overlay; the event loop itself never blocks.
type Prompter struct {
	requests chan confirmRequest
}

func NewPrompter() *Prompter {
	return &Prompter{requests: make(chan confirmRequest)}
}

// Confirm implements controller.Confirmer.
func (p *Prompter) Confirm(title, message string) bool {
	reply := make(chan bool, 1)
	p.requests <- confirmRequest{title: title, message: message, reply: reply}
	return <-reply
}

// cmdAwaitConfirm waits for the next confirmation request. The main model
// re-arms it after every answered overlay.
func (p *Prompter) cmdAwaitConfirm() tea.Cmd {
	return func() tea.Msg {
		return confirmRequestMsg{req: <-p.requests}
	}
}

type confirmModel struct {
	req    *confirmRequest
	answer func(bool)
}

func (m confirmModel) View() string {
	if m.req == nil {
		return ""
	}
	content := titleStyle.Render(m.req.title) + "\n"
	content += m.req.message + "\n\n"
	content += "y sí    n no"
	return overlayBoxStyle.Render(content)
}
