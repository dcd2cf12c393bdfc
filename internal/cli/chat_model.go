package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mwaldhauser/zeitbot/internal/cli/formatter"
)

const chatWelcome = "Hallo! Frag mich nach deiner Woche, deinem Monat, Prognosen oder Tipps. (/quit zum Beenden)"

// chatModel is the bubbletea model for the interactive chat loop.
// Each submitted line goes through the responder; the exchange is
// appended to the scrollback and persisted by the responder itself.
type chatModel struct {
	app      *App
	input    textinput.Model
	messages []string
}

func newChatModel(app *App) *chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500

	return &chatModel{
		app:      app,
		input:    ti,
		messages: []string{formatter.Dim(chatWelcome)},
	}
}

func (m *chatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if input == "" {
				return m, nil
			}
			return m.handleInput(input)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *chatModel) View() string {
	var b strings.Builder

	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}

	prompt := formatter.StylePurple.Render("zeitbot") + formatter.Dim("> ")
	b.WriteString(prompt)
	b.WriteString(m.input.View())

	return b.String()
}

func (m *chatModel) handleInput(input string) (tea.Model, tea.Cmd) {
	switch strings.ToLower(input) {
	case "/quit", "/exit", "/q", "quit", "exit":
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.Dim("Du: ")+input)

	response, err := m.app.Responder.Respond(context.Background(), input)
	m.messages = append(m.messages, response)
	if err != nil {
		m.messages = append(m.messages, formatter.StyleYellow.Render("Warnung: "+err.Error()))
	}

	return m, nil
}
