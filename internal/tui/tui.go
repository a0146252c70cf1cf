// Package tui is an interactive terminal for live rune translation.
// Text is translated as you type; Enter pins the current line to the
// session history.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/crackalamoo/futhorc/internal/runic"
)

const maxHistory = 10

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1)

	runeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type entry struct {
	input  string
	output string
}

type model struct {
	translator *runic.Translator
	input      textinput.Model
	preview    string
	history    []entry
	width      int
}

func newModel(translator *runic.Translator) model {
	ti := textinput.New()
	ti.Placeholder = "type some english..."
	ti.Focus()
	ti.CharLimit = 256

	return model{
		translator: translator,
		input:      ti,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.history = append(m.history, entry{
				input:  text,
				output: m.translator.Translate(text),
			})
			if len(m.history) > maxHistory {
				m.history = m.history[len(m.history)-maxHistory:]
			}
			m.input.SetValue("")
			m.preview = ""
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if text := strings.TrimSpace(m.input.Value()); text != "" {
		m.preview = m.translator.Translate(text)
	} else {
		m.preview = ""
	}

	return m, cmd
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("futhorc ᚠᚢᚦᚩᚱᚳ"))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n")
	if m.preview != "" {
		s.WriteString(runeStyle.Render(m.preview))
		s.WriteString("\n")
	}

	if len(m.history) > 0 {
		s.WriteString("\n")
		s.WriteString(labelStyle.Render("history:"))
		s.WriteString("\n")
		for i := len(m.history) - 1; i >= 0; i-- {
			e := m.history[i]
			s.WriteString(fmt.Sprintf("  %s  %s\n", e.input, runeStyle.Render(e.output)))
		}
	}

	s.WriteString("\n")
	s.WriteString(dimStyle.Render("Enter to keep, Esc to exit"))
	s.WriteString("\n")
	return s.String()
}

// Run starts the interactive translator and blocks until the user exits.
func Run(translator *runic.Translator) error {
	p := tea.NewProgram(newModel(translator))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running interactive translator: %w", err)
	}
	return nil
}
