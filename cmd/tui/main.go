// tui is an interactive Hangul conversion playground. Type any text and
// every conversion updates live: jamo decomposition, recomposition,
// initial consonants, and both keyboard transliteration directions.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jusunglee/hangulsearch/internal/hangul"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2)
)

type model struct {
	input textinput.Model
}

func initialModel() model {
	ti := textinput.New()
	ti.Placeholder = "한국어 or dkssud..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40
	return model{input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	text := m.input.Value()

	row := func(label, value string) string {
		return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
	}

	var body string
	body += m.input.View() + "\n\n"
	body += row("jamo", hangul.DecomposeString(text, true))
	body += row("composed", hangul.ComposeString(text))
	body += row("chosung", hangul.Chosung(text))
	body += row("keystrokes", hangul.HangulToKeystrokes(text))
	body += row("from keys", hangul.KeystrokesToHangul(text))
	body += "\n" + subtleStyle.Render("esc or ctrl+c to quit")

	return titleStyle.Render("hangulsearch converter") + "\n" + boxStyle.Render(body) + "\n"
}

func main() {
	if _, err := tea.NewProgram(initialModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
