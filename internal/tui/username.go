package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// usernameModel handles the opening username prompt.
type usernameModel struct {
	input   textinput.Model
	version string
}

// usernameSubmitMsg is sent when the user submits a username. An
// empty username is allowed; it just disables the containment rule.
type usernameSubmitMsg struct {
	username string
}

func newUsernameModel(version string) usernameModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return usernameModel{input: ti, version: version}
}

func (m usernameModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m usernameModel) Update(msg tea.Msg) (usernameModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			username := m.input.Value()
			return m, func() tea.Msg {
				return usernameSubmitMsg{username: username}
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m usernameModel) View() string {
	indent := lipgloss.NewStyle().MarginLeft(2)
	logo := indent.Render(
		zstyle.StyledLogo(lipgloss.NewStyle().Foreground(accent)),
	)
	toolName := indent.Render(zstyle.MutedText.Render("zpass " + m.version))

	return fmt.Sprintf("\n%s\n%s\n\n  %s\n  %s\n\n  %s\n",
		logo,
		toolName,
		"username:",
		m.input.View(),
		zstyle.MutedText.Render("enter continue  ctrl+c quit"),
	)
}
