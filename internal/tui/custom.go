package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpass/internal/password"
)

// customModel handles custom password entry with a live rule checklist.
type customModel struct {
	username string
	input    textinput.Model
	rules    []password.Rule
	flash    string
}

// candidateAcceptedMsg is sent when a submitted password satisfies
// the strong policy.
type candidateAcceptedMsg struct {
	candidate string
}

func newCustomModel(username string) customModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	return customModel{
		username: username,
		input:    ti,
		rules:    password.Check(password.Strong, username, ""),
	}
}

func (m customModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m customModel) Update(msg tea.Msg) (customModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyBack) {
			return m, func() tea.Msg { return navigateMsg{view: viewResult} }
		}

		if key.Matches(msg, zstyle.KeyEnter) {
			return m.handleSubmit()
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.rules = password.Check(password.Strong, m.username, m.input.Value())
	return m, cmd
}

func (m customModel) handleSubmit() (customModel, tea.Cmd) {
	candidate := m.input.Value()
	if password.IsStrong(m.username, candidate) {
		return m, func() tea.Msg {
			return candidateAcceptedMsg{candidate: candidate}
		}
	}

	// unbounded retry: keep the input so the user can edit it
	m.flash = "Your password is weak. Try again!"
	return m, clearFlashAfter()
}

func (m customModel) View() string {
	s := fmt.Sprintf("\n  %s\n  %s\n\n",
		"new password:",
		m.input.View(),
	)

	for _, r := range m.rules {
		mark := zstyle.StatusOK.Render("ok")
		if !r.OK {
			mark = zstyle.StatusWarn.Render("--")
		}
		s += fmt.Sprintf("  %s %s\n", mark, zstyle.MutedText.Render(r.Name))
	}

	if m.flash != "" {
		s += "\n  " + zstyle.StatusErr.Render(m.flash) + "\n"
	}

	return s
}
