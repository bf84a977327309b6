package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// resultModel shows a generated default password with actions.
type resultModel struct {
	username  string
	generated string
	flash     string
}

// regenerateMsg requests a fresh default password.
type regenerateMsg struct{}

// manualMsg opens the custom password view.
type manualMsg struct{}

func newResultModel(username, generated string) resultModel {
	return resultModel{username: username, generated: generated}
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (resultModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m resultModel) handleKey(msg tea.KeyMsg) (resultModel, tea.Cmd) {
	if key.Matches(msg, zstyle.KeyQuit) {
		return m, tea.Quit
	}

	if key.Matches(msg, zstyle.KeyEnter) {
		return m.copyPassword()
	}

	switch msg.String() {
	case "c":
		return m.copyPassword()

	case "g":
		return m, func() tea.Msg { return regenerateMsg{} }

	case "m":
		return m, func() tea.Msg { return manualMsg{} }
	}

	return m, nil
}

func (m resultModel) copyPassword() (resultModel, tea.Cmd) {
	if err := copyToClipboard(m.generated); err != nil {
		m.flash = "copy: " + err.Error()
		return m, clearFlashAfter()
	}
	m.flash = "copied!"
	return m, clearFlashAfter()
}

func (m resultModel) View() string {
	user := m.username
	if user == "" {
		user = "(none)"
	}

	s := fmt.Sprintf("\n  %s %s\n\n  %s\n  %s\n",
		zstyle.MutedText.Render("username:"),
		user,
		zstyle.MutedText.Render("generated default password"),
		zstyle.Highlight.Render(m.generated),
	)

	if m.flash != "" {
		s += "\n  " + zstyle.StatusOK.Render(m.flash) + "\n"
	}

	return s
}
