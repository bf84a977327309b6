package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/core/pkg/zstyle"
)

// doneModel shows the accepted custom password.
type doneModel struct {
	candidate string
	flash     string
}

func newDoneModel(candidate string) doneModel {
	return doneModel{candidate: candidate}
}

func (m doneModel) Init() tea.Cmd {
	return nil
}

func (m doneModel) Update(msg tea.Msg) (doneModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, zstyle.KeyQuit) {
			return m, tea.Quit
		}

		if key.Matches(msg, zstyle.KeyEnter) || msg.String() == "c" {
			if err := copyToClipboard(m.candidate); err != nil {
				m.flash = "copy: " + err.Error()
				return m, clearFlashAfter()
			}
			m.flash = "copied!"
			return m, clearFlashAfter()
		}

	case flashMsg:
		m.flash = ""
		return m, nil
	}

	return m, nil
}

func (m doneModel) View() string {
	s := fmt.Sprintf("\n  %s\n\n  %s\n  %s\n",
		zstyle.StatusOK.Render("Strong password!"),
		zstyle.MutedText.Render("successfully created password"),
		zstyle.Highlight.Render(m.candidate),
	)

	if m.flash != "" {
		s += "\n  " + zstyle.StatusOK.Render(m.flash) + "\n"
	}

	return s
}
