// Package tui implements the root Bubble Tea model for zpass.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zpass/internal/password"
)

// accent is the zpass brand color used for the logo and headers.
var accent = lipgloss.Color("42")

type viewID int

const (
	viewUsername viewID = iota
	viewResult
	viewCustom
	viewDone
)

// Model is the root TUI model.
type Model struct {
	version  string
	gen      *password.Generator
	username string

	active   viewID
	prompt   usernameModel
	result   resultModel
	custom   customModel
	done     doneModel

	// terminal dimensions
	width  int
	height int
}

// New creates the root TUI model.
func New(version string, gen *password.Generator) Model {
	return Model{
		version: version,
		gen:     gen,
		active:  viewUsername,
		prompt:  newUsernameModel(version),
	}
}

func (m Model) Init() tea.Cmd {
	return m.prompt.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case usernameSubmitMsg:
		m.username = msg.username
		return m.showGenerated()

	case regenerateMsg:
		return m.showGenerated()

	case manualMsg:
		m.custom = newCustomModel(m.username)
		m.active = viewCustom
		return m, tea.Batch(m.custom.Init(), tea.ClearScreen)

	case candidateAcceptedMsg:
		m.done = newDoneModel(msg.candidate)
		m.active = viewDone
		return m, tea.ClearScreen

	case navigateMsg:
		m.active = msg.view
		return m, tea.ClearScreen
	}

	return m.updateActive(msg)
}

// showGenerated draws a fresh default password and opens the result view.
func (m Model) showGenerated() (tea.Model, tea.Cmd) {
	pw := m.gen.Generate(m.username)
	m.result = newResultModel(m.username, pw)
	m.active = viewResult
	return m, tea.ClearScreen
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.active {
	case viewUsername:
		m.prompt, cmd = m.prompt.Update(msg)
	case viewResult:
		m.result, cmd = m.result.Update(msg)
	case viewCustom:
		m.custom, cmd = m.custom.Update(msg)
	case viewDone:
		m.done, cmd = m.done.Update(msg)
	}

	return m, cmd
}

func (m Model) View() string {
	// the username prompt includes the logo — render directly
	if m.active == viewUsername {
		return m.prompt.View()
	}

	var content string
	switch m.active {
	case viewResult:
		content = m.result.View()
	case viewCustom:
		content = m.custom.View()
	case viewDone:
		content = m.done.View()
	}

	header := zstyle.RenderHeader("zpass", viewTitle(m.active), accent)
	sep := zstyle.RenderSeparator(m.width)
	footer := zstyle.RenderFooter(helpFor(m.active))

	return "\n" + header + "\n" + sep + "\n" + content + "\n" + footer + "\n"
}

// viewTitle returns the display title for each view.
func viewTitle(id viewID) string {
	switch id {
	case viewResult:
		return "Default Password"
	case viewCustom:
		return "Set Password"
	case viewDone:
		return "Password Set"
	}
	return ""
}

// helpFor returns keybinding pairs for each view's footer.
func helpFor(id viewID) []zstyle.HelpPair {
	switch id {
	case viewResult:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy"},
			{Key: "g", Desc: "regenerate"},
			{Key: "m", Desc: "set custom"},
			{Key: "q", Desc: "quit"},
		}
	case viewCustom:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "submit"},
			{Key: "esc", Desc: "back"},
			{Key: "ctrl+c", Desc: "quit"},
		}
	case viewDone:
		return []zstyle.HelpPair{
			{Key: "enter", Desc: "copy"},
			{Key: "q", Desc: "quit"},
		}
	}
	return nil
}

// navigateMsg tells the root model to switch views.
type navigateMsg struct {
	view viewID
}

// flashMsg clears the flash after a timeout.
type flashMsg struct{}

func clearFlashAfter() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return flashMsg{}
	})
}
