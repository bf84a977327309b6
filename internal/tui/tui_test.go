package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/zarlcorp/zpass/internal/password"
)

// helpers

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func enterKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func escKey() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func typeString(m customModel, s string) customModel {
	for _, r := range s {
		m, _ = m.Update(keyMsg(r))
	}
	return m
}

// username view tests

func TestUsernameViewShowsPrompt(t *testing.T) {
	m := newUsernameModel("dev")
	view := m.View()

	if !strings.Contains(view, "username:") {
		t.Error("view should show the username prompt")
	}
	if !strings.Contains(view, "zpass") {
		t.Error("view should show the tool name")
	}
}

func TestUsernameSubmit(t *testing.T) {
	m := newUsernameModel("dev")
	m.input.SetValue("amy")

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter should produce a command")
	}

	msg, ok := cmd().(usernameSubmitMsg)
	if !ok {
		t.Fatalf("expected usernameSubmitMsg, got %T", cmd())
	}
	if msg.username != "amy" {
		t.Errorf("submitted username = %q, want %q", msg.username, "amy")
	}
}

func TestUsernameSubmitEmptyAllowed(t *testing.T) {
	m := newUsernameModel("dev")

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("empty username should still submit")
	}
	if msg, ok := cmd().(usernameSubmitMsg); !ok || msg.username != "" {
		t.Errorf("expected empty usernameSubmitMsg, got %#v", cmd())
	}
}

// result view tests

func TestResultViewShowsPassword(t *testing.T) {
	m := newResultModel("amy", "Xy9abcd")
	view := m.View()

	if !strings.Contains(view, "Xy9abcd") {
		t.Error("view should show the generated password")
	}
	if !strings.Contains(view, "amy") {
		t.Error("view should show the username")
	}
}

func TestResultEmptyUsernamePlaceholder(t *testing.T) {
	m := newResultModel("", "Xy9abcd")
	if !strings.Contains(m.View(), "(none)") {
		t.Error("empty username should render as (none)")
	}
}

func TestResultRegenerate(t *testing.T) {
	m := newResultModel("amy", "Xy9abcd")

	_, cmd := m.Update(keyMsg('g'))
	if cmd == nil {
		t.Fatal("g should produce a command")
	}
	if _, ok := cmd().(regenerateMsg); !ok {
		t.Errorf("expected regenerateMsg, got %T", cmd())
	}
}

func TestResultManual(t *testing.T) {
	m := newResultModel("amy", "Xy9abcd")

	_, cmd := m.Update(keyMsg('m'))
	if cmd == nil {
		t.Fatal("m should produce a command")
	}
	if _, ok := cmd().(manualMsg); !ok {
		t.Errorf("expected manualMsg, got %T", cmd())
	}
}

// custom view tests

func TestCustomChecklistUpdates(t *testing.T) {
	m := newCustomModel("amy")

	// everything except vacuous rules starts failed
	failed := 0
	for _, r := range m.rules {
		if !r.OK {
			failed++
		}
	}
	if failed == 0 {
		t.Fatal("empty candidate should fail several rules")
	}

	m = typeString(m, "Passw0rd")
	for _, r := range m.rules {
		if !r.OK {
			t.Errorf("rule %q should pass for Passw0rd", r.Name)
		}
	}
}

func TestCustomWeakSubmitFlashes(t *testing.T) {
	m := newCustomModel("amy")
	m = typeString(m, "weak")

	m, cmd := m.handleSubmit()
	if m.flash == "" {
		t.Error("weak submit should set the flash message")
	}
	if !strings.Contains(m.View(), "Try again!") {
		t.Error("view should show the weak verdict")
	}
	if cmd == nil {
		t.Error("weak submit should schedule a flash clear")
	}
}

func TestCustomStrongSubmitAccepts(t *testing.T) {
	m := newCustomModel("amy")
	m = typeString(m, "Passw0rd")

	_, cmd := m.Update(enterKey())
	if cmd == nil {
		t.Fatal("strong submit should produce a command")
	}
	msg, ok := cmd().(candidateAcceptedMsg)
	if !ok {
		t.Fatalf("expected candidateAcceptedMsg, got %T", cmd())
	}
	if msg.candidate != "Passw0rd" {
		t.Errorf("accepted candidate = %q, want %q", msg.candidate, "Passw0rd")
	}
}

func TestCustomContainsUsernameRejected(t *testing.T) {
	m := newCustomModel("john")
	m = typeString(m, "JohnPass123")

	m, _ = m.handleSubmit()
	if m.flash == "" {
		t.Error("password containing the username should be rejected")
	}
}

func TestCustomEscGoesBack(t *testing.T) {
	m := newCustomModel("amy")

	_, cmd := m.Update(escKey())
	if cmd == nil {
		t.Fatal("esc should produce a command")
	}
	msg, ok := cmd().(navigateMsg)
	if !ok || msg.view != viewResult {
		t.Errorf("esc should navigate back to the result view, got %#v", cmd())
	}
}

// done view tests

func TestDoneViewShowsVerdict(t *testing.T) {
	m := newDoneModel("Passw0rd")
	view := m.View()

	if !strings.Contains(view, "Strong password!") {
		t.Error("view should show the strong verdict")
	}
	if !strings.Contains(view, "Passw0rd") {
		t.Error("view should show the accepted password")
	}
}

// root model flow

func TestRootFlowUsernameToResult(t *testing.T) {
	root := New("dev", password.NewGenerator())

	model, _ := root.Update(usernameSubmitMsg{username: "amy"})
	m := model.(Model)

	if m.active != viewResult {
		t.Fatalf("active view = %v, want result", m.active)
	}
	if !password.IsStrongDefault("amy", m.result.generated) {
		t.Errorf("result holds non-compliant password %q", m.result.generated)
	}
}

func TestRootFlowManualToDone(t *testing.T) {
	root := New("dev", password.NewGenerator())

	model, _ := root.Update(usernameSubmitMsg{username: "amy"})
	model, _ = model.(Model).Update(manualMsg{})
	m := model.(Model)
	if m.active != viewCustom {
		t.Fatalf("active view = %v, want custom", m.active)
	}

	model, _ = m.Update(candidateAcceptedMsg{candidate: "Passw0rd"})
	m = model.(Model)
	if m.active != viewDone {
		t.Fatalf("active view = %v, want done", m.active)
	}
	if m.done.candidate != "Passw0rd" {
		t.Errorf("done view holds %q, want %q", m.done.candidate, "Passw0rd")
	}
}

func TestRootRegenerateChangesEventually(t *testing.T) {
	root := New("dev", password.NewGenerator())
	model, _ := root.Update(usernameSubmitMsg{username: ""})
	m := model.(Model)

	seen := map[string]bool{m.result.generated: true}
	for range 20 {
		model, _ = m.Update(regenerateMsg{})
		m = model.(Model)
		seen[m.result.generated] = true
	}
	if len(seen) < 2 {
		t.Error("regenerate never produced a different password")
	}
}

func TestViewTitles(t *testing.T) {
	if viewTitle(viewResult) == "" || viewTitle(viewCustom) == "" || viewTitle(viewDone) == "" {
		t.Error("every framed view needs a title")
	}
	if viewTitle(viewUsername) != "" {
		t.Error("the username view renders its own chrome")
	}
}

func TestHelpForCoversFramedViews(t *testing.T) {
	for _, id := range []viewID{viewResult, viewCustom, viewDone} {
		if len(helpFor(id)) == 0 {
			t.Errorf("view %v has no footer help", id)
		}
	}
}
