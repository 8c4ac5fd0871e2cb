package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeKeys(m *model, keys string) {
	for _, r := range keys {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestModel_Entry(t *testing.T) {
	m := newModel()
	typeKeys(m, "12+3")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.st.Display != "15" {
		t.Fatalf("Display=%q, want %q", m.st.Display, "15")
	}
	if m.hist.Len() != 1 {
		t.Fatalf("history Len=%d, want 1", m.hist.Len())
	}
}

func TestModel_EscapeClears(t *testing.T) {
	m := newModel()
	typeKeys(m, "9*9")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.st.Display != "0" {
		t.Fatalf("Display=%q, want %q", m.st.Display, "0")
	}
}

func TestModel_QuitKeys(t *testing.T) {
	m := newModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("no command on q, want tea.Quit")
	}
}

func TestModel_ViewShowsDisplayAndHistory(t *testing.T) {
	m := newModel()
	typeKeys(m, "2+2")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view := m.View()
	if !strings.Contains(view, "4") {
		t.Fatalf("view does not show the result:\n%s", view)
	}
	if !strings.Contains(view, "History") {
		t.Fatalf("view does not show the history panel:\n%s", view)
	}
	if !strings.Contains(view, "2 + 2") {
		t.Fatalf("view does not show the recorded expression:\n%s", view)
	}
}

func TestModel_PressHighlightsButton(t *testing.T) {
	m := newModel()
	typeKeys(m, "7")
	if m.last < 0 || m.buttons[m.last].Label != "7" {
		t.Fatalf("last=%d, want the 7 button", m.last)
	}
}
