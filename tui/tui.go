// Package tui is the terminal frontend: the same calculator core rendered
// with Bubble Tea instead of a window.
package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tally/calc"
	"tally/ui"
)

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(37).
			Align(lipgloss.Right).
			Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1).
			Width(8).
			Align(lipgloss.Center)

	pressedStyle = buttonStyle.
			Background(lipgloss.Color("33")).
			Foreground(lipgloss.Color("231"))

	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)
	entryStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	memStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type model struct {
	st      calc.State
	hist    calc.History
	mem     calc.MemoryRegister
	buttons []ui.Button
	last    int // last pressed button index, -1 when idle
}

func newModel() *model {
	return &model{
		st:      calc.NewState(),
		buttons: ui.Layout(),
		last:    -1,
	}
}

// Run starts the terminal calculator and blocks until quit.
func Run() error {
	_, err := tea.NewProgram(newModel(), tea.WithAltScreen()).Run()
	return err
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.press(calc.Equals)
	case "backspace":
		m.press(calc.Backspace)
	case "esc":
		m.press(calc.Clear)
	default:
		if key.Type == tea.KeyRunes {
			for _, r := range key.Runes {
				if sym, ok := ui.SymbolForRune(r); ok {
					m.press(sym)
				}
			}
		}
	}
	return m, nil
}

func (m *model) press(sym calc.Symbol) {
	m.last = -1
	for i, b := range m.buttons {
		if b.Symbol == sym {
			m.last = i
			break
		}
	}
	if sym.Kind == calc.KindMemory {
		m.st = calc.ApplyMemory(m.st, &m.mem, sym.Mem)
		return
	}
	next, entry := calc.Apply(m.st, sym)
	if entry != nil {
		m.hist.Record(*entry)
	}
	m.st = next
}

func (m *model) View() string {
	var b strings.Builder

	display := m.st.Display
	if m.mem.Has() {
		display = memStyle.Render("M") + " " + display
	}
	b.WriteString(displayStyle.Render(display))
	b.WriteString("\n")

	var rows []string
	for start := 0; start < len(m.buttons); start += ui.Columns {
		end := start + ui.Columns
		if end > len(m.buttons) {
			end = len(m.buttons)
		}
		cells := make([]string, 0, ui.Columns)
		for i := start; i < end; i++ {
			style := buttonStyle
			if i == m.last {
				style = pressedStyle
			}
			cells = append(cells, style.Render(m.buttons[i].Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, grid, " ", m.historyView()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("keys: 0-9 . + - * / = enter backspace esc   q: quit"))
	return b.String()
}

func (m *model) historyView() string {
	entries := m.hist.Entries()
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("History"))
	for _, e := range entries {
		b.WriteString("\n")
		b.WriteString(entryStyle.Render(e.Expression))
		b.WriteString("\n")
		b.WriteString(resultStyle.Render("= " + e.Result))
	}
	return b.String()
}
