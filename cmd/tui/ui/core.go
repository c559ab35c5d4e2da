package ui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// topN is the number of results shown before the "… N more" line.
const topN = 10

// leftPaneWidth is the fixed width of the tag pane, borders excluded.
const leftPaneWidth = 28

// NewModel constructs the Bubble Tea TUI model used by cmd/tui. It accepts
// any implementation of Model (usually the framework-agnostic internal
// model) so tests can provide fakes.
func NewModel(ui Model) *TuiModel {
	st := table.DefaultStyles()
	st.Header = st.Header.Bold(true).Foreground(lipgloss.Color("#0ea5a4"))
	st.Selected = lipgloss.NewStyle()
	t := table.New(
		table.WithColumns(resultColumns(60)),
		table.WithFocused(false),
		table.WithStyles(st),
	)

	m := &TuiModel{uiModel: ui, results: t, vp: viewport.New(0, 0)}
	m.rebuildItems()
	return m
}

// NewProgram constructs the tea.Program for the TUI.
func NewProgram(ui Model) *tea.Program {
	m := NewModel(ui)
	return tea.NewProgram(m, tea.WithAltScreen())
}

// Init sizes the panes with defaults so the UI shows content on first
// render, before a WindowSizeMsg arrives.
func (m *TuiModel) Init() tea.Cmd {
	if m.width == 0 || m.height == 0 {
		m.resize(100, 40)
	}
	m.refresh()
	return nil
}

// rebuildItems reloads the tag rows from the model's groups and keeps the
// cursor on a selectable row.
func (m *TuiModel) rebuildItems() {
	m.items = buildItems(m.uiModel.Groups())
	if m.cursor >= len(m.items) || m.cursor < 0 || (len(m.items) > 0 && m.items[m.cursor].header) {
		m.cursor = firstSelectable(m.items, 0)
	}
}

// resize lays out the panes for a width x height terminal.
func (m *TuiModel) resize(width, height int) {
	m.width, m.height = width, height
	rightW := width - leftPaneWidth - 4
	m.ensureViewportSize(rightW-2, m.bodyHeight()-2)
	m.results.SetColumns(resultColumns(m.vp.Width))
	m.results.SetWidth(m.vp.Width)
}

// bodyHeight is the space left for the panes below the title and above the
// footer and status bar.
func (m *TuiModel) bodyHeight() int {
	h := m.height - 3 - 2
	if h < 5 {
		h = 5
	}
	return h
}
