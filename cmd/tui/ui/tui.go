package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/match"
	"github.com/VoxDroid/mealr/internal/tui/sanitize"
)

// TuiModel is the Bubble Tea model used by cmd/tui.
type TuiModel struct {
	uiModel Model
	items   []tagItem
	cursor  int
	results table.Model
	vp      viewport.Model

	width  int
	height int

	showHelp    bool
	showCatalog bool
	// pick is the last random recommendation, shown while nothing is selected
	pick   *catalog.Entry
	status string
	// accessibility / theme
	themeHighContrast bool
	// focus: false = left pane (tags), true = right pane (viewport)
	focusRight bool
}

// Update handles key and resize messages.
func (m *TuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *TuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.showHelp || m.showCatalog {
			m.showHelp, m.showCatalog = false, false
			m.refresh()
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		m.refresh()
		return m, nil
	case "tab":
		m.focusRight = !m.focusRight
		return m, nil
	case "left":
		m.focusRight = false
		return m, nil
	case "right":
		m.focusRight = true
		return m, nil
	case "T", "ctrl+t":
		m.themeHighContrast = !m.themeHighContrast
		return m, nil
	case "a":
		m.showCatalog = !m.showCatalog
		m.showHelp = false
		m.refresh()
		return m, nil
	case "c":
		m.uiModel.Clear()
		m.pick = nil
		m.status = "Selection cleared"
		m.refresh()
		return m, nil
	case "r":
		m.randomPick()
		return m, nil
	case "ctrl+r":
		m.uiModel.Reload(context.Background())
		m.rebuildItems()
		m.status = fmt.Sprintf("Reloaded %d items from %s", m.uiModel.Catalog().Len(), m.uiModel.Origin())
		m.refresh()
		return m, nil
	}

	if m.focusRight {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case " ", "enter", "x":
		m.toggleAtCursor()
	}
	return m, nil
}

// moveCursor steps over header rows.
func (m *TuiModel) moveCursor(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.items); i += delta {
		if !m.items[i].header {
			m.cursor = i
			return
		}
	}
}

func (m *TuiModel) toggleAtCursor() {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return
	}
	tag := m.items[m.cursor].tag
	on := m.uiModel.Toggle(tag)
	m.pick = nil
	m.showCatalog, m.showHelp = false, false
	if on {
		m.status = "Selected " + tag
	} else {
		m.status = "Deselected " + tag
	}
	m.refresh()
}

func (m *TuiModel) randomPick() {
	e, err := m.uiModel.Random()
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.pick = &e
	m.showCatalog, m.showHelp = false, false
	m.status = "Random pick: " + e.Name
	m.refresh()
}

// refresh recomputes the right pane content.
func (m *TuiModel) refresh() {
	var content string
	switch {
	case m.showHelp:
		content = helpText
	case m.showCatalog:
		content = formatCatalog(m.uiModel.Catalog(), m.uiModel.Origin(), m.vp.Width)
	default:
		content = m.renderResults()
	}
	m.vp.SetContent(content)
	m.vp.GotoTop()
}

func (m *TuiModel) renderResults() string {
	results, err := m.uiModel.Results()
	if errors.Is(err, match.ErrNoSelection) {
		if m.pick != nil {
			return formatPick(*m.pick)
		}
		return mutedStyle.Render(hintText)
	}
	if err != nil {
		return "Error: " + err.Error()
	}

	var b strings.Builder
	b.WriteString(headingStyle.Render("Selected: "+strings.Join(sanitize.Tags(m.uiModel.Selected()), ", ")) + "\n\n")
	if len(results) == 0 {
		b.WriteString(mutedStyle.Render("No food matches the selected tags.") + "\n")
		return b.String()
	}
	top, more := match.Top(results, topN)
	m.results.SetRows(resultRows(top))
	m.results.SetHeight(len(top) + 1)
	b.WriteString(m.results.View() + "\n")
	if more > 0 {
		b.WriteString(mutedStyle.Render(formatMore(more)) + "\n")
	}
	b.WriteString("\n" + formatSummary(m.uiModel.Summary(results)))
	return b.String()
}

// View renders the title bar, the two panes, a key hint footer and the
// status bar.
func (m *TuiModel) View() string {
	th := currentTheme(m.themeHighContrast)
	bodyH := m.bodyHeight()

	leftBorder, rightBorder := th.activeBorder, th.idleBorder
	leftStyle, rightStyle := lipgloss.ThickBorder(), lipgloss.NormalBorder()
	if m.focusRight {
		leftBorder, rightBorder = th.idleBorder, th.activeBorder
		leftStyle, rightStyle = lipgloss.NormalBorder(), lipgloss.ThickBorder()
	}

	pane := renderTagPane(m.items, m.cursor, m.uiModel.IsSelected, leftPaneWidth)
	pane = clipLines(pane, m.cursorLine(), bodyH)
	left := lipgloss.NewStyle().BorderStyle(leftStyle).BorderForeground(lipgloss.Color(leftBorder)).
		Width(leftPaneWidth).Height(bodyH).Render(pane)
	right := lipgloss.NewStyle().BorderStyle(rightStyle).BorderForeground(lipgloss.Color(rightBorder)).
		Padding(0, 1).Width(m.vp.Width + 2).Height(bodyH).Render(m.vp.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(th.title)).Background(lipgloss.Color(th.titleBg)).
		Padding(0, 1).Render("mealr · what should I eat?")
	footer := mutedStyle.Render("(space) Toggle • (r) Random • (a) Catalog • (c) Clear • (?) Help • (q) Quit")

	status := m.status
	if status == "" {
		status = fmt.Sprintf("%d items from %s • %d tags selected", m.uiModel.Catalog().Len(), m.uiModel.Origin(), len(m.uiModel.Selected()))
	}
	bottom := lipgloss.NewStyle().Background(lipgloss.Color(th.bottomBg)).Foreground(lipgloss.Color(th.bottomFg)).
		Padding(0, 1).Width(m.width).Render(status)

	return lipgloss.JoinVertical(lipgloss.Left, title, body, footer, bottom)
}

// cursorLine returns the rendered line index of the cursor row. Each header
// after the first is preceded by a blank line.
func (m *TuiModel) cursorLine() int {
	line := 0
	for i := 0; i < m.cursor && i < len(m.items); i++ {
		if m.items[i].header && i > 0 {
			line++
		}
		line++
	}
	return line
}

// clipLines returns at most height lines of s, scrolled so line stays
// visible.
func clipLines(s string, line, height int) string {
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) <= height {
		return s
	}
	start := 0
	if line >= height {
		start = line - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
	}
	return strings.Join(lines[start:end], "\n")
}
