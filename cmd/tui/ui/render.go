package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/mattn/go-runewidth"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/match"
	"github.com/VoxDroid/mealr/internal/tui/sanitize"
)

// tagItem is one row of the left pane: either a category header or a
// selectable tag.
type tagItem struct {
	group  string
	tag    string
	header bool
}

// buildItems flattens category groups into pane rows.
func buildItems(groups []catalog.Category) []tagItem {
	var out []tagItem
	for _, g := range groups {
		if len(g.Tags) == 0 {
			continue
		}
		out = append(out, tagItem{group: g.Name, header: true})
		for _, t := range g.Tags {
			out = append(out, tagItem{group: g.Name, tag: t})
		}
	}
	return out
}

// firstSelectable returns the index of the first non-header row at or after
// i, or -1.
func firstSelectable(items []tagItem, i int) int {
	for ; i < len(items); i++ {
		if !items[i].header {
			return i
		}
	}
	return -1
}

// renderTagPane draws the checkbox list, clipping to width.
func renderTagPane(items []tagItem, cursor int, selected func(string) bool, width int) string {
	var b strings.Builder
	for i, it := range items {
		if it.header {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(headingStyle.Render(runewidth.Truncate(sanitize.Display(it.group), width, "…")) + "\n")
			continue
		}
		box := "[ ]"
		if selected(it.tag) {
			box = "[x]"
		}
		line := runewidth.Truncate(fmt.Sprintf("%s %s", box, sanitize.Display(it.tag)), width-2, "…")
		if i == cursor {
			b.WriteString(cursorStyle.Render("> "+line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

// resultColumns sizes the result table for the available width.
func resultColumns(width int) []table.Column {
	nameW := width - 4 - 7 - 8 - 6
	if nameW < 8 {
		nameW = 8
	}
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Food", Width: nameW},
		{Title: "Match", Width: 7},
		{Title: "Ratio", Width: 8},
	}
}

func resultRows(results []match.Result) []table.Row {
	rows := make([]table.Row, 0, len(results))
	for i, r := range results {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			sanitize.Display(r.Name),
			fmt.Sprintf("%d/%d", r.MatchCount, r.TotalSelected),
			formatRatio(r.MatchRatio),
		})
	}
	return rows
}

func formatRatio(r float64) string { return fmt.Sprintf("%.1f%%", r) }

// formatMore renders the overflow line under a truncated result list.
func formatMore(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("… %d more", n)
}

// formatSummary renders the statistics block.
func formatSummary(s match.Summary) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Statistics") + "\n")
	fmt.Fprintf(&b, "Matches:  %d\n", s.Count)
	fmt.Fprintf(&b, "Average:  %s\n", GradeStyle(s.AverageRatio).Render(formatRatio(s.AverageRatio)))
	fmt.Fprintf(&b, "Best:     %s\n", GradeStyle(s.MaxRatio).Render(formatRatio(s.MaxRatio)))
	for _, bk := range s.Buckets {
		fmt.Fprintf(&b, "  %s %d\n", runewidth.FillRight(bk.Label, 7), bk.Count)
	}
	return b.String()
}

// formatPick renders a random recommendation.
func formatPick(e catalog.Entry) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Random pick") + "\n\n")
	b.WriteString(pickStyle.Render(sanitize.Display(e.Name)) + "\n")
	if len(e.Tags) > 0 {
		b.WriteString(mutedStyle.Render(strings.Join(sanitize.Tags(e.Tags), ", ")) + "\n")
	}
	return b.String()
}

// formatCatalog renders every item with its tags, names padded to a common
// display width.
func formatCatalog(c *catalog.Catalog, origin string, width int) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(fmt.Sprintf("Catalog (%d items, %s)", c.Len(), origin)) + "\n\n")
	nameW := 0
	for _, n := range c.Names() {
		if w := runewidth.StringWidth(sanitize.Display(n)); w > nameW {
			nameW = w
		}
	}
	for _, e := range c.Entries() {
		line := runewidth.FillRight(sanitize.Display(e.Name), nameW) + "  " + strings.Join(sanitize.Tags(e.Tags), ", ")
		if width > 0 {
			line = runewidth.Truncate(line, width, "…")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

const hintText = "Select tags on the left to get recommendations.\n\nPress r for a random pick."

const helpText = `Help

↑/↓ or k/j   move
space/enter  toggle tag
r            random pick
a            show or hide the whole catalog
c            clear selection
tab          switch pane focus
ctrl+r       reload catalog
T            toggle high-contrast theme
?            show or hide this help
q            quit`
