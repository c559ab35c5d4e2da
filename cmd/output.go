package cmd

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"

	"github.com/VoxDroid/mealr/cmd/tui/ui"
	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/config"
	"github.com/VoxDroid/mealr/internal/match"
	"github.com/VoxDroid/mealr/internal/tui/sanitize"
)

// recommendation is the JSON shape of `mealr recommend`.
type recommendation struct {
	Selected []string       `json:"selected"`
	Results  []match.Result `json:"results"`
	More     int            `json:"more"`
	Summary  match.Summary  `json:"summary"`
}

// pick is the JSON shape of a random recommendation.
type pick struct {
	Name   string   `json:"name"`
	Tags   []string `json:"tags"`
	Random bool     `json:"random"`
}

// writeJSON writes v indented, leaving labels such as "<50%" unescaped.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputFormat returns the flag value or the configured default.
func outputFormat(flag string) (string, error) {
	if flag == "" {
		return settings.Display.Output, nil
	}
	if flag != config.OutputTable && flag != config.OutputJSON {
		return "", fmt.Errorf("invalid output %q (want table or json)", flag)
	}
	return flag, nil
}

// printResults writes the top n results, the overflow count and the
// statistics.
func printResults(w io.Writer, selected []string, results []match.Result, n int, format string) error {
	top, more := match.Top(results, n)
	if format == config.OutputJSON {
		if top == nil {
			top = []match.Result{}
		}
		return writeJSON(w, recommendation{Selected: selected, Results: top, More: more, Summary: match.Summarize(results)})
	}

	_, _ = fmt.Fprintf(w, "Selected: %s\n\n", strings.Join(sanitize.Tags(selected), ", "))
	if len(results) == 0 {
		_, _ = fmt.Fprintln(w, "No food matches the selected tags.")
		return nil
	}
	nameW := runewidth.StringWidth("Food")
	for _, r := range top {
		if cw := runewidth.StringWidth(sanitize.Display(r.Name)); cw > nameW {
			nameW = cw
		}
	}
	_, _ = fmt.Fprintf(w, "%-4s %s  %-7s %s\n", "#", runewidth.FillRight("Food", nameW), "Match", "Ratio")
	for i, r := range top {
		_, _ = fmt.Fprintf(w, "%-4d %s  %-7s %s\n",
			i+1,
			runewidth.FillRight(sanitize.Display(r.Name), nameW),
			fmt.Sprintf("%d/%d", r.MatchCount, r.TotalSelected),
			ui.GradeStyle(r.MatchRatio).Render(fmt.Sprintf("%.1f%%", r.MatchRatio)),
		)
	}
	if more > 0 {
		_, _ = fmt.Fprintf(w, "… %d more\n", more)
	}
	s := match.Summarize(results)
	_, _ = fmt.Fprintf(w, "\nMatches: %d  Average: %.1f%%  Best: %.1f%%\n", s.Count, s.AverageRatio, s.MaxRatio)
	parts := make([]string, 0, len(s.Buckets))
	for _, b := range s.Buckets {
		parts = append(parts, fmt.Sprintf("%s %d", b.Label, b.Count))
	}
	_, _ = fmt.Fprintln(w, strings.Join(parts, "  "))
	return nil
}

// printPick writes a random recommendation.
func printPick(w io.Writer, e catalog.Entry, format string) error {
	if format == config.OutputJSON {
		return writeJSON(w, pick{Name: e.Name, Tags: e.Tags, Random: true})
	}
	_, _ = fmt.Fprintf(w, "How about %s?\n", sanitize.Display(e.Name))
	if len(e.Tags) > 0 {
		_, _ = fmt.Fprintf(w, "Tags: %s\n", strings.Join(sanitize.Tags(e.Tags), ", "))
	}
	return nil
}
