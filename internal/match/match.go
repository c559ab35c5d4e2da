// Package match scores catalog items against a set of selected tags.
package match

import (
	"cmp"
	"errors"
	"math"
	"slices"
	"strings"

	"github.com/VoxDroid/mealr/internal/catalog"
)

// ErrNoSelection is returned when scoring is requested without any tags.
// Callers are expected to offer a random pick instead.
var ErrNoSelection = errors.New("no tags selected")

// Selection is an ordered set of tags.
type Selection struct {
	tags []string
	set  map[string]struct{}
}

// NewSelection builds a selection from tags, trimming each and dropping
// empty and repeated values.
func NewSelection(tags ...string) Selection {
	s := Selection{set: make(map[string]struct{}, len(tags))}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := s.set[t]; dup {
			continue
		}
		s.set[t] = struct{}{}
		s.tags = append(s.tags, t)
	}
	return s
}

// Len returns the number of distinct selected tags.
func (s Selection) Len() int { return len(s.tags) }

// Tags returns the selected tags in the order they were first given.
func (s Selection) Tags() []string { return slices.Clone(s.tags) }

// Has reports whether tag is selected.
func (s Selection) Has(tag string) bool {
	_, ok := s.set[tag]
	return ok
}

// Result is one scored catalog item.
type Result struct {
	Name          string   `json:"name"`
	MatchCount    int      `json:"match_count"`
	TotalSelected int      `json:"total_selected"`
	MatchRatio    float64  `json:"match_ratio"`
	Tags          []string `json:"tags"`
}

// Match scores every item in c against sel and returns those sharing at
// least one tag, ordered by match count descending. Items with equal counts
// keep their catalog order.
func Match(c *catalog.Catalog, sel Selection) ([]Result, error) {
	if sel.Len() == 0 {
		return nil, ErrNoSelection
	}
	total := sel.Len()
	var out []Result
	for _, e := range c.Entries() {
		n := countMatches(e.Tags, sel)
		if n == 0 {
			continue
		}
		out = append(out, Result{
			Name:          e.Name,
			MatchCount:    n,
			TotalSelected: total,
			MatchRatio:    Ratio(n, total),
			Tags:          e.Tags,
		})
	}
	slices.SortStableFunc(out, func(a, b Result) int {
		return cmp.Compare(b.MatchCount, a.MatchCount)
	})
	return out, nil
}

// countMatches counts selected tags present in tags. Repeated item tags do
// not count twice.
func countMatches(tags []string, sel Selection) int {
	n := 0
	for _, t := range sel.tags {
		if slices.Contains(tags, t) {
			n++
		}
	}
	return n
}

// Ratio returns matched/total as a percentage rounded to one decimal place,
// halves going to the even neighbour. total must be positive.
func Ratio(matched, total int) float64 {
	return round1(float64(matched) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

// Top splits results into the first n and the count of those left over.
func Top(results []Result, n int) ([]Result, int) {
	if n < 0 {
		n = 0
	}
	if len(results) <= n {
		return results, 0
	}
	return results[:n], len(results) - n
}
