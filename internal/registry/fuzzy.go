package registry

import (
	"context"
	"strings"

	"github.com/sahilm/fuzzy"
)

// foodSource exposes foods to fuzzy.FindFrom, matching on the name followed
// by the tags.
type foodSource []Food

func (s foodSource) String(i int) string {
	return s[i].Name + " " + strings.Join(s[i].Tags, " ")
}

func (s foodSource) Len() int { return len(s) }

// FuzzyMatch reports whether query fuzzy-matches target.
func FuzzyMatch(target, query string) bool {
	if query == "" {
		return true
	}
	return len(fuzzy.Find(query, []string{target})) > 0
}

// FuzzySearchFoods ranks stored foods against query by name and tags, best
// match first. An empty query returns every food in catalog order.
func (r *Repository) FuzzySearchFoods(ctx context.Context, query string) ([]Food, error) {
	foods, err := r.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return foods, nil
	}
	matches := fuzzy.FindFrom(query, foodSource(foods))
	out := make([]Food, 0, len(matches))
	for _, m := range matches {
		out = append(out, foods[m.Index])
	}
	return out, nil
}
