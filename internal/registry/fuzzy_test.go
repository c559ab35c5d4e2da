package registry

import (
	"context"
	"testing"
)

func TestFuzzyMatchBasics(t *testing.T) {
	cases := []struct {
		target string
		query  string
		expect bool
	}{
		{"alpha", "al", true},
		{"alpha", "ah", true},
		{"alpha", "xa", false},
		{"김치찌개", "김찌", true},
		{"김치찌개", "찌김", false},
		{"Hello", "", true},
	}
	for _, c := range cases {
		got := FuzzyMatch(c.target, c.query)
		if got != c.expect {
			t.Fatalf("FuzzyMatch(%q, %q) = %v, want %v", c.target, c.query, got, c.expect)
		}
	}
}

func TestFuzzySearchFoods(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	if err := r.ReplaceCatalog(ctx, demoCatalog()); err != nil {
		t.Fatalf("ReplaceCatalog: %v", err)
	}

	res, err := r.FuzzySearchFoods(ctx, "김찌")
	if err != nil {
		t.Fatalf("FuzzySearchFoods: %v", err)
	}
	if len(res) == 0 || res[0].Name != "김치찌개" {
		t.Fatalf("expected 김치찌개 first, got %+v", res)
	}

	// tags are searched too
	res, err = r.FuzzySearchFoods(ctx, "친구")
	if err != nil {
		t.Fatalf("FuzzySearchFoods: %v", err)
	}
	if len(res) != 1 || res[0].Name != "삼겹살" {
		t.Fatalf("expected 삼겹살 via tag, got %+v", res)
	}

	all, err := r.FuzzySearchFoods(ctx, "  ")
	if err != nil {
		t.Fatalf("FuzzySearchFoods: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected blank query to return all foods, got %d", len(all))
	}
}
