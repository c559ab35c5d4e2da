// Package model provides a framework-agnostic UI model for the recommender
// so the TUI code can remain presentation-focused.
package model

import (
	"context"
	"math/rand/v2"
	"slices"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/match"
	"github.com/VoxDroid/mealr/internal/tui/adapters"
)

// UIModel holds the active catalog and the user's tag selection.
type UIModel struct {
	loader adapters.CatalogAdapter
	rng    *rand.Rand

	cat    *catalog.Catalog
	origin string
	groups []catalog.Category
	// selected keeps tags in the order they were picked
	selected []string
}

// New constructs a UIModel backed by loader and loads the catalog once.
// rng may be nil for the package-level source.
func New(ctx context.Context, loader adapters.CatalogAdapter, rng *rand.Rand) *UIModel {
	m := &UIModel{loader: loader, rng: rng}
	m.Reload(ctx)
	return m
}

// Reload resolves the catalog again. The selection is kept.
func (m *UIModel) Reload(ctx context.Context) {
	m.cat, m.origin = m.loader.Load(ctx)
	m.groups = catalog.GroupTags(m.cat)
}

// Catalog returns the active catalog.
func (m *UIModel) Catalog() *catalog.Catalog { return m.cat }

// Origin describes where the active catalog came from.
func (m *UIModel) Origin() string { return m.origin }

// Groups returns the tag vocabulary grouped by category.
func (m *UIModel) Groups() []catalog.Category { return m.groups }

// Toggle flips tag in the selection and reports whether it is now selected.
func (m *UIModel) Toggle(tag string) bool {
	if i := slices.Index(m.selected, tag); i >= 0 {
		m.selected = slices.Delete(m.selected, i, i+1)
		return false
	}
	m.selected = append(m.selected, tag)
	return true
}

// IsSelected reports whether tag is selected.
func (m *UIModel) IsSelected(tag string) bool { return slices.Contains(m.selected, tag) }

// Clear empties the selection.
func (m *UIModel) Clear() { m.selected = nil }

// Selected returns the selected tags in pick order.
func (m *UIModel) Selected() []string { return slices.Clone(m.selected) }

// Results scores the catalog against the selection. It returns
// match.ErrNoSelection when nothing is selected; callers route that case to
// Random.
func (m *UIModel) Results() ([]match.Result, error) {
	return match.Match(m.cat, match.NewSelection(m.selected...))
}

// Summary returns statistics for results.
func (m *UIModel) Summary(results []match.Result) match.Summary {
	return match.Summarize(results)
}

// Random picks one item from the catalog.
func (m *UIModel) Random() (catalog.Entry, error) {
	return match.Random(m.cat, m.rng)
}
