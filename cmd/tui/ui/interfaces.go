package ui

import (
	"context"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/match"
)

// Model defines the subset of the framework-agnostic internal UI model that
// the TUI depends on, so tests can provide fakes.
//
// Named `Model` (instead of `UIModel`) to avoid redundant package/type
// stuttering when referenced as `ui.Model`.
type Model interface {
	Reload(ctx context.Context)
	Catalog() *catalog.Catalog
	Origin() string
	Groups() []catalog.Category
	Toggle(tag string) bool
	IsSelected(tag string) bool
	Clear()
	Selected() []string
	Results() ([]match.Result, error)
	Summary(results []match.Result) match.Summary
	Random() (catalog.Entry, error)
}
