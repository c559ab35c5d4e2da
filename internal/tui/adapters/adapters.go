// Package adapters provides adapter interfaces used by the TUI to decouple it
// from catalog resolution and storage.
package adapters

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/VoxDroid/mealr/internal/catalog"
)

// CatalogAdapter resolves the active catalog. Implementations never fail:
// they fall back to the built-in catalog and report which source won.
type CatalogAdapter interface {
	Load(ctx context.Context) (*catalog.Catalog, string)
}

// SourceChain tries Sources in order, as catalog.Load does.
type SourceChain struct {
	Sources []catalog.Source
	Log     zerolog.Logger
}

// Load implements CatalogAdapter.
func (s SourceChain) Load(ctx context.Context) (*catalog.Catalog, string) {
	return catalog.Load(ctx, s.Log, s.Sources...)
}

// Static always returns the same catalog.
type Static struct {
	Catalog *catalog.Catalog
	Origin  string
}

// Load implements CatalogAdapter.
func (s Static) Load(_ context.Context) (*catalog.Catalog, string) {
	return s.Catalog, s.Origin
}
