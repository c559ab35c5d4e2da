// Package importer loads text catalogs into the SQLite store.
package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/nameutil"
	"github.com/VoxDroid/mealr/internal/registry"
)

// Store is the part of the registry an import writes to.
type Store interface {
	MergeCatalog(ctx context.Context, c *catalog.Catalog, policy string) (registry.WriteStats, error)
	RecordImport(ctx context.Context, source string, at time.Time) error
}

// Options controls an import.
type Options struct {
	// Policy is one of registry.PolicyReplace, PolicyMerge or PolicySkip.
	// Empty means replace.
	Policy string
	Logger zerolog.Logger
	// Now stamps the import; nil uses time.Now.
	Now func() time.Time
}

// Rejected describes a row that was not imported.
type Rejected struct {
	Name   string
	Reason string
}

// Report summarizes an import.
type Report struct {
	registry.WriteStats
	Rejected []Rejected
	// DroppedTags counts blank or invalid tags removed from kept rows.
	DroppedTags int
}

// ImportFile parses the text catalog at path, cleans it and writes it to
// store.
func ImportFile(ctx context.Context, store Store, path string, opts Options) (Report, error) {
	c, err := catalog.ParseFile(path)
	if err != nil {
		return Report{}, err
	}
	return Import(ctx, store, c, path, opts)
}

// Import cleans c and writes it to store, recording source as its origin.
// Rows whose name is unusable are rejected; unusable tags are dropped.
func Import(ctx context.Context, store Store, c *catalog.Catalog, source string, opts Options) (Report, error) {
	policy := opts.Policy
	if policy == "" {
		policy = registry.PolicyReplace
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	log := opts.Logger

	clean, rep := Clean(c)
	for _, r := range rep.Rejected {
		log.Warn().Str("name", r.Name).Str("reason", r.Reason).Msg("skipping catalog row")
	}

	st, err := store.MergeCatalog(ctx, clean, policy)
	if err != nil {
		return rep, fmt.Errorf("import %s: %w", source, err)
	}
	rep.WriteStats = st
	if err := store.RecordImport(ctx, source, now()); err != nil {
		return rep, fmt.Errorf("record import: %w", err)
	}
	log.Info().
		Str("source", source).
		Str("policy", policy).
		Int("added", st.Added).
		Int("updated", st.Updated).
		Int("skipped", st.Skipped).
		Int("rejected", len(rep.Rejected)).
		Msg("catalog imported")
	return rep, nil
}

// Clean returns a copy of c holding only rows the store accepts.
func Clean(c *catalog.Catalog) (*catalog.Catalog, Report) {
	var rep Report
	kept := make([]catalog.Entry, 0, c.Len())
	for _, e := range c.Entries() {
		name, _ := nameutil.SanitizeName(e.Name)
		if err := nameutil.ValidateName(name); err != nil {
			rep.Rejected = append(rep.Rejected, Rejected{Name: e.Name, Reason: err.Error()})
			continue
		}
		sanitized := nameutil.SanitizeTags(e.Tags)
		rep.DroppedTags += len(e.Tags) - len(sanitized)
		tags := make([]string, 0, len(sanitized))
		for _, t := range sanitized {
			if nameutil.ValidateTag(t) != nil {
				rep.DroppedTags++
				continue
			}
			tags = append(tags, t)
		}
		kept = append(kept, catalog.Entry{Name: name, Tags: tags})
	}
	return catalog.New(kept...), rep
}
