// Package registry stores the food catalog in SQLite.
package registry

import "database/sql"

// Food is a stored catalog item.
type Food struct {
	ID        int64
	Name      string
	Position  int
	CreatedAt string
	UpdatedAt sql.NullString
	Tags      []string
}

// Meta keys recorded on import.
const (
	MetaSource     = "source"
	MetaImportedAt = "imported_at"
)

// Import conflict policies.
const (
	// PolicyReplace wipes the store before inserting.
	PolicyReplace = "replace"
	// PolicyMerge overwrites the tags of existing items and appends new ones.
	PolicyMerge = "merge"
	// PolicySkip leaves existing items alone and appends new ones.
	PolicySkip = "skip"
)
