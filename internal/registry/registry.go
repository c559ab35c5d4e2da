package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/nameutil"
)

// ErrNotFound is returned when a requested food does not exist.
var ErrNotFound = errors.New("not found")

// Repository provides catalog storage on top of a SQLite connection.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the underlying DB connection used by the Repository.
func (r *Repository) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// WriteStats reports what a catalog write changed.
type WriteStats struct {
	Added   int
	Updated int
	Skipped int
}

// MergeCatalog stores every entry of c according to policy (PolicyReplace,
// PolicyMerge or PolicySkip) in a single transaction. Names and tags are
// validated; the first invalid value aborts the write.
func (r *Repository) MergeCatalog(ctx context.Context, c *catalog.Catalog, policy string) (WriteStats, error) {
	var st WriteStats
	switch policy {
	case PolicyReplace, PolicyMerge, PolicySkip:
	default:
		return st, fmt.Errorf("unknown import policy %q", policy)
	}

	trx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return st, err
	}
	defer func() { _ = trx.Rollback() }()

	if policy == PolicyReplace {
		if err := clearTx(ctx, trx); err != nil {
			return st, err
		}
	}

	var maxPos int
	if err := trx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) FROM foods").Scan(&maxPos); err != nil {
		return st, err
	}

	for _, e := range c.Entries() {
		name := strings.TrimSpace(e.Name)
		if err := nameutil.ValidateName(name); err != nil {
			return st, err
		}
		for _, t := range e.Tags {
			if err := nameutil.ValidateTag(t); err != nil {
				return st, fmt.Errorf("%s: %w", name, err)
			}
		}

		id, err := foodIDTx(ctx, trx, name)
		switch {
		case errors.Is(err, ErrNotFound):
			maxPos++
			res, err := trx.ExecContext(ctx, "INSERT INTO foods (name, position, created_at) VALUES (?, ?, datetime('now'))", name, maxPos)
			if err != nil {
				return st, fmt.Errorf("insert food %q: %w", name, err)
			}
			id, err = res.LastInsertId()
			if err != nil {
				return st, err
			}
			if err := replaceTagsTx(ctx, trx, id, e.Tags); err != nil {
				return st, err
			}
			st.Added++
		case err != nil:
			return st, err
		case policy == PolicySkip:
			st.Skipped++
		default:
			if err := replaceTagsTx(ctx, trx, id, e.Tags); err != nil {
				return st, err
			}
			if _, err := trx.ExecContext(ctx, "UPDATE foods SET updated_at = datetime('now') WHERE id = ?", id); err != nil {
				return st, err
			}
			st.Updated++
		}
	}

	if err := pruneTagsTx(ctx, trx); err != nil {
		return st, err
	}
	return st, trx.Commit()
}

// ReplaceCatalog swaps the stored catalog for c.
func (r *Repository) ReplaceCatalog(ctx context.Context, c *catalog.Catalog) error {
	_, err := r.MergeCatalog(ctx, c, PolicyReplace)
	return err
}

func foodIDTx(ctx context.Context, trx *sql.Tx, name string) (int64, error) {
	var id int64
	err := trx.QueryRowContext(ctx, "SELECT id FROM foods WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNotFound
	}
	return id, err
}

func replaceTagsTx(ctx context.Context, trx *sql.Tx, foodID int64, tags []string) error {
	if _, err := trx.ExecContext(ctx, "DELETE FROM food_tags WHERE food_id = ?", foodID); err != nil {
		return err
	}
	for i, tag := range tags {
		tag = strings.TrimSpace(tag)
		if _, err := trx.ExecContext(ctx, "INSERT OR IGNORE INTO tags (name) VALUES (?)", tag); err != nil {
			return err
		}
		var tagID int64
		if err := trx.QueryRowContext(ctx, "SELECT id FROM tags WHERE name = ?", tag).Scan(&tagID); err != nil {
			return err
		}
		if _, err := trx.ExecContext(ctx, "INSERT INTO food_tags (food_id, position, tag_id) VALUES (?, ?, ?)", foodID, i+1, tagID); err != nil {
			return fmt.Errorf("insert food tag: %w", err)
		}
	}
	return nil
}

func clearTx(ctx context.Context, trx *sql.Tx) error {
	for _, q := range []string{"DELETE FROM food_tags", "DELETE FROM foods", "DELETE FROM tags"} {
		if _, err := trx.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}

func pruneTagsTx(ctx context.Context, trx *sql.Tx) error {
	_, err := trx.ExecContext(ctx, "DELETE FROM tags WHERE id NOT IN (SELECT DISTINCT tag_id FROM food_tags)")
	return err
}

// Clear removes every stored food, tag and meta entry.
func (r *Repository) Clear(ctx context.Context) error {
	trx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = trx.Rollback() }()
	if err := clearTx(ctx, trx); err != nil {
		return err
	}
	if _, err := trx.ExecContext(ctx, "DELETE FROM catalog_meta"); err != nil {
		return err
	}
	return trx.Commit()
}

// LoadCatalog reads the stored foods as a catalog in stored order. It returns
// catalog.ErrEmpty when nothing is stored.
func (r *Repository) LoadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	foods, err := r.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, catalog.ErrEmpty
	}
	entries := make([]catalog.Entry, 0, len(foods))
	for _, f := range foods {
		entries = append(entries, catalog.Entry{Name: f.Name, Tags: f.Tags})
	}
	return catalog.New(entries...), nil
}

const foodColumns = "f.id, f.name, f.position, f.created_at, f.updated_at"

func (r *Repository) queryFoods(ctx context.Context, query string, args ...any) ([]Food, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []Food
	for rows.Next() {
		var f Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Position, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// release the connection before loading tags
	_ = rows.Close()
	if err := r.attachTags(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// attachTags loads the ordered tags of every food in foods.
func (r *Repository) attachTags(ctx context.Context, foods []Food) error {
	if len(foods) == 0 {
		return nil
	}
	idx := make(map[int64]int, len(foods))
	for i, f := range foods {
		idx[f.ID] = i
	}
	q := "SELECT ft.food_id, t.name FROM food_tags ft JOIN tags t ON t.id = ft.tag_id"
	var args []any
	if len(foods) == 1 {
		q += " WHERE ft.food_id = ?"
		args = append(args, foods[0].ID)
	}
	q += " ORDER BY ft.food_id, ft.position"
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return err
		}
		if i, ok := idx[id]; ok {
			foods[i].Tags = append(foods[i].Tags, name)
		}
	}
	return rows.Err()
}

// ListFoods returns all stored foods in catalog order.
func (r *Repository) ListFoods(ctx context.Context) ([]Food, error) {
	return r.queryFoods(ctx, "SELECT "+foodColumns+" FROM foods f ORDER BY f.position ASC")
}

// GetFoodByName retrieves a food and its tags, or ErrNotFound.
func (r *Repository) GetFoodByName(ctx context.Context, name string) (*Food, error) {
	foods, err := r.queryFoods(ctx, "SELECT "+foodColumns+" FROM foods f WHERE f.name = ?", name)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		return nil, ErrNotFound
	}
	return &foods[0], nil
}

// ListFoodsByTag returns all foods that have the given tag.
func (r *Repository) ListFoodsByTag(ctx context.Context, tag string) ([]Food, error) {
	return r.queryFoods(ctx, `
		SELECT DISTINCT `+foodColumns+`
		FROM foods f
		JOIN food_tags ft ON ft.food_id = f.id
		JOIN tags t ON t.id = ft.tag_id
		WHERE t.name = ?
		ORDER BY f.position ASC
	`, tag)
}

// SearchFoods searches foods by name or tag substring.
func (r *Repository) SearchFoods(ctx context.Context, query string) ([]Food, error) {
	pattern := "%" + query + "%"
	return r.queryFoods(ctx, `
		SELECT DISTINCT `+foodColumns+`
		FROM foods f
		LEFT JOIN food_tags ft ON ft.food_id = f.id
		LEFT JOIN tags t ON t.id = ft.tag_id
		WHERE f.name LIKE ? OR t.name LIKE ?
		ORDER BY f.position ASC
	`, pattern, pattern)
}

// CountFoods returns the number of stored foods.
func (r *Repository) CountFoods(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT count(*) FROM foods").Scan(&n)
	return n, err
}

// SetMeta records a key/value pair about the stored catalog.
func (r *Repository) SetMeta(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO catalog_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

// GetMeta reads a meta value; ok is false when the key is unset.
func (r *Repository) GetMeta(ctx context.Context, key string) (value string, ok bool, err error) {
	err = r.db.QueryRowContext(ctx, "SELECT value FROM catalog_meta WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// RecordImport stores where the current catalog came from.
func (r *Repository) RecordImport(ctx context.Context, source string, at time.Time) error {
	if err := r.SetMeta(ctx, MetaSource, source); err != nil {
		return err
	}
	return r.SetMeta(ctx, MetaImportedAt, at.UTC().Format(time.RFC3339))
}

// Describe names the repository as a catalog source.
func (r *Repository) Describe() string { return "db" }

// Load implements catalog.Source.
func (r *Repository) Load(ctx context.Context) (*catalog.Catalog, error) {
	return r.LoadCatalog(ctx)
}
