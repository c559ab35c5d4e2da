package registry

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/db"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	dbConn, err := db.Open(filepath.Join(t.TempDir(), "mealr.db"))
	if err != nil {
		t.Fatalf("db.Open(): %v", err)
	}
	t.Cleanup(func() { _ = dbConn.Close() })
	return NewRepository(dbConn)
}

func demoCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.Entry{Name: "김치찌개", Tags: []string{"점심", "매운맛", "국물있음"}},
		catalog.Entry{Name: "샐러드", Tags: []string{"점심", "가벼운"}},
		catalog.Entry{Name: "삼겹살", Tags: []string{"저녁", "친구와"}},
	)
}

func TestRepository_ReplaceAndLoad(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)

	if _, err := r.LoadCatalog(ctx); !errors.Is(err, catalog.ErrEmpty) {
		t.Fatalf("expected ErrEmpty on empty store, got %v", err)
	}

	if err := r.ReplaceCatalog(ctx, demoCatalog()); err != nil {
		t.Fatalf("ReplaceCatalog: %v", err)
	}
	got, err := r.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got.Entries(), demoCatalog().Entries()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got.Entries(), demoCatalog().Entries())
	}

	// replacing drops items that are no longer present
	small := catalog.New(catalog.Entry{Name: "라면", Tags: []string{"야식"}})
	if err := r.ReplaceCatalog(ctx, small); err != nil {
		t.Fatalf("ReplaceCatalog: %v", err)
	}
	n, err := r.CountFoods(ctx)
	if err != nil {
		t.Fatalf("CountFoods: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 food after replace, got %d", n)
	}
}

func TestRepository_MergePolicies(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	if err := r.ReplaceCatalog(ctx, demoCatalog()); err != nil {
		t.Fatalf("ReplaceCatalog: %v", err)
	}

	update := catalog.New(
		catalog.Entry{Name: "샐러드", Tags: []string{"아침"}},
		catalog.Entry{Name: "라면", Tags: []string{"야식"}},
	)

	st, err := r.MergeCatalog(ctx, update, PolicySkip)
	if err != nil {
		t.Fatalf("MergeCatalog skip: %v", err)
	}
	if st.Added != 1 || st.Skipped != 1 || st.Updated != 0 {
		t.Fatalf("unexpected skip stats %+v", st)
	}
	f, err := r.GetFoodByName(ctx, "샐러드")
	if err != nil {
		t.Fatalf("GetFoodByName: %v", err)
	}
	if !reflect.DeepEqual(f.Tags, []string{"점심", "가벼운"}) {
		t.Fatalf("skip policy changed tags: %v", f.Tags)
	}

	st, err = r.MergeCatalog(ctx, update, PolicyMerge)
	if err != nil {
		t.Fatalf("MergeCatalog merge: %v", err)
	}
	if st.Updated != 2 || st.Added != 0 {
		t.Fatalf("unexpected merge stats %+v", st)
	}
	f, err = r.GetFoodByName(ctx, "샐러드")
	if err != nil {
		t.Fatalf("GetFoodByName: %v", err)
	}
	if !reflect.DeepEqual(f.Tags, []string{"아침"}) {
		t.Fatalf("merge policy did not overwrite tags: %v", f.Tags)
	}
	if !f.UpdatedAt.Valid {
		t.Fatalf("expected updated_at to be set after merge")
	}

	names := []string{}
	foods, err := r.ListFoods(ctx)
	if err != nil {
		t.Fatalf("ListFoods: %v", err)
	}
	for _, f := range foods {
		names = append(names, f.Name)
	}
	want := []string{"김치찌개", "샐러드", "삼겹살", "라면"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("expected order %v, got %v", want, names)
	}
}

func TestRepository_WriteRejectsBadPolicyAndNames(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	if _, err := r.MergeCatalog(ctx, demoCatalog(), "overwrite"); err == nil {
		t.Fatalf("expected error for unknown policy")
	}
	bad := catalog.New(catalog.Entry{Name: "a:b", Tags: []string{"x"}})
	if err := r.ReplaceCatalog(ctx, bad); err == nil {
		t.Fatalf("expected error for name containing a colon")
	}
	n, _ := r.CountFoods(ctx)
	if n != 0 {
		t.Fatalf("failed write should roll back, got %d foods", n)
	}
}

func TestRepository_GetFoodByNameNotFound(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.GetFoodByName(context.Background(), "없음"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRepository_ListByTagAndSearch(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	if err := r.ReplaceCatalog(ctx, demoCatalog()); err != nil {
		t.Fatalf("ReplaceCatalog: %v", err)
	}

	lunch, err := r.ListFoodsByTag(ctx, "점심")
	if err != nil {
		t.Fatalf("ListFoodsByTag: %v", err)
	}
	if len(lunch) != 2 || lunch[0].Name != "김치찌개" || lunch[1].Name != "샐러드" {
		t.Fatalf("unexpected lunch foods %+v", lunch)
	}
	if len(lunch[0].Tags) != 3 {
		t.Fatalf("expected full tag list on tag query, got %v", lunch[0].Tags)
	}

	res, err := r.SearchFoods(ctx, "친구")
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if len(res) != 1 || res[0].Name != "삼겹살" {
		t.Fatalf("expected tag substring match, got %+v", res)
	}
	res, err = r.SearchFoods(ctx, "찌개")
	if err != nil {
		t.Fatalf("SearchFoods: %v", err)
	}
	if len(res) != 1 || res[0].Name != "김치찌개" {
		t.Fatalf("expected name substring match, got %+v", res)
	}
}

func TestRepository_MetaAndClear(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	if _, ok, err := r.GetMeta(ctx, MetaSource); err != nil || ok {
		t.Fatalf("expected unset meta, got ok=%v err=%v", ok, err)
	}
	if err := r.ReplaceCatalog(ctx, demoCatalog()); err != nil {
		t.Fatalf("ReplaceCatalog: %v", err)
	}
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	if err := r.RecordImport(ctx, "foods.txt", at); err != nil {
		t.Fatalf("RecordImport: %v", err)
	}
	v, ok, err := r.GetMeta(ctx, MetaImportedAt)
	if err != nil || !ok || v != "2024-05-01T12:00:00Z" {
		t.Fatalf("unexpected imported_at %q ok=%v err=%v", v, ok, err)
	}
	if err := r.SetMeta(ctx, MetaSource, "other.txt"); err != nil {
		t.Fatalf("SetMeta: %v", err)
	}
	if v, _, _ := r.GetMeta(ctx, MetaSource); v != "other.txt" {
		t.Fatalf("expected overwritten meta, got %q", v)
	}

	if err := r.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, _ := r.CountFoods(ctx); n != 0 {
		t.Fatalf("expected empty store after Clear, got %d", n)
	}
	if _, ok, _ := r.GetMeta(ctx, MetaSource); ok {
		t.Fatalf("expected meta to be cleared")
	}
}

func TestRepository_ImplementsSource(t *testing.T) {
	var s catalog.Source = newTestRepo(t)
	if s.Describe() != "db" {
		t.Fatalf("unexpected description %q", s.Describe())
	}
}
