package db

import (
	"os"
	"testing"

	"github.com/VoxDroid/mealr/internal/config"
)

func TestInitDBCreatesFileAndSchema(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(config.EnvMealrHome, tmp)
	t.Setenv(config.EnvMealrDB, "")

	dbPath, err := config.DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}

	db, err := InitDB()
	if err != nil {
		t.Fatalf("InitDB() error: %v", err)
	}
	defer func() { _ = db.Close() }()

	if _, err := os.Stat(dbPath); err != nil {
		t.Fatalf("db file not created: %v", err)
	}

	for _, table := range []string{"foods", "tags", "food_tags", "catalog_meta"} {
		var count int
		r := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table)
		if err := r.Scan(&count); err != nil {
			t.Fatalf("query schema: %v", err)
		}
		if count != 1 {
			t.Fatalf("expected table %q to exist", table)
		}
	}

	// Basic smoke test: ensure we can insert a food
	if _, err := db.Exec("INSERT INTO foods (name, position, created_at) VALUES (?, ?, datetime('now'))", "라면", 1); err != nil {
		t.Fatalf("insert food failed: %v", err)
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	tmp := t.TempDir()
	db, err := Open(tmp + "/twice.db")
	if err != nil {
		t.Fatalf("Open(): %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := ApplyMigrations(db); err != nil {
		t.Fatalf("second ApplyMigrations: %v", err)
	}
	if _, err := db.Exec("UPDATE foods SET updated_at = datetime('now')"); err != nil {
		t.Fatalf("expected updated_at column: %v", err)
	}
}
