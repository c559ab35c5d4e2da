package db

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func TestTriggersRejectEmptyAndDuplicateInserts(t *testing.T) {
	// in-memory DB
	db, err := sql.Open("sqlite", "file:test_triggers?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	if err := ApplyMigrations(db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	// empty name insert should fail
	if _, err := db.Exec("INSERT INTO foods (name, position, created_at) VALUES (?, ?, datetime('now'))", "   ", 1); err == nil {
		t.Fatalf("expected insert with empty name to be rejected by trigger")
	}

	// good insert should succeed
	if _, err := db.Exec("INSERT INTO foods (name, position, created_at) VALUES (?, ?, datetime('now'))", "피자", 1); err != nil {
		t.Fatalf("unexpected insert error: %v", err)
	}

	// duplicate (trimmed) insert should fail
	if _, err := db.Exec("INSERT INTO foods (name, position, created_at) VALUES (?, ?, datetime('now'))", " 피자 ", 2); err == nil {
		t.Fatalf("expected duplicate trimmed insert to be rejected by trigger")
	}
}

func TestRejectBlobNameInsert(t *testing.T) {
	db, err := sql.Open("sqlite", "file:test_blob?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer func() { _ = db.Close() }()
	if err := ApplyMigrations(db); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	// Try inserting a blob name via []byte param (driver binds as blob)
	if _, err := db.Exec("INSERT INTO foods (name, position, created_at) VALUES (?, ?, datetime('now'))", []byte{0xff, 0xfe}, 1); err == nil {
		t.Fatalf("expected blob insert to be rejected by trigger")
	}
	if _, err := db.Exec("INSERT INTO tags (name) VALUES (?)", []byte{0xff}); err == nil {
		t.Fatalf("expected blob tag insert to be rejected by trigger")
	}
}
