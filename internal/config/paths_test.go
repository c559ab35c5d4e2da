package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDataDirEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvMealrHome, tmp)

	d, err := DataDir()
	if err != nil {
		t.Fatalf("DataDir(): %v", err)
	}
	if d != tmp {
		t.Fatalf("expected %s got %s", tmp, d)
	}
}

func TestDBPathEnvOverride(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "custom.db")
	t.Setenv(EnvMealrDB, tmp)

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != tmp {
		t.Fatalf("expected %s got %s", tmp, p)
	}
}

func TestDBPathDefaultsUnderDataDir(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvMealrHome, tmp)
	t.Setenv(EnvMealrDB, "")

	p, err := DBPath()
	if err != nil {
		t.Fatalf("DBPath(): %v", err)
	}
	if p != filepath.Join(tmp, "mealr.db") {
		t.Fatalf("unexpected db path %s", p)
	}
}

func TestEnsureDataDirCreatesDir(t *testing.T) {
	t.Setenv(EnvMealrHome, "")
	tmp := t.TempDir()
	// fake home by setting HOME/USERPROFILE
	t.Setenv("HOME", tmp)
	t.Setenv("USERPROFILE", tmp)

	d, err := EnsureDataDir()
	if err != nil {
		t.Fatalf("EnsureDataDir(): %v", err)
	}
	if _, err := os.Stat(d); err != nil {
		t.Fatalf("expected dir %s to exist: %v", d, err)
	}
	if filepath.Base(d) != ".mealr" {
		t.Fatalf("expected .mealr dir, got %s", d)
	}
}

func TestConfigPathPrecedence(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv(EnvMealrHome, tmp)
	t.Setenv(EnvMealrConfig, "")

	p, err := ConfigPath("")
	if err != nil {
		t.Fatalf("ConfigPath(): %v", err)
	}
	if p != filepath.Join(tmp, "config.yaml") {
		t.Fatalf("unexpected default config path %s", p)
	}

	t.Setenv(EnvMealrConfig, "/from/env.yaml")
	if p, _ = ConfigPath(""); p != "/from/env.yaml" {
		t.Fatalf("expected env path, got %s", p)
	}
	if p, _ = ConfigPath("/explicit.yaml"); p != "/explicit.yaml" {
		t.Fatalf("expected explicit path, got %s", p)
	}
}
