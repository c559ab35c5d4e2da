package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the data dir at a fresh temp dir and clears settings
// variables that may leak in from the environment.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv(EnvMealrHome, tmp)
	t.Setenv(EnvMealrConfig, "")
	for _, kv := range os.Environ() {
		k, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(k, "MEALR_") && k != EnvMealrHome && k != EnvMealrConfig {
			t.Setenv(k, "")
			_ = os.Unsetenv(k)
		}
	}
	return tmp
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	want := Default()
	if *cfg != *want {
		t.Fatalf("expected defaults %+v, got %+v", want, cfg)
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	tmp := isolate(t)
	yml := "catalog:\n  source: db\ndisplay:\n  top: 5\n  output: json\nlog:\n  level: debug\n"
	if err := os.WriteFile(filepath.Join(tmp, "config.yaml"), []byte(yml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MEALR_DISPLAY_TOP", "3")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Catalog.Source != SourceDB {
		t.Fatalf("expected source db, got %q", cfg.Catalog.Source)
	}
	if cfg.Display.Top != 3 {
		t.Fatalf("expected env to override top, got %d", cfg.Display.Top)
	}
	if cfg.Display.Output != OutputJSON {
		t.Fatalf("expected json output, got %q", cfg.Display.Output)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.Log.Level)
	}
	if cfg.Catalog.Path != DefaultCatalogFile {
		t.Fatalf("expected default catalog path to survive, got %q", cfg.Catalog.Path)
	}
}

func TestLoadCatalogPathFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("MEALR_CATALOG_PATH", "/tmp/foods.txt")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if cfg.Catalog.Path != "/tmp/foods.txt" {
		t.Fatalf("expected catalog path from env, got %q", cfg.Catalog.Path)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	tmp := isolate(t)
	if _, err := Load(filepath.Join(tmp, "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tmp := isolate(t)
	p := filepath.Join(tmp, "bad.yaml")
	if err := os.WriteFile(p, []byte("display:\n  top: 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	_, err := Load(p)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "Top") {
		t.Fatalf("expected error to name the field, got %v", err)
	}

	t.Setenv("MEALR_CATALOG_SOURCE", "cloud")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected validation error for unknown source")
	}
}

func TestEnvKey(t *testing.T) {
	cases := map[string]string{
		"MEALR_DISPLAY_TOP":    "display.top",
		"MEALR_CATALOG_SOURCE": "catalog.source",
		"MEALR_LOG_LEVEL":      "log.level",
		EnvMealrHome:           "",
		EnvMealrDB:             "",
		EnvMealrConfig:         "",
	}
	for in, want := range cases {
		if got := envKey(in); got != want {
			t.Fatalf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}
