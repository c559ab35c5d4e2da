package config

import (
	"os"
	"path/filepath"
)

// Environment overrides for data locations.
const (
	EnvMealrHome   = "MEALR_HOME"
	EnvMealrDB     = "MEALR_DB"
	EnvMealrConfig = "MEALR_CONFIG"
)

// DataDir returns the directory used to store mealr data.
func DataDir() (string, error) {
	if d := os.Getenv(EnvMealrHome); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".mealr"), nil
}

// EnsureDataDir returns DataDir after creating it if needed.
func EnsureDataDir() (string, error) {
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(d, 0o755); err != nil {
		return "", err
	}
	return d, nil
}

// DBPath returns the full path to the SQLite catalog store.
func DBPath() (string, error) {
	if p := os.Getenv(EnvMealrDB); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "mealr.db"), nil
}

// ConfigPath returns the settings file location: explicit wins, then
// $MEALR_CONFIG, then config.yaml in the data dir.
func ConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(EnvMealrConfig); p != "" {
		return p, nil
	}
	d, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(d, "config.yaml"), nil
}
