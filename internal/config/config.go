// Package config resolves mealr's data locations and user settings.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// MEALR_* environment variables (MEALR_DISPLAY_TOP -> display.top).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultCatalogFile is the text catalog looked up in the working directory.
const DefaultCatalogFile = "음식 목록.txt"

// Catalog source modes.
const (
	SourceAuto    = "auto"
	SourceFile    = "file"
	SourceDB      = "db"
	SourceBuiltin = "builtin"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Config holds user settings.
type Config struct {
	Catalog CatalogConfig `koanf:"catalog"`
	Display DisplayConfig `koanf:"display"`
	Log     LogConfig     `koanf:"log"`
}

// CatalogConfig selects where the catalog comes from.
type CatalogConfig struct {
	Path   string `koanf:"path"`
	Source string `koanf:"source" validate:"oneof=auto file db builtin"`
}

// DisplayConfig controls result rendering.
type DisplayConfig struct {
	Top    int    `koanf:"top" validate:"min=1,max=100"`
	Output string `koanf:"output" validate:"oneof=table json"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled off"`
	Format string `koanf:"format" validate:"oneof=console json"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Catalog: CatalogConfig{Path: DefaultCatalogFile, Source: SourceAuto},
		Display: DisplayConfig{Top: 10, Output: OutputTable},
		Log:     LogConfig{Level: "warn", Format: "console"},
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load builds the settings. configPath is optional; when empty the default
// location is used and a missing file is ignored. An explicitly named file
// must exist.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	path, err := ConfigPath(configPath)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	} else if configPath != "" || !errors.Is(statErr, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file %s: %w", path, statErr)
	}

	if err := k.Load(env.Provider("MEALR_", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envKey maps MEALR_DISPLAY_TOP to display.top. Variables that name data
// locations are not settings and map to nothing.
func envKey(s string) string {
	switch s {
	case EnvMealrHome, EnvMealrDB, EnvMealrConfig:
		return ""
	}
	key := strings.ToLower(strings.TrimPrefix(s, "MEALR_"))
	section, rest, ok := strings.Cut(key, "_")
	if !ok {
		return key
	}
	return section + "." + rest
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s=%v (%s %s)", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
