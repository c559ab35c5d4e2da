package catalog

import (
	"context"
	"errors"
	"io/fs"

	"github.com/rs/zerolog"
)

// ErrEmpty is returned by sources that are reachable but hold no items.
var ErrEmpty = errors.New("catalog source is empty")

// Source produces a catalog.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
	// Describe names the source for logs and status output.
	Describe() string
}

// FileSource reads a text catalog from Path.
type FileSource struct {
	Path string
}

// Load parses the file. A file that exists but lists no items is a valid,
// empty catalog.
func (s FileSource) Load(_ context.Context) (*Catalog, error) {
	return ParseFile(s.Path)
}

// Describe implements Source.
func (s FileSource) Describe() string { return "file:" + s.Path }

// BuiltinSource always yields the built-in catalog.
type BuiltinSource struct{}

// Load implements Source.
func (BuiltinSource) Load(_ context.Context) (*Catalog, error) { return Default(), nil }

// Describe implements Source.
func (BuiltinSource) Describe() string { return OriginBuiltin }

// OriginBuiltin is the origin reported when the built-in catalog is used.
const OriginBuiltin = "builtin"

// Load tries each source in order and returns the first catalog that loads
// together with the description of the source it came from. Failures are
// never surfaced: a missing file is expected and only logged at debug level,
// anything else is a warning. When every source fails the built-in catalog
// is returned.
func Load(ctx context.Context, log zerolog.Logger, sources ...Source) (*Catalog, string) {
	for _, src := range sources {
		if src == nil {
			continue
		}
		c, err := src.Load(ctx)
		if err == nil {
			log.Debug().Str("source", src.Describe()).Int("items", c.Len()).Msg("catalog loaded")
			return c, src.Describe()
		}
		switch {
		case errors.Is(err, fs.ErrNotExist), errors.Is(err, ErrEmpty):
			log.Debug().Str("source", src.Describe()).Err(err).Msg("catalog source unavailable")
		default:
			log.Warn().Str("source", src.Describe()).Err(err).Msg("catalog source failed, trying next")
		}
	}
	log.Debug().Msg("using built-in catalog")
	return Default(), OriginBuiltin
}
