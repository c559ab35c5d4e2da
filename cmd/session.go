package cmd

import (
	"context"
	"os"

	"github.com/VoxDroid/mealr/internal/catalog"
	"github.com/VoxDroid/mealr/internal/config"
	"github.com/VoxDroid/mealr/internal/db"
	"github.com/VoxDroid/mealr/internal/logging"
	"github.com/VoxDroid/mealr/internal/registry"
)

// session holds the catalog sources for one command run.
type session struct {
	repo    *registry.Repository
	sources []catalog.Source
}

// openStore opens the SQLite catalog store.
func openStore() (*registry.Repository, error) {
	dbConn, err := db.InitDB()
	if err != nil {
		return nil, err
	}
	return registry.NewRepository(dbConn), nil
}

// newSession builds the source chain for the configured mode. In auto mode
// the store joins the chain only when its file already exists. A store that
// cannot be opened is logged and left out; the built-in catalog is always
// the final fallback.
func newSession() *session {
	log := logging.Logger()
	s := &session{}
	mode := settings.Catalog.Source

	if mode == config.SourceDB || (mode == config.SourceAuto && storeExists()) {
		repo, err := openStore()
		if err != nil {
			log.Warn().Err(err).Msg("catalog store unavailable")
		} else {
			s.repo = repo
		}
	}

	filePath := settings.Catalog.Path
	if catalogFlag != "" {
		filePath = catalogFlag
	}

	switch mode {
	case config.SourceBuiltin:
		s.sources = []catalog.Source{catalog.BuiltinSource{}}
	case config.SourceFile:
		s.sources = []catalog.Source{catalog.FileSource{Path: filePath}}
	case config.SourceDB:
		s.sources = s.storeSources()
	default:
		if catalogFlag != "" {
			s.sources = append(s.sources, catalog.FileSource{Path: catalogFlag})
		}
		s.sources = append(s.sources, s.storeSources()...)
		if settings.Catalog.Path != "" {
			s.sources = append(s.sources, catalog.FileSource{Path: settings.Catalog.Path})
		}
	}
	return s
}

// storeExists reports whether a catalog store was created by an earlier
// import; read-only commands in auto mode must not create one.
func storeExists() bool {
	p, err := config.DBPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(p)
	return err == nil
}

func (s *session) storeSources() []catalog.Source {
	if s.repo == nil {
		return nil
	}
	return []catalog.Source{s.repo}
}

// Load implements adapters.CatalogAdapter.
func (s *session) Load(ctx context.Context) (*catalog.Catalog, string) {
	log := logging.With().Str("component", "catalog").Logger()
	return catalog.Load(ctx, log, s.sources...)
}

// Close releases the store connection if one was opened.
func (s *session) Close() {
	if s.repo != nil {
		_ = s.repo.Close()
	}
}

// loadCatalog resolves the active catalog for a one-shot command.
func loadCatalog(ctx context.Context) (*catalog.Catalog, string) {
	s := newSession()
	defer s.Close()
	return s.Load(ctx)
}
