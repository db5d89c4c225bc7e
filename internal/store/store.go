package store

import (
	"context"
	"fmt"
	"log/slog"

	"trackcatalog/internal/config"
	"trackcatalog/internal/logging"
	"trackcatalog/internal/store/mongostore"
	"trackcatalog/internal/store/sqlitestore"
	"trackcatalog/internal/track"
)

// Backend persists tracks. Get returns nil, nil for an unknown identifier and
// Insert reports an existing (platform, externalID) pair as
// *track.DuplicateError.
type Backend interface {
	Name() string
	Ping(ctx context.Context) error
	Insert(ctx context.Context, draft track.Draft) (track.Track, error)
	Find(ctx context.Context, filter track.Filter, limit int) ([]track.Track, error)
	Get(ctx context.Context, id track.ID) (*track.Track, error)
	Delete(ctx context.Context, id track.ID) (int64, error)
	Distinct(ctx context.Context, key string) ([]string, error)
	Search(ctx context.Context, query string, limit int) ([]track.Track, error)
	Count(ctx context.Context) (int64, error)
	Close() error
}

var (
	_ Backend = (*mongostore.Store)(nil)
	_ Backend = (*sqlitestore.Store)(nil)
)

// Open connects to the backend named by cfg.Store.Backend.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Backend, error) {
	if cfg == nil {
		return nil, fmt.Errorf("open store: config is nil")
	}
	storeLogger := logging.NewComponentLogger(logger, "store")

	switch cfg.Store.Backend {
	case config.BackendMongo:
		storeLogger.Debug("opening backend", logging.String(logging.FieldBackend, mongostore.Name))
		st, err := mongostore.Open(ctx, mongostore.Options{
			URI:            cfg.Store.MongoURL,
			Database:       cfg.Store.MongoDatabase,
			Collection:     cfg.Store.Collection,
			ConnectTimeout: cfg.ConnectTimeout(),
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("open mongo store: %w", err)
		}
		return st, nil
	case config.BackendSQLite:
		storeLogger.Debug("opening backend", logging.String(logging.FieldBackend, sqlitestore.Name))
		openCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
		defer cancel()
		st, err := sqlitestore.Open(openCtx, cfg.Store.SQLitePath, logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("open store: unsupported backend %q", cfg.Store.Backend)
	}
}
