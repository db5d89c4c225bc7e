package catalog

import (
	"context"
	"log/slog"
	"time"

	"trackcatalog/internal/config"
	"trackcatalog/internal/logging"
	"trackcatalog/internal/track"
)

// Store is the storage contract the service depends on.
type Store interface {
	Name() string
	Ping(ctx context.Context) error
	Insert(ctx context.Context, draft track.Draft) (track.Track, error)
	Find(ctx context.Context, filter track.Filter, limit int) ([]track.Track, error)
	Get(ctx context.Context, id track.ID) (*track.Track, error)
	Delete(ctx context.Context, id track.ID) (int64, error)
	Distinct(ctx context.Context, key string) ([]string, error)
	Search(ctx context.Context, query string, limit int) ([]track.Track, error)
	Count(ctx context.Context) (int64, error)
}

// Options bounds result sizes and storage latency.
type Options struct {
	DefaultLimit     int
	MaxLimit         int
	SearchLimit      int
	OperationTimeout time.Duration
}

// Defaults used when an option is left at zero.
const (
	DefaultListLimit   = 50
	DefaultMaxLimit    = 1000
	DefaultSearchLimit = 20
)

// OptionsFromConfig derives service options from configuration.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{}
	}
	return Options{
		DefaultLimit:     cfg.Catalog.DefaultLimit,
		MaxLimit:         cfg.Catalog.MaxLimit,
		SearchLimit:      cfg.Catalog.SearchLimit,
		OperationTimeout: cfg.OperationTimeout(),
	}
}

// Service coordinates catalog operations against a Store.
type Service struct {
	store  Store
	logger *slog.Logger
	opts   Options
}

// New constructs a service around an already opened store.
func New(store Store, logger *slog.Logger, opts Options) *Service {
	if opts.DefaultLimit <= 0 {
		opts.DefaultLimit = DefaultListLimit
	}
	if opts.MaxLimit <= 0 {
		opts.MaxLimit = DefaultMaxLimit
	}
	if opts.SearchLimit <= 0 {
		opts.SearchLimit = DefaultSearchLimit
	}
	return &Service{
		store:  store,
		logger: logging.NewComponentLogger(logger, "catalog"),
		opts:   opts,
	}
}

func (s *Service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if s.opts.OperationTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.opts.OperationTimeout)
}

func (s *Service) backendError(ctx context.Context, op string, err error) error {
	logging.ErrorWithContext(logging.WithContext(ctx, s.logger), "storage operation failed", "storage_failure",
		logging.String(logging.FieldOperation, op),
		logging.String(logging.FieldBackend, s.store.Name()),
		logging.String(logging.FieldErrorHint, "check backend connectivity"),
		logging.Error(err),
	)
	return &track.BackendError{Op: op, Err: err}
}
