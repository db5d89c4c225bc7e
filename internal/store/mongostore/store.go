package mongostore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"trackcatalog/internal/logging"
)

// Name identifies this backend in logs and health output.
const Name = "mongo"

// Options configures the connection.
type Options struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// Store manages track persistence backed by a MongoDB collection.
type Store struct {
	client     *mongo.Client
	collection *mongo.Collection
	logger     *slog.Logger

	indexMu sync.Mutex
	indexed bool
}

// Open builds a client for opts.URI. Only an unusable URI or client option is
// fatal; an unreachable server is logged and left for Ping to report, and the
// unique index is created on first success.
func Open(ctx context.Context, opts Options, logger *slog.Logger) (*Store, error) {
	if strings.TrimSpace(opts.URI) == "" {
		return nil, errors.New("mongo uri is empty")
	}
	if opts.Database == "" || opts.Collection == "" {
		return nil, errors.New("mongo database and collection are required")
	}
	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	clientOptions := options.Client().
		ApplyURI(opts.URI).
		SetServerSelectionTimeout(timeout).
		SetConnectTimeout(timeout)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	store := newStore(client, client.Database(opts.Database).Collection(opts.Collection), logger)
	store.logger.Info("mongo store configured",
		logging.String("database", opts.Database),
		logging.String("collection", opts.Collection),
	)

	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := store.Ping(probeCtx); err != nil {
		logging.WarnWithContext(store.logger, "mongo not reachable at startup", "backend_unreachable",
			logging.String(logging.FieldErrorHint, "health checks report the outage until the server answers"),
			logging.Error(err),
		)
		return store, nil
	}
	_ = store.ensureIndexes(probeCtx)
	return store, nil
}

func newStore(client *mongo.Client, collection *mongo.Collection, logger *slog.Logger) *Store {
	return &Store{
		client:     client,
		collection: collection,
		logger:     logging.NewComponentLogger(logger, "mongostore"),
	}
}

// ensureIndexes creates the unique (platform, externalID) index once. A
// failure is logged and retried on the next call.
func (s *Store) ensureIndexes(ctx context.Context) error {
	s.indexMu.Lock()
	defer s.indexMu.Unlock()
	if s.indexed {
		return nil
	}
	model := mongo.IndexModel{
		Keys:    uniqueIndexKeys(),
		Options: options.Index().SetUnique(true).SetName(uniqueIndexName),
	}
	if _, err := s.collection.Indexes().CreateOne(ctx, model); err != nil {
		hint := "verify the server is reachable"
		if mongo.IsDuplicateKeyError(err) {
			hint = "remove duplicate (platform, externalID) documents so the unique index can be built"
		}
		logging.WarnWithContext(s.logger, "unique index unavailable", "index_unavailable",
			logging.String("index", uniqueIndexName),
			logging.String(logging.FieldErrorHint, hint),
			logging.Error(err),
		)
		return fmt.Errorf("ensure index %s: %w", uniqueIndexName, err)
	}
	s.indexed = true
	return nil
}

// Name returns the backend identifier.
func (s *Store) Name() string { return Name }

// Ping verifies the primary is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("ping mongo: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.client.Disconnect(ctx)
}
