package testsupport

import (
	"path/filepath"
	"testing"

	"trackcatalog/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It selects the embedded SQLite backend and an ephemeral listen port, then
// applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.DataDir = filepath.Join(base, "data")
	cfgVal.Paths.LogDir = filepath.Join(base, "logs")
	cfgVal.Server.Bind = "127.0.0.1:0"
	cfgVal.Store.Backend = config.BackendSQLite
	cfgVal.Store.MongoURL = "mongodb://localhost:27017"
	cfgVal.Store.SQLitePath = filepath.Join(base, "data", "catalog.db")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithCORSOrigins restricts the allowed front-end origins.
func WithCORSOrigins(origins ...string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Server.CORSOrigins = origins
	}
}

// WithCatalogLimits overrides the list and search caps.
func WithCatalogLimits(defaultLimit, maxLimit, searchLimit int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Catalog.DefaultLimit = defaultLimit
		b.cfg.Catalog.MaxLimit = maxLimit
		b.cfg.Catalog.SearchLimit = searchLimit
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
