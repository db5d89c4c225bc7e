package testsupport

import (
	"context"
	"testing"

	"trackcatalog/internal/catalog"
	"trackcatalog/internal/config"
	"trackcatalog/internal/logging"
	"trackcatalog/internal/store/sqlitestore"
	"trackcatalog/internal/track"
)

// MustOpenStore opens the SQLite store named by cfg and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *sqlitestore.Store {
	t.Helper()

	st, err := sqlitestore.Open(context.Background(), cfg.Store.SQLitePath, logging.NewNop())
	if err != nil {
		t.Fatalf("sqlitestore.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// MustService builds a catalog service over a fresh SQLite store.
func MustService(t testing.TB, cfg *config.Config) *catalog.Service {
	t.Helper()
	return catalog.New(MustOpenStore(t, cfg), logging.NewNop(), catalog.OptionsFromConfig(cfg))
}

// MustCreate inserts a track through the service and fails the test on error.
func MustCreate(t testing.TB, svc *catalog.Service, draft track.Draft) track.Track {
	t.Helper()

	created, err := svc.Create(context.Background(), draft)
	if err != nil {
		t.Fatalf("Create(%+v): %v", draft, err)
	}
	return created
}
