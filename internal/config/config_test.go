package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"trackcatalog/internal/config"
)

func clearCatalogEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvMongoURL, config.EnvBackend, config.EnvBind} {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	clearCatalogEnv(t)
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "trackcatalog")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Store.SQLitePath != filepath.Join(wantData, "catalog.db") {
		t.Fatalf("unexpected sqlite path: %q", cfg.Store.SQLitePath)
	}
	if cfg.Server.Bind != "127.0.0.1:8000" {
		t.Fatalf("unexpected bind: %q", cfg.Server.Bind)
	}
	if cfg.Store.Backend != config.BackendMongo {
		t.Fatalf("expected mongo backend by default, got %q", cfg.Store.Backend)
	}
	if cfg.Store.MongoURL != "mongodb://localhost:27017" {
		t.Fatalf("unexpected mongo url: %q", cfg.Store.MongoURL)
	}
	if cfg.Store.MongoDatabase != "PhonkUniverseDB" || cfg.Store.Collection != "tracks" {
		t.Fatalf("unexpected mongo namespace: %s.%s", cfg.Store.MongoDatabase, cfg.Store.Collection)
	}
	if !cfg.AllowAllOrigins() {
		t.Fatal("expected all origins allowed by default")
	}
	if cfg.Catalog.DefaultLimit != 50 || cfg.Catalog.SearchLimit != 20 {
		t.Fatalf("unexpected catalog limits: %+v", cfg.Catalog)
	}
	if cfg.LockPath() != filepath.Join(wantData, "catalogd.lock") {
		t.Fatalf("unexpected lock path: %q", cfg.LockPath())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.Paths.DataDir, cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadEnvironmentFallbacks(t *testing.T) {
	clearCatalogEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(config.EnvMongoURL, "mongodb://db.internal:27017")
	t.Setenv(config.EnvBackend, "SQLite")
	t.Setenv(config.EnvBind, "0.0.0.0:9000")

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store.MongoURL != "mongodb://db.internal:27017" {
		t.Fatalf("expected mongo url from env, got %q", cfg.Store.MongoURL)
	}
	if cfg.Store.Backend != config.BackendSQLite {
		t.Fatalf("expected sqlite backend from env, got %q", cfg.Store.Backend)
	}
	if cfg.Server.Bind != "0.0.0.0:9000" {
		t.Fatalf("expected bind from env, got %q", cfg.Server.Bind)
	}
}

func TestLoadReadsDotEnvFile(t *testing.T) {
	clearCatalogEnv(t)
	t.Setenv("HOME", t.TempDir())
	workDir := t.TempDir()
	t.Chdir(workDir)
	if err := os.WriteFile(filepath.Join(workDir, ".env"), []byte("MONGODB_URL=mongodb+srv://cluster.example.net\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Store.MongoURL != "mongodb+srv://cluster.example.net" {
		t.Fatalf("expected mongo url from .env, got %q", cfg.Store.MongoURL)
	}
}

func TestLoadCustomPath(t *testing.T) {
	clearCatalogEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "catalog.toml")

	type payload struct {
		Paths struct {
			DataDir string `toml:"data_dir"`
		} `toml:"paths"`
		Server struct {
			Bind        string   `toml:"bind"`
			CORSOrigins []string `toml:"cors_origins"`
		} `toml:"server"`
		Store struct {
			Backend string `toml:"backend"`
		} `toml:"store"`
		Catalog struct {
			SearchLimit int `toml:"search_limit"`
		} `toml:"catalog"`
		Logging struct {
			Format string `toml:"format"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.DataDir = filepath.Join(tempDir, "data")
	custom.Server.Bind = "127.0.0.1:8123"
	custom.Server.CORSOrigins = []string{" http://localhost:5173/ ", "http://localhost:5173", ""}
	custom.Store.Backend = "sqlite"
	custom.Catalog.SearchLimit = 5
	custom.Logging.Format = "JSON"

	encoded, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(configPath, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != configPath {
		t.Fatalf("expected config at %q, got %q (exists=%v)", configPath, resolved, exists)
	}
	if cfg.Store.Backend != config.BackendSQLite {
		t.Fatalf("unexpected backend: %q", cfg.Store.Backend)
	}
	if cfg.Store.SQLitePath != filepath.Join(tempDir, "data", "catalog.db") {
		t.Fatalf("unexpected sqlite path: %q", cfg.Store.SQLitePath)
	}
	if len(cfg.Server.CORSOrigins) != 1 || cfg.Server.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins: %v", cfg.Server.CORSOrigins)
	}
	if cfg.AllowAllOrigins() {
		t.Fatal("expected restricted origins")
	}
	if cfg.Catalog.SearchLimit != 5 {
		t.Fatalf("unexpected search limit: %d", cfg.Catalog.SearchLimit)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json log format, got %q", cfg.Logging.Format)
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"backend", func(c *config.Config) { c.Store.Backend = "postgres" }, "store.backend"},
		{"mongo url", func(c *config.Config) { c.Store.MongoURL = "http://localhost" }, "store.mongo_url"},
		{"bind", func(c *config.Config) { c.Server.Bind = "localhost" }, "server.bind"},
		{"cors", func(c *config.Config) { c.Server.CORSOrigins = []string{"localhost:5173"} }, "server.cors_origins"},
		{"limits", func(c *config.Config) { c.Catalog.DefaultLimit = 2000 }, "catalog.default_limit"},
		{"level", func(c *config.Config) { c.Logging.Level = "verbose" }, "logging.level"},
		{"timeout", func(c *config.Config) { c.Store.OperationTimeoutSeconds = 0 }, "store.operation_timeout_seconds"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Server.Bind = "127.0.0.1:8000"
			cfg.Store.Backend = config.BackendMongo
			cfg.Store.MongoURL = "mongodb://localhost:27017"
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestCreateSampleLoads(t *testing.T) {
	clearCatalogEnv(t)
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	target := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(target); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(target)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Store.MongoDatabase != "PhonkUniverseDB" {
		t.Fatalf("unexpected database: %q", cfg.Store.MongoDatabase)
	}
}
