package daemonrun

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"trackcatalog/internal/config"
	"trackcatalog/internal/daemon"
	"trackcatalog/internal/logging"
	"trackcatalog/internal/store"
)

// Options configures daemon process runtime behavior.
type Options struct {
	LogLevel    string
	Development bool
}

// Run starts the catalog daemon and blocks until ctx is cancelled or the
// process receives SIGINT or SIGTERM.
func Run(cmdCtx context.Context, cfg *config.Config, opts Options) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg, opts.LogLevel, opts.Development)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With(logging.String("run_id", uuid.NewString()))

	logConfigSnapshot(logger, cfg)

	backend, err := store.Open(signalCtx, cfg, logger)
	if err != nil {
		logging.ErrorWithContext(logger, "open track store", "store_open_failed",
			logging.String(logging.FieldBackend, cfg.Store.Backend),
			logging.String(logging.FieldErrorHint, "check store settings and backend availability"),
			logging.Error(err),
		)
		return err
	}

	d, err := daemon.New(cfg, backend, logger)
	if err != nil {
		_ = backend.Close()
		return fmt.Errorf("create daemon: %w", err)
	}
	defer d.Close()

	if err := d.Start(signalCtx); err != nil {
		logging.ErrorWithContext(logger, "daemon start failed", "daemon_start_failed",
			logging.String(logging.FieldErrorHint, "check the bind address and that no other daemon holds the lock"),
			logging.Error(err),
		)
		return err
	}

	pidPath := filepath.Join(cfg.Paths.DataDir, "catalogd.pid")
	if err := writePIDFile(pidPath); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	defer os.Remove(pidPath)

	<-signalCtx.Done()
	logger.Info("catalog daemon shutting down")
	return nil
}

func writePIDFile(path string) error {
	if path == "" {
		return nil
	}
	value := strconv.Itoa(os.Getpid()) + "\n"
	return os.WriteFile(path, []byte(value), 0o644)
}

func logConfigSnapshot(logger *slog.Logger, cfg *config.Config) {
	if logger == nil || cfg == nil {
		return
	}
	attrs := []logging.Attr{
		logging.String(logging.FieldEventType, "config_snapshot"),
		logging.String("bind", cfg.Server.Bind),
		logging.String(logging.FieldBackend, cfg.Store.Backend),
		logging.String("cors_origins", strings.Join(cfg.Server.CORSOrigins, ",")),
		logging.String("data_dir", cfg.Paths.DataDir),
		logging.Int("default_limit", cfg.Catalog.DefaultLimit),
		logging.Int("max_limit", cfg.Catalog.MaxLimit),
	}
	switch cfg.Store.Backend {
	case config.BackendMongo:
		attrs = append(attrs,
			logging.String("mongo_url", redactURL(cfg.Store.MongoURL)),
			logging.String("mongo_database", cfg.Store.MongoDatabase),
			logging.String("collection", cfg.Store.Collection),
		)
	case config.BackendSQLite:
		attrs = append(attrs, logging.String("sqlite_path", cfg.Store.SQLitePath))
	}
	logger.Info("configuration snapshot", logging.Args(attrs...)...)
}

// redactURL hides the password of a connection string.
func redactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}
	if _, hasPassword := parsed.User.Password(); !hasPassword {
		return raw
	}
	return parsed.Redacted()
}
