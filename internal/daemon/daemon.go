package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gofrs/flock"

	"trackcatalog/internal/catalog"
	"trackcatalog/internal/config"
	"trackcatalog/internal/logging"
	"trackcatalog/internal/server"
	"trackcatalog/internal/store"
)

// Daemon owns the store, the catalog service, and the HTTP server, and
// enforces single-instance execution per data directory.
type Daemon struct {
	cfg     *config.Config
	logger  *slog.Logger
	store   store.Backend
	service *catalog.Service
	server  *server.Server

	lockPath string
	lock     *flock.Flock

	running atomic.Bool
	ctx     context.Context
	cancel  context.CancelFunc
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool
	Backend      string
	Address      string
	LockFilePath string
	Tracks       int64
	Health       catalog.Health
}

// New constructs a daemon around an opened store. The daemon takes ownership
// of backend and closes it in Close.
func New(cfg *config.Config, backend store.Backend, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || backend == nil || logger == nil {
		return nil, errors.New("daemon requires config, store, and logger")
	}

	svc := catalog.New(backend, logger, catalog.OptionsFromConfig(cfg))
	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "daemon"),
		store:    backend,
		service:  svc,
		server:   server.New(cfg, svc, logger),
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Service exposes the catalog service driven by the daemon.
func (d *Daemon) Service() *catalog.Service {
	return d.service
}

// Start acquires the daemon lock and begins serving HTTP.
func (d *Daemon) Start(ctx context.Context) error {
	if d.running.Load() {
		return errors.New("daemon already running")
	}

	if err := d.cfg.EnsureDirectories(); err != nil {
		return err
	}
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return errors.New("another catalog daemon instance is already running")
	}

	d.ctx, d.cancel = context.WithCancel(ctx)
	if err := d.server.Start(d.ctx); err != nil {
		_ = d.lock.Unlock()
		d.cancel()
		d.ctx = nil
		d.cancel = nil
		return fmt.Errorf("start http server: %w", err)
	}

	d.running.Store(true)
	d.logger.Info("catalog daemon started",
		logging.String("lock", d.lockPath),
		logging.String("address", d.server.Addr()),
		logging.String(logging.FieldBackend, d.store.Name()),
		logging.String(logging.FieldEventType, "daemon_started"),
	)
	return nil
}

// Stop shuts down the HTTP server and releases the daemon lock.
func (d *Daemon) Stop() {
	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.server.Stop()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock",
			logging.Error(err),
			logging.String(logging.FieldEventType, "daemon_lock_release_failed"),
			logging.String(logging.FieldErrorHint, "remove the lock file if no daemon is running"),
		)
	}
	d.ctx = nil
	d.running.Store(false)
	d.logger.Info("catalog daemon stopped", logging.String(logging.FieldEventType, "daemon_stopped"))
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	if d.store != nil {
		return d.store.Close()
	}
	return nil
}

// Status reports lifecycle state plus a backend health probe.
func (d *Daemon) Status(ctx context.Context) Status {
	status := Status{
		Running:      d.running.Load(),
		Backend:      d.store.Name(),
		Address:      d.server.Addr(),
		LockFilePath: d.lockPath,
		Health:       d.service.Health(ctx),
	}
	if status.Health.OK {
		if count, err := d.service.Count(ctx); err == nil {
			status.Tracks = count
		}
	}
	return status
}
