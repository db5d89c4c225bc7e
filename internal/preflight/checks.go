package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"

	"trackcatalog/internal/config"
	"trackcatalog/internal/logging"
	"trackcatalog/internal/store"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckBackend opens the configured store and pings it.
func CheckBackend(ctx context.Context, cfg *config.Config) Result {
	name := "Track store"
	if cfg == nil {
		return Result{Name: name, Detail: "Unknown"}
	}
	name = fmt.Sprintf("Track store (%s)", cfg.Store.Backend)

	backend, err := store.Open(ctx, cfg, logging.NewNop())
	if err != nil {
		return Result{Name: name, Detail: summarizeBackendError(err)}
	}
	defer backend.Close()

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := backend.Ping(pingCtx); err != nil {
		return Result{Name: name, Detail: summarizeBackendError(err)}
	}

	count, err := backend.Count(pingCtx)
	if err != nil {
		return Result{Name: name, Detail: summarizeBackendError(err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d tracks)", backendLocation(cfg), count)}
}

// CheckDaemonLock reports whether a daemon currently holds the lock file.
// The check passes either way; running is true when the lock is held.
func CheckDaemonLock(path string) (Result, bool) {
	const name = "Daemon"

	lock := flock.New(path)
	ok, err := lock.TryLock()
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("lock check failed (%v)", err)}, false
	}
	if !ok {
		return Result{Name: name, Passed: true, Detail: "Running (" + path + " held)"}, true
	}
	_ = lock.Unlock()
	return Result{Name: name, Passed: true, Detail: "Not running"}, false
}

// CheckBindAvailable verifies that the HTTP listener address can be bound.
func CheckBindAvailable(bind string) Result {
	const name = "HTTP bind"

	listener, err := net.Listen("tcp", bind)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", bind, err)}
	}
	_ = listener.Close()
	return Result{Name: name, Passed: true, Detail: bind + " (available)"}
}

func backendLocation(cfg *config.Config) string {
	switch cfg.Store.Backend {
	case config.BackendMongo:
		return fmt.Sprintf("%s.%s", cfg.Store.MongoDatabase, cfg.Store.Collection)
	case config.BackendSQLite:
		return cfg.Store.SQLitePath
	default:
		return cfg.Store.Backend
	}
}

// summarizeBackendError produces a one-line summary for store failures.
func summarizeBackendError(err error) string {
	if errors.Is(err, context.DeadlineExceeded) {
		return "connection timed out (store unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "connection timed out (store unreachable)"
	}
	msg := strings.TrimSpace(err.Error())
	if line, _, found := strings.Cut(msg, "\n"); found {
		msg = strings.TrimSpace(line)
	}
	return msg
}
