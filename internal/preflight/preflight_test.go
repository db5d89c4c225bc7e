package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"trackcatalog/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckBackend_SQLite(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	result := CheckBackend(context.Background(), cfg)
	if !result.Passed {
		t.Fatalf("expected sqlite backend to pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "0 tracks") {
		t.Fatalf("expected track count in detail, got %q", result.Detail)
	}
}

func TestCheckBackend_UnreachableMongo(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Store.Backend = "mongo"
	cfg.Store.MongoURL = "mongodb://127.0.0.1:1"
	cfg.Store.ConnectTimeoutSeconds = 1

	result := CheckBackend(context.Background(), cfg)
	if result.Passed {
		t.Fatal("expected unreachable mongo to fail")
	}
	if strings.Contains(result.Detail, "\n") {
		t.Fatalf("detail should be a single line, got %q", result.Detail)
	}
}

func TestCheckDaemonLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalogd.lock")

	result, running := CheckDaemonLock(path)
	if running || !result.Passed || result.Detail != "Not running" {
		t.Fatalf("unexpected idle result %+v running=%v", result, running)
	}

	held := flock.New(path)
	if ok, err := held.TryLock(); err != nil || !ok {
		t.Fatalf("TryLock: ok=%v err=%v", ok, err)
	}
	defer held.Unlock()

	result, running = CheckDaemonLock(path)
	if !running || !result.Passed {
		t.Fatalf("expected held lock to report running, got %+v", result)
	}
}

func TestCheckBindAvailable(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()

	if result := CheckBindAvailable(listener.Addr().String()); result.Passed {
		t.Fatal("expected occupied address to fail")
	}
	if result := CheckBindAvailable("127.0.0.1:0"); !result.Passed {
		t.Fatalf("expected ephemeral port to pass, got %s", result.Detail)
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	results := RunAll(context.Background(), nil)
	if results != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAll_MinimalConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	results := RunAll(context.Background(), cfg)
	// directories, store, daemon, bind
	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("check %q failed: %s", r.Name, r.Detail)
		}
	}
	if Failed(results) {
		t.Fatal("expected no failures")
	}
}

func TestSummarizeBackendError(t *testing.T) {
	if got := summarizeBackendError(fmt.Errorf("ping: %w", context.DeadlineExceeded)); !strings.Contains(got, "timed out") {
		t.Fatalf("unexpected timeout summary %q", got)
	}
	if got := summarizeBackendError(errors.New("first line\nsecond line")); got != "first line" {
		t.Fatalf("unexpected summary %q", got)
	}
}
