package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateStore(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if _, _, err := net.SplitHostPort(c.Server.Bind); err != nil {
		return fmt.Errorf("server.bind must be host:port: %w", err)
	}
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			continue
		}
		if !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return fmt.Errorf("server.cors_origins entry %q must be \"*\" or an http(s) origin", origin)
		}
	}
	return ensurePositiveMap(map[string]int{
		"server.read_timeout_seconds":     c.Server.ReadTimeoutSeconds,
		"server.write_timeout_seconds":    c.Server.WriteTimeoutSeconds,
		"server.shutdown_timeout_seconds": c.Server.ShutdownTimeoutSeconds,
	})
}

func (c *Config) validateStore() error {
	switch c.Store.Backend {
	case BackendMongo:
		if !strings.HasPrefix(c.Store.MongoURL, "mongodb://") && !strings.HasPrefix(c.Store.MongoURL, "mongodb+srv://") {
			return errors.New("store.mongo_url must start with mongodb:// or mongodb+srv:// (or set MONGODB_URL)")
		}
		if c.Store.MongoDatabase == "" {
			return errors.New("store.mongo_database must be set when store.backend is mongo")
		}
		if c.Store.Collection == "" {
			return errors.New("store.collection must be set when store.backend is mongo")
		}
	case BackendSQLite:
		if c.Store.SQLitePath == "" {
			return errors.New("store.sqlite_path must be set when store.backend is sqlite")
		}
	default:
		return fmt.Errorf("store.backend: unsupported value %q (expected %q or %q)", c.Store.Backend, BackendMongo, BackendSQLite)
	}
	return ensurePositiveMap(map[string]int{
		"store.connect_timeout_seconds":   c.Store.ConnectTimeoutSeconds,
		"store.operation_timeout_seconds": c.Store.OperationTimeoutSeconds,
	})
}

func (c *Config) validateCatalog() error {
	if c.Catalog.DefaultLimit > c.Catalog.MaxLimit {
		return errors.New("catalog.default_limit must not exceed catalog.max_limit")
	}
	if c.Catalog.SearchLimit > c.Catalog.MaxLimit {
		return errors.New("catalog.search_limit must not exceed catalog.max_limit")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}

func ensurePositiveMap(values map[string]int) error {
	for key, value := range values {
		if value <= 0 {
			return fmt.Errorf("%s must be positive", key)
		}
	}
	return nil
}
