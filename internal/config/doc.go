// Package config loads, normalizes, and validates catalog service configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads a .env file when one is present, and
// honours environment fallbacks such as MONGODB_URL. The Config type
// centralizes every knob the server and CLI need: listen address and CORS
// origins, the storage backend and its connection settings, result limits, and
// log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
