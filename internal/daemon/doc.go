// Package daemon coordinates the long-running catalog process.
//
// It wires configuration, the track store, the catalog service, and the HTTP
// server into a single lifecycle with flock-based locking so two servers never
// share one data directory. Keep request handling in package server and
// storage details in package store; the daemon only owns startup, shutdown,
// and status reporting.
package daemon
