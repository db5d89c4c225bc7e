// Package logging assembles structured slog loggers and formatting helpers used
// by the catalog server and CLI.
//
// It owns the console and JSON handlers, routes output to stdout and a
// size-rotated log file, and exposes context-aware helpers so request handlers
// automatically tag log lines with the request ID and the track being touched.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits records with the same shape.
package logging
