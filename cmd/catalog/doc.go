// Package main hosts the catalog CLI entrypoint and command graph.
//
// The Cobra-based command tree runs the HTTP server in the foreground, queries
// and edits the track store directly, loads the sample catalog, and scaffolds
// configuration. It centralizes configuration resolution and store wiring so
// subcommands can focus on presentation.
//
// Add new behavior to the internal packages first, then surface it here.
package main
