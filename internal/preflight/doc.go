// Package preflight provides readiness checks for the filesystem paths,
// track store, and listener the catalog depends on.
//
// The CLI "catalog status" command runs RunAll and renders each Result. The
// listener check is skipped while a daemon holds the lock, since the running
// server owns the bind address.
package preflight
