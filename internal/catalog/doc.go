// Package catalog implements the track catalog's query and mutation
// operations.
//
// Service is stateless between calls: it holds only the injected Store and its
// limits. Writes pass through the track package's validation before reaching
// storage, and uniqueness of (platform, externalID) is enforced by the store in
// a single conditional insert. Every storage call is bounded by the configured
// per-operation timeout, and storage failures are wrapped in
// *track.BackendError so callers can tell client faults from server faults.
package catalog
