// Package sqlitestore persists tracks in an embedded SQLite database.
//
// It is the local and test backend: no server is required, and the schema is
// created from embedded migrations when the database opens. The
// (platform, external_id) pair carries a UNIQUE constraint, and inserts use
// ON CONFLICT DO NOTHING so duplicate detection happens inside a single
// statement. Case-insensitive search runs against lowercased copies of the
// title and artist columns written at insert time.
package sqlitestore
