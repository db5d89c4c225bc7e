// Package api defines the JSON envelopes exchanged with catalog clients and the
// converters that build them from internal types.
//
// Every response carries a status field ("success", "error", or "running" for
// the banner). Successful payloads sit under data; failures carry a
// human-readable detail instead. Track objects use the persisted field names
// (_id, title, artist, genre, platform, externalID, thumbnail) so browser
// clients can bind them without a mapping layer.
//
// ErrorStatus and ErrorDetail translate the track error taxonomy into HTTP
// status codes and client-safe messages. Storage failures never expose their
// internal text; they are reduced to a fixed detail string and logged by the
// caller instead.
package api
