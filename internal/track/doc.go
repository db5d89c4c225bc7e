// Package track defines the catalog's single entity and the rules that guard it
// at the system boundary.
//
// A Draft is the write-side shape accepted from clients: it has no identifier
// and is only ever produced by NewDraft or DraftFromMap, which trim input,
// apply the default genre, and reject missing or mistyped fields with a
// ValidationError. A Track is the read-side shape returned from storage and
// always carries a store-assigned ID.
//
// Both shapes serialize to and from a generic document map whose keys match the
// persisted and JSON field names exactly (_id, title, artist, genre, platform,
// externalID, thumbnail), so storage backends and the HTTP layer agree on one
// canonical layout.
//
// The error types in this package form the catalog's failure taxonomy. Each
// implements ErrorKind so transport layers can map failures to status codes
// without string matching.
package track
