// Package mongostore persists tracks in a MongoDB collection.
//
// Open builds the client and returns even when the deployment cannot be
// reached; the outage surfaces through Ping so health checks can report it.
// The unique compound index on (platform, externalID) is created on the first
// successful contact and retried by Insert until it exists. While the index is
// missing, for example because legacy data already holds duplicate pairs,
// Insert checks for an existing document before writing. With the index in
// place a duplicate-key write error is reported as *track.DuplicateError.
//
// Filter construction lives in pure functions so it can be tested without a
// running server.
package mongostore
