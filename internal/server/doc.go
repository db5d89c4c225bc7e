// Package server exposes the catalog over HTTP.
//
// Routes are served by a Gin engine with CORS, request-id, and access-log
// middleware. Every error leaves the server as the shared error envelope
// defined in package api; storage failures are logged and reported to the
// client with a generic detail.
package server
