// Package store opens the document store selected by configuration.
//
// Backend is the contract every storage implementation satisfies; the catalog
// service depends only on this interface. Open picks mongostore or
// sqlitestore from the store.backend setting and returns a ready connection.
package store
