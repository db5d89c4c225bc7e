// Package daemonrun hosts the foreground runtime shared by catalogd and
// `catalog serve`: logger setup, store connection, daemon start, and signal
// driven shutdown.
package daemonrun
