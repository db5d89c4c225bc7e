// Package seed loads the bundled sample catalog.
//
// The samples ship embedded as TOML. Loading goes through the catalog service
// so every sample is validated like a client submission, and samples that
// already exist are counted as skipped rather than failing the run.
package seed
