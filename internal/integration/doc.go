// Package integration holds end-to-end tests that run the sync engine and
// the HTTP adapter against the real collection router and storage.
package integration
