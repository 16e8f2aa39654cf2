// Package http implements the HTTP layer of the reference collection server.
//
// It exposes the /mahasiswa routes and the middleware chain in front of
// them: panic recovery, trace ids, tracing, access logging, compression and
// the static access key check.
package http
