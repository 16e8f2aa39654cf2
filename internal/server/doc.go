// Package server runs the reference collection server: startup, signal
// handling and graceful shutdown of the HTTP listener.
package server
