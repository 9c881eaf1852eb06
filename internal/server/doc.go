// Package server runs the marketplace HTTP server.
//
// It owns the server lifecycle: startup, signal handling (SIGINT, SIGTERM,
// SIGQUIT) and graceful shutdown bounded by the configured timeout.
package server
