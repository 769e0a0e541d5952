// Package server runs the stub wallet backend's HTTP server.
//
// It provides startup, signal handling and graceful shutdown.
package server
