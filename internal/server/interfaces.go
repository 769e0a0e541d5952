package server

import "context"

// Server defines the lifecycle of the backend server.
type Server interface {
	// RunServer serves requests until ctx is done or SIGINT, SIGTERM or
	// SIGQUIT is received, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Addr returns the address the server listens on once RunServer has
	// bound it, and "" before that.
	Addr() string

	// Shutdown gracefully stops the server.
	Shutdown()
}
