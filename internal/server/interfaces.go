package server

import "context"

// Server defines the lifecycle contract for servers managed by this package.
type Server interface {
	// Run serves requests until ctx is canceled or the listener fails, and
	// shuts down gracefully before returning.
	Run(ctx context.Context) error
}
