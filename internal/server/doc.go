// Package server runs the ops HTTP server.
//
// It owns the listener lifecycle: serving until the context passed to Run
// is canceled, then shutting down gracefully within the configured timeout.
package server
