// Package http implements the ops HTTP surface of the bot.
//
// It exposes liveness and readiness probes, the Prometheus scrape endpoint
// and the build version. Chat commands never travel over this surface.
// Request tracing and access logging are handled here as middleware.
package http
