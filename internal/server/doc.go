// Package server owns the lifecycle of the development API server: listen,
// serve, and graceful shutdown on SIGTERM/SIGINT/SIGQUIT.
package server
