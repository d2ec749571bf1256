package server

// Server runs until a stop signal arrives, then shuts down gracefully.
type Server interface {
	RunServer()
	Shutdown()
}
