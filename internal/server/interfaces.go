package server

// Server runs the configured listeners.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Shutdown stops every listener gracefully.
	Shutdown()
}
