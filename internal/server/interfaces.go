package server

// Server is the lifecycle of the transport servers.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives.
	RunServer()

	// Shutdown stops every server, letting in-flight requests finish.
	Shutdown()
}
