package client

// Client defines the minimal lifecycle contract for runnable console
// applications.
type Client interface {
	// Run starts the console application and blocks until exit.
	Run() error
}
