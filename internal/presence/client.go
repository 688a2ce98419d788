package presence

import "gigflow/backend/internal/models"

// Client is the interface for one active realtime connection. It abstracts
// the underlying transport so the hub can manage connections uniformly and
// tests can substitute doubles.
type Client interface {
	// GetUserID returns the authenticated user this connection belongs to.
	GetUserID() string

	// GetSendChannel returns the channel the hub pushes notifications into.
	GetSendChannel() chan<- models.Notification

	// Run starts the connection's read and write pumps.
	Run()
	// Close shuts down the connection and its send channel.
	Close()
}
