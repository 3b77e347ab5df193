package starhub

import "unsent/backend/internal/models"

// Client is the interface for one live realtime connection. It abstracts
// the underlying transport so the hub can address connections uniformly and
// tests can substitute in-memory doubles.
type Client interface {
	// GetConnID returns the connection's unique identifier. IDs are fresh
	// per connection and never reused after disconnect.
	GetConnID() string

	// GetSendChannel returns the channel the hub writes outbound events to.
	GetSendChannel() chan<- models.Event

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's send channel, ending its write pump.
	Close()
}
