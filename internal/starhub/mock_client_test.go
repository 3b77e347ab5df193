package starhub_test

import "unsent/backend/internal/models"

// MockClient is an in-memory Client double. Events the hub sends land in
// RecvChannel for assertions.
type MockClient struct {
	connID      string
	closed      bool
	RecvChannel chan models.Event
}

func newMockClient(connID string) *MockClient {
	return &MockClient{
		connID:      connID,
		RecvChannel: make(chan models.Event, 32),
	}
}

func (c *MockClient) GetConnID() string {
	return c.connID
}

func (c *MockClient) GetSendChannel() chan<- models.Event {
	return c.RecvChannel
}

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed = true
}

// received drains and returns everything currently queued for the client.
func (c *MockClient) received() []models.Event {
	var events []models.Event
	for {
		select {
		case ev := <-c.RecvChannel:
			events = append(events, ev)
		default:
			return events
		}
	}
}
