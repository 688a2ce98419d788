package presence_test

import (
	"gigflow/backend/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockClient is a test double for the presence.Client interface.
type MockClient struct {
	userID string
	send   chan models.Notification
	closed bool
}

func newMockClient(id string) *MockClient {
	return &MockClient{
		userID: id,
		send:   make(chan models.Notification, 10), // Buffered to prevent blocking in tests
	}
}

func (c *MockClient) GetUserID() string                          { return c.userID }
func (c *MockClient) GetSendChannel() chan<- models.Notification { return c.send }
func (c *MockClient) Run()                                       {}
func (c *MockClient) Close()                                     { c.closed = true }

// Received drains and returns everything pushed to this client so far.
func (c *MockClient) Received() []models.Notification {
	var out []models.Notification
	for {
		select {
		case n := <-c.send:
			out = append(out, n)
		default:
			return out
		}
	}
}

// MockPublisher records notification publishes and can simulate Redis
// being unavailable.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishNotification(n models.Notification) error {
	args := m.Called(n)
	return args.Error(0)
}
