package chathub_test

import (
	"sync"

	"pingo/backend/internal/chathub"
	"pingo/backend/internal/models"

	"github.com/google/uuid"
)

// mockClient is a test double for the chathub.Client interface. Events are
// captured in a buffered channel so tests can assert on exactly what was
// pushed.
type mockClient struct {
	userID uint
	connID string

	mu     sync.Mutex
	closed bool

	Recv chan models.Event
}

func newMockClient(userID uint) *mockClient {
	return &mockClient{
		userID: userID,
		connID: uuid.NewString(),
		Recv:   make(chan models.Event, 32),
	}
}

func (c *mockClient) GetUserID() uint   { return c.userID }
func (c *mockClient) GetConnID() string { return c.connID }

func (c *mockClient) Enqueue(event models.Event) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.Recv <- event:
		return true
	default:
		return false
	}
}

func (c *mockClient) Run() {}

func (c *mockClient) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
}

func (c *mockClient) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// drain empties the receive buffer and returns everything captured so far.
func (c *mockClient) drain() []models.Event {
	var events []models.Event
	for {
		select {
		case ev := <-c.Recv:
			events = append(events, ev)
		default:
			return events
		}
	}
}

var _ chathub.Client = (*mockClient)(nil)
