package chathub

import "pingo/backend/internal/models"

// Client is one live realtime connection. It abstracts the underlying
// transport so the hub can manage connections uniformly and tests can swap
// in doubles.
type Client interface {
	// GetUserID returns the authenticated user this connection belongs to.
	GetUserID() uint
	// GetConnID returns the unique handle of this connection. The hub uses
	// it to tell a stale connection apart from its replacement.
	GetConnID() string

	// Enqueue hands an event to the connection's outbound buffer without
	// blocking. It reports false when the connection is closed or the
	// buffer is full; the event is then dropped.
	Enqueue(event models.Event) bool

	// Run starts the connection's read and write pumps.
	Run()
	// Close shuts the connection down. Safe to call more than once.
	Close()
}
