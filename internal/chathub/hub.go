// Package chathub owns the in-memory registry of live realtime connections
// and routes events to them. The registry map is the only process-wide
// mutable state in the service; everything here is short, in-memory work
// under a single mutex, never blocking on network or disk.
package chathub

import (
	"log"
	"sync"
)

// Hub maps each user ID to at most one active connection. A new connection
// for a user replaces the previous one; the superseded connection is closed
// after the swap.
type Hub struct {
	mu      sync.RWMutex
	clients map[uint]Client
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[uint]Client),
	}
}

// Register installs the connection, replacing any existing entry for the
// same user. The presence broadcast happens under the registry lock so every
// connection observes presence changes in registry order.
func (h *Hub) Register(client Client) {
	userID := client.GetUserID()

	h.mu.Lock()
	replaced := h.clients[userID]
	h.clients[userID] = client
	h.broadcastPresenceLocked()
	h.mu.Unlock()

	if replaced != nil {
		log.Printf("User %d reconnected, closing superseded connection %s", userID, replaced.GetConnID())
		replaced.Close()
	}
}

// Unregister removes the connection only if it is still the registered one.
// A disconnect arriving after the user has already reconnected elsewhere
// must not evict the newer connection.
func (h *Hub) Unregister(client Client) {
	userID := client.GetUserID()

	h.mu.Lock()
	current, ok := h.clients[userID]
	if !ok || current.GetConnID() != client.GetConnID() {
		h.mu.Unlock()
		return
	}
	delete(h.clients, userID)
	h.broadcastPresenceLocked()
	h.mu.Unlock()
}

// Lookup returns the user's active connection, if any.
func (h *Hub) Lookup(userID uint) (Client, bool) {
	h.mu.RLock()
	client, ok := h.clients[userID]
	h.mu.RUnlock()
	return client, ok
}

// OnlineIDs returns a snapshot of all currently connected user IDs,
// ascending.
func (h *Hub) OnlineIDs() []uint {
	h.mu.RLock()
	ids := h.onlineIDsLocked()
	h.mu.RUnlock()
	return ids
}
