package chathub

import (
	"log"
	"sort"

	"pingo/backend/internal/models"
)

// broadcastPresenceLocked pushes the current online-user set to every
// registered connection. Callers must hold h.mu; enqueueing is non-blocking,
// so holding the lock across the fan-out is cheap and keeps each
// connection's presence stream in registry order.
func (h *Hub) broadcastPresenceLocked() {
	ids := h.onlineIDsLocked()
	event := models.Event{Event: models.EventOnlineUsers, Data: ids}

	for _, client := range h.clients {
		if !client.Enqueue(event) {
			log.Printf("Dropping presence update for user %d: connection not accepting writes", client.GetUserID())
		}
	}
}

func (h *Hub) onlineIDsLocked() []uint {
	ids := make([]uint, 0, len(h.clients))
	for id := range h.clients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
