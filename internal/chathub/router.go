package chathub

import (
	"log"

	"pingo/backend/internal/models"
)

// Notify pushes an event to the recipient's active connection. When the
// recipient is offline the event is silently dropped: delivery is
// best-effort, there is no offline queue, and clients recover missed events
// by refetching state on reconnect. A miss is never an error for the caller,
// whose mutation has already committed.
func (h *Hub) Notify(recipientID uint, event string, data any) {
	client, ok := h.Lookup(recipientID)
	if !ok {
		return
	}

	if !client.Enqueue(models.Event{Event: event, Data: data}) {
		log.Printf("Dropping %s event for user %d: connection not accepting writes", event, recipientID)
	}
}
