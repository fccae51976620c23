package models

// Realtime event names pushed over the websocket. These match what the web
// client listens for.
const (
	EventNewMessage      = "newMessage"
	EventArchivedUpdated = "archivedUpdated"
	EventOnlineUsers     = "getOnlineUsers"
)

// Event is the envelope for every server→client websocket frame.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// ArchivedUpdate is the payload of an archivedUpdated event: the acting
// user's full archived set after the change.
type ArchivedUpdate struct {
	ArchivedChats ArchivedSet `json:"archivedChats"`
}
