package chathub_test

import (
	"sync"
	"testing"

	"pingo/backend/internal/chathub"
	"pingo/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_RegisterAndLookup(t *testing.T) {
	hub := chathub.NewHub()
	client := newMockClient(1)

	hub.Register(client)

	got, ok := hub.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, client.GetConnID(), got.GetConnID())

	_, ok = hub.Lookup(2)
	assert.False(t, ok, "unknown user must not resolve to a connection")
}

func TestHub_RegisterReplacesPreviousConnection(t *testing.T) {
	hub := chathub.NewHub()
	c2 := newMockClient(7)
	c1 := newMockClient(7)

	hub.Register(c2)
	hub.Register(c1)

	got, ok := hub.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, c1.GetConnID(), got.GetConnID(), "lookup must observe the newest connection")
	assert.True(t, c2.Closed(), "superseded connection must be closed")

	// A stale disconnect for the replaced handle must not evict the newer
	// connection.
	hub.Unregister(c2)

	got, ok = hub.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, c1.GetConnID(), got.GetConnID())
}

func TestHub_UnregisterRemovesMatchingConnection(t *testing.T) {
	hub := chathub.NewHub()
	client := newMockClient(3)

	hub.Register(client)
	hub.Unregister(client)

	_, ok := hub.Lookup(3)
	assert.False(t, ok)
	assert.Empty(t, hub.OnlineIDs())
}

func TestHub_OnlineIDsSortedSnapshot(t *testing.T) {
	hub := chathub.NewHub()
	for _, id := range []uint{42, 5, 19} {
		hub.Register(newMockClient(id))
	}

	assert.Equal(t, []uint{5, 19, 42}, hub.OnlineIDs())
}

func TestHub_PresenceBroadcastOnConnectAndDisconnect(t *testing.T) {
	hub := chathub.NewHub()
	alice := newMockClient(1)
	bob := newMockClient(2)

	hub.Register(alice)
	alice.drain()

	hub.Register(bob)

	// Both connections observe the registry state that includes bob.
	for _, c := range []*mockClient{alice, bob} {
		events := c.drain()
		require.NotEmpty(t, events, "user %d saw no presence update", c.GetUserID())
		last := events[len(events)-1]
		assert.Equal(t, models.EventOnlineUsers, last.Event)
		assert.Equal(t, []uint{1, 2}, last.Data)
	}

	hub.Unregister(bob)

	events := alice.drain()
	require.NotEmpty(t, events)
	assert.Equal(t, []uint{1}, events[len(events)-1].Data)
}

func TestHub_PresenceOrderPerConnection(t *testing.T) {
	// A connection must never see a user removed before having seen that
	// user added.
	hub := chathub.NewHub()
	observer := newMockClient(100)
	hub.Register(observer)

	for i := uint(1); i <= 10; i++ {
		peer := newMockClient(i)
		hub.Register(peer)
		hub.Unregister(peer)
	}

	snapshots := [][]uint{}
	for _, ev := range observer.drain() {
		require.Equal(t, models.EventOnlineUsers, ev.Event)
		ids, ok := ev.Data.([]uint)
		require.True(t, ok)
		snapshots = append(snapshots, ids)
	}

	// Each peer connected once and disconnected once, so its presence in
	// the observer's stream must be a single contiguous run: absent,
	// present, absent. Present-after-removed would mean the stream
	// reordered a connect behind its disconnect.
	for peer := uint(1); peer <= 10; peer++ {
		state := "before"
		for _, ids := range snapshots {
			present := false
			for _, id := range ids {
				if id == peer {
					present = true
					break
				}
			}
			switch state {
			case "before":
				if present {
					state = "online"
				}
			case "online":
				if !present {
					state = "after"
				}
			case "after":
				assert.False(t, present, "user %d reappeared after removal", peer)
			}
		}
	}
}

func TestHub_NotifyDeliversToRecipientOnly(t *testing.T) {
	hub := chathub.NewHub()
	sender := newMockClient(1)
	receiver := newMockClient(2)
	hub.Register(sender)
	hub.Register(receiver)
	sender.drain()
	receiver.drain()

	msg := models.Message{ID: 9, SenderID: 1, ReceiverID: 2, Text: "hi"}
	hub.Notify(2, models.EventNewMessage, msg)

	events := receiver.drain()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventNewMessage, events[0].Event)
	assert.Equal(t, msg, events[0].Data)

	assert.Empty(t, sender.drain(), "sender must not be echoed the message")
}

func TestHub_NotifyOfflineRecipientIsSilentNoop(t *testing.T) {
	hub := chathub.NewHub()

	assert.NotPanics(t, func() {
		hub.Notify(404, models.EventNewMessage, models.Message{Text: "hi"})
	})
}

func TestHub_AtMostOneConnectionPerUser(t *testing.T) {
	hub := chathub.NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c := newMockClient(1)
				hub.Register(c)
				if j%2 == 0 {
					hub.Unregister(c)
				}
			}
		}()
	}
	wg.Wait()

	ids := hub.OnlineIDs()
	assert.LessOrEqual(t, len(ids), 1, "registry must hold at most one entry per user")
}
