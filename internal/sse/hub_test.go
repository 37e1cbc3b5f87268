package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DoughGuardian_Go/internal/domain"
	"github.com/osse101/DoughGuardian_Go/internal/event"
)

func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.ClientCount() == n },
		time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt, ok := <-c.EventChannel:
		require.True(t, ok, "client channel closed")
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return Event{}
}

func assertNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		t.Fatalf("unexpected event %s", evt.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_FiltersByTypeAndPlayer(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	all := hub.Register(nil, "")
	cookies := hub.Register([]string{"reward.issued"}, "")
	alice := hub.Register(nil, "alice")
	waitForClients(t, hub, 3)

	require.True(t, hub.Broadcast("reward.issued", "alice", "c1"))
	assert.Equal(t, "c1", receive(t, all).Payload)
	assert.Equal(t, "c1", receive(t, cookies).Payload)
	assert.Equal(t, "c1", receive(t, alice).Payload)

	require.True(t, hub.Broadcast("tier.advanced", "bob", "t1"))
	assert.Equal(t, "t1", receive(t, all).Payload)
	assertNothing(t, cookies)
	assertNothing(t, alice)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register(nil, "")
	waitForClients(t, hub, 1)

	hub.Unregister(c.ID)
	waitForClients(t, hub, 0)

	_, ok := <-c.EventChannel
	assert.False(t, ok)
}

func TestHub_StopClosesClientsAndIsIdempotent(t *testing.T) {
	hub := NewHub()
	hub.Start()

	c := hub.Register(nil, "")
	waitForClients(t, hub, 1)

	hub.Stop()
	hub.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)

	late := hub.Register(nil, "")
	_, ok = <-late.EventChannel
	assert.False(t, ok, "registering after stop yields a closed client")
}

func TestHub_BroadcastDropsWhenBufferFull(t *testing.T) {
	hub := NewHub() // not started, nothing drains the buffer
	for i := 0; i < BroadcastBufferSize; i++ {
		require.True(t, hub.Broadcast("x", "", i))
	}
	assert.False(t, hub.Broadcast("x", "", "overflow"))
	assert.Equal(t, int64(1), hub.Dropped())
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "42", Type: "tier.advanced", Payload: map[string]int{"n": 1}})
	require.NoError(t, err)

	s := string(msg)
	assert.True(t, strings.HasPrefix(s, "id: 42\nevent: tier.advanced\ndata: {"))
	assert.True(t, strings.HasSuffix(s, "\n\n"))
}

func TestSubscriber_TranslatesBusEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	c := hub.Register(nil, "alice")
	waitForClients(t, hub, 1)

	ctx := context.Background()
	reward := domain.Reward{ID: "cookie_patience", EssenceYield: 1.5, Proverb: "Slow dough rises.", MeditationPrompt: "Breathe."}
	require.NoError(t, bus.Publish(ctx, event.NewRewardIssuedEvent("alice", reward)))
	require.NoError(t, bus.Publish(ctx, event.NewTierAdvancedEvent("alice", domain.Tier{ID: "rising_loaf", Name: "Rising Loaf"}, 1)))
	require.NoError(t, bus.Publish(ctx, event.NewProgressResetEvent("bob")))

	got := receive(t, c)
	assert.Equal(t, "reward.issued", got.Type)
	assert.Equal(t, "alice", got.PlayerID)
	assert.Equal(t, WisdomCookiePayload{
		RewardID: "cookie_patience", Proverb: "Slow dough rises.", MeditationPrompt: "Breathe.", EssenceYield: 1.5,
	}, got.Payload)

	got = receive(t, c)
	assert.Equal(t, DoughFormPayload{TierID: "rising_loaf", TierName: "Rising Loaf", TierIndex: 1}, got.Payload)

	assertNothing(t, c)
}

func TestSubscriber_BadPayloadDoesNotFailPublish(t *testing.T) {
	hub := NewHub()
	bus := event.NewMemoryBus()
	NewSubscriber(hub, bus).Subscribe()

	err := bus.Publish(context.Background(), event.Event{Type: event.RewardIssued, Payload: 17})
	assert.NoError(t, err)
}

func TestHandler_StreamsEvents(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=reward.issued&player=alice", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	first := readEvent(t, reader)
	assert.Equal(t, EventTypeConnected, first.Type)

	waitForClients(t, hub, 1)
	hub.Broadcast("tier.advanced", "alice", "skip")
	hub.Broadcast("reward.issued", "bob", "skip")
	hub.Broadcast("reward.issued", "alice", "cookie")

	got := readEvent(t, reader)
	assert.Equal(t, "reward.issued", got.Type)
	assert.Equal(t, "cookie", got.Payload)
}

func readEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			var evt Event
			require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(data)), &evt))
			return evt
		}
	}
}
