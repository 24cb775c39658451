package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/numanharith/propertyhub-frontend/internal/contextkeys"
	"github.com/numanharith/propertyhub-frontend/internal/core/port"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotifier(t *testing.T) *SSENotifier {
	t.Helper()
	n := NewSSENotifier(contextkeys.LoggerFromContext(context.Background()))
	t.Cleanup(n.Close)
	return n
}

func receive(t *testing.T, ch ClientChannel) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return ""
	}
}

func TestNotify_FansOutToAllTabsOfUser(t *testing.T) {
	n := newNotifier(t)
	tab1 := n.AddClient("42")
	tab2 := n.AddClient("42")
	other := n.AddClient("7")

	n.Notify(context.Background(), port.UserEvent{Type: port.EventLeadUpdated, UserID: "42", Data: map[string]string{"status": "VERIFIED"}})

	expected := "event: lead_updated\ndata: {\"status\":\"VERIFIED\"}\n\n"
	assert.Equal(t, expected, receive(t, tab1))
	assert.Equal(t, expected, receive(t, tab2))

	select {
	case msg := <-other:
		t.Fatalf("unexpected event for other user: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestRemoveClient(t *testing.T) {
	n := newNotifier(t)
	tab1 := n.AddClient("42")
	tab2 := n.AddClient("42")

	n.RemoveClient("42", tab1)
	n.Notify(context.Background(), port.UserEvent{Type: port.EventSessionEnded, UserID: "42", Data: nil})
	assert.Contains(t, receive(t, tab2), "event: session_ended")

	n.RemoveClient("42", tab2)
	n.mu.RLock()
	_, present := n.clients["42"]
	n.mu.RUnlock()
	require.False(t, present)
}

func TestNotify_AfterCloseDoesNotBlock(t *testing.T) {
	n := newNotifier(t)
	n.Close()

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			n.Notify(context.Background(), port.UserEvent{Type: port.EventLeadUpdated, UserID: "1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked after Close")
	}
}

func TestClose_ClosesClientChannels(t *testing.T) {
	n := newNotifier(t)
	tab := n.AddClient("42")

	n.Close()

	select {
	case _, ok := <-tab:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("client channel was not closed")
	}

	late := n.AddClient("42")
	_, ok := <-late
	assert.False(t, ok, "AddClient after Close returns a closed channel")

	n.RemoveClient("42", tab)
}
