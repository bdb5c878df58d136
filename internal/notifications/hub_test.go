package notifications

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestHubPublishSubscribe проверяет доставку событий подписчику.
func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()
	accountID := uuid.New()

	ch, unsubscribe := hub.Subscribe(accountID)
	defer unsubscribe()

	hub.Publish(accountID, Event{Type: "ledger_updated"})

	select {
	case event := <-ch:
		if event.Type != "ledger_updated" {
			t.Fatalf("expected event type ledger_updated, got %s", event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}

// TestHubIsolatesAccounts проверяет, что чужой счет событий не получает.
func TestHubIsolatesAccounts(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe(uuid.New())
	defer unsubscribe()

	hub.Publish(uuid.New(), Event{Type: "ledger_updated"})

	select {
	case event := <-ch:
		t.Fatalf("expected no event, got %s", event.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

// TestHubUnsubscribe проверяет закрытие канала после отписки.
func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	accountID := uuid.New()

	ch, unsubscribe := hub.Subscribe(accountID)
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}
}
