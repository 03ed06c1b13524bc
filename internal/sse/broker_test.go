package sse

import (
	"strings"
	"testing"
	"time"
)

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestFileEventDelivery(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishFileEvent("updated", "notes/a.md")

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.Contains(s, "event: file.updated") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, "notes/a.md") {
			t.Errorf("missing path in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestRefreshThrottled(t *testing.T) {
	b := NewBroker(time.Hour) // effectively once
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishFileEvent("created", "a.md")
	b.PublishFileEvent("created", "b.md")

	deadline := time.After(time.Second)
	refreshes := 0
	fileEvents := 0
	for fileEvents < 2 {
		select {
		case msg := <-ch:
			s := string(msg)
			if strings.Contains(s, "event: decor.refresh") {
				refreshes++
			}
			if strings.Contains(s, "event: file.created") {
				fileEvents++
			}
		case <-deadline:
			t.Fatal("timed out waiting for file events")
		}
	}

	if refreshes != 1 {
		t.Errorf("refreshes = %d, want exactly 1 within throttle window", refreshes)
	}
}

func TestSettingsUpdatedBroadcast(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishSettingsUpdated()

	select {
	case msg := <-ch:
		if !strings.Contains(string(msg), "event: settings.updated") {
			t.Errorf("unexpected message %q", msg)
		}
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestPublishAfterCloseIsNoop(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	b.Close()
	// Must not panic or block.
	b.PublishFileEvent("created", "a.md")
	b.PublishSettingsUpdated()
	if n := b.ClientCount(); n != 0 {
		t.Errorf("ClientCount = %d after close", n)
	}
}
