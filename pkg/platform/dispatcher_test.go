package platform

import (
	"testing"
)

func TestDispatcherDeliveryOrder(t *testing.T) {
	d := NewDispatcher()

	var got []int
	d.Connect("topic", func(any) { got = append(got, 1) })
	d.Connect("topic", func(any) { got = append(got, 2) })
	d.Connect("other", func(any) { got = append(got, 3) })

	d.Dispatch("topic", nil)

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", got)
	}
}

func TestDispatcherPayload(t *testing.T) {
	d := NewDispatcher()

	var received any
	d.Connect("topic", func(payload any) { received = payload })

	d.Dispatch("topic", []string{"a", "b"})

	devices, ok := received.([]string)
	if !ok || len(devices) != 2 {
		t.Errorf("payload = %v, want [a b]", received)
	}
}

func TestDispatcherUnsubscribe(t *testing.T) {
	d := NewDispatcher()

	count := 0
	unsub := d.Connect("topic", func(any) { count++ })

	d.Dispatch("topic", nil)
	unsub()
	d.Dispatch("topic", nil)

	if count != 1 {
		t.Errorf("subscriber called %d times after unsubscribe, want 1", count)
	}

	// Unsubscribing again must not panic or remove other subscribers
	d.Connect("topic", func(any) { count += 10 })
	unsub()
	d.Dispatch("topic", nil)

	if count != 11 {
		t.Errorf("count = %d, want 11", count)
	}
	if d.SubscriberCount("topic") != 1 {
		t.Errorf("subscriber count = %d, want 1", d.SubscriberCount("topic"))
	}
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := NewDispatcher()
	// Must not panic dispatching to a topic nobody listens on
	d.Dispatch("empty", 42)
}
