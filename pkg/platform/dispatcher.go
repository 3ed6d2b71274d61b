package platform

import (
	"sync"

	"github.com/google/uuid"
)

// Dispatcher is a topic-keyed broadcast bus modeled on a home-automation
// host's signal dispatcher. Subscribers receive payloads synchronously in
// subscription order. Safe for concurrent use.
type Dispatcher struct {
	mu     sync.RWMutex
	topics map[string][]subscriber
}

type subscriber struct {
	id uuid.UUID
	fn func(payload any)
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{topics: make(map[string][]subscriber)}
}

// Connect subscribes fn to a topic and returns an unsubscribe function.
// Unsubscribing is idempotent.
func (d *Dispatcher) Connect(topic string, fn func(payload any)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := uuid.New()
	d.topics[topic] = append(d.topics[topic], subscriber{id: id, fn: fn})

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()

		subs := d.topics[topic]
		for i, s := range subs {
			if s.id == id {
				d.topics[topic] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch delivers a payload to all subscribers of a topic. Delivery is
// synchronous; subscribers run on the caller's goroutine.
func (d *Dispatcher) Dispatch(topic string, payload any) {
	d.mu.RLock()
	subs := make([]subscriber, len(d.topics[topic]))
	copy(subs, d.topics[topic])
	d.mu.RUnlock()

	for _, s := range subs {
		s.fn(payload)
	}
}

// SubscriberCount returns the number of subscribers for a topic.
func (d *Dispatcher) SubscriberCount(topic string) int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.topics[topic])
}
