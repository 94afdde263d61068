// Package realtime fans order-change notifications out to subscribers.
// Notifications carry no payload; receivers refetch the order list.
package realtime

import "sync"

// Hub is an in-process publish/subscribe registry. Callbacks run on the
// publisher's goroutine and must return quickly.
type Hub struct {
	mu   sync.Mutex
	subs map[uint64]func()
	next uint64
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]func())}
}

// Subscribe registers onChange and returns its unsubscribe function.
// Unsubscribe is idempotent.
func (h *Hub) Subscribe(onChange func()) (unsubscribe func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = onChange
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Publish notifies every current subscriber.
func (h *Hub) Publish() {
	h.mu.Lock()
	callbacks := make([]func(), 0, len(h.subs))
	for _, cb := range h.subs {
		callbacks = append(callbacks, cb)
	}
	h.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

// SubscriberCount reports current registrations.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
