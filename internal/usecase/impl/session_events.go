package impl

import (
	"sync"

	"printhub/internal/domain/entity"
	"printhub/internal/usecase"
)

type subscriber struct {
	id uint64
	fn usecase.SessionCallback
}

// sessionEvents is an in-process fan-out of session changes.
// Callbacks run synchronously on the publishing goroutine, in subscription order.
type sessionEvents struct {
	mu          sync.RWMutex
	nextID      uint64
	subscribers []subscriber
}

// NewSessionEvents creates an empty session change hub.
func NewSessionEvents() usecase.SessionEvents {
	return &sessionEvents{}
}

// Subscribe registers fn and returns a function that removes it. Calling the returned
// function more than once is a no-op.
func (h *sessionEvents) Subscribe(fn usecase.SessionCallback) func() {
	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subscribers = append(h.subscribers, subscriber{id: id, fn: fn})
	h.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { h.remove(id) })
	}
}

// Publish delivers change to every current subscriber.
func (h *sessionEvents) Publish(change entity.SessionChange) {
	h.mu.RLock()
	snapshot := make([]subscriber, len(h.subscribers))
	copy(snapshot, h.subscribers)
	h.mu.RUnlock()

	for _, sub := range snapshot {
		sub.fn(change)
	}
}

func (h *sessionEvents) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, sub := range h.subscribers {
		if sub.id == id {
			h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)

			return
		}
	}
}
