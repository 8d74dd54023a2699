// Package hub fans out "collection changed" signals to the live subscribers
// of one user.
package hub

import "sync"

// Hub is safe for concurrent use. A subscriber holds at most one pending
// signal; publishing never blocks, extra signals coalesce into the pending one.
type Hub struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[string]map[uint64]chan struct{}
}

func New() *Hub {
	return &Hub{subs: make(map[string]map[uint64]chan struct{})}
}

// Subscribe registers a listener for userID. The returned cancel func
// unregisters it and closes the channel; calling it twice is safe.
func (h *Hub) Subscribe(userID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[uint64]chan struct{})
	}
	h.subs[userID][id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs[userID], id)
			if len(h.subs[userID]) == 0 {
				delete(h.subs, userID)
			}
			close(ch)
		})
	}
	return ch, cancel
}

// Publish signals every subscriber of userID.
func (h *Hub) Publish(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Subscribers returns the number of live subscriptions for userID.
func (h *Hub) Subscribers(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs[userID])
}
