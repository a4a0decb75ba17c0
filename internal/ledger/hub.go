package ledger

import "sync"

// Hub fans a change signal out to every open subscription. The signal carries
// no payload; each subscription re-reads the store and emits a full snapshot.
// Signal channels are buffered with capacity 1 and sends never block, so a
// slow subscription coalesces any number of pending signals into one.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan struct{}
	next int
}

func NewHub() *Hub {
	return &Hub{subs: map[int]chan struct{}{}}
}

// Register returns a signal channel and a release func. Release is safe to
// call more than once.
func (h *Hub) Register() (<-chan struct{}, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan struct{}, 1)
	h.subs[id] = ch

	var once sync.Once
	release := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
	return ch, release
}

// Broadcast signals every registered subscription that the collection changed.
func (h *Hub) Broadcast() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
