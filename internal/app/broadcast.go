package app

import (
	"sync"

	"football-quiz/internal/domain"
)

// hub fans game views out to subscribers.
type hub struct {
	mu          sync.Mutex
	subscribers map[chan domain.GameView]struct{}
}

func newHub() *hub {
	return &hub{subscribers: make(map[chan domain.GameView]struct{})}
}

func (h *hub) add(initial domain.GameView) (<-chan domain.GameView, func()) {
	ch := make(chan domain.GameView, 8)

	h.mu.Lock()
	h.subscribers[ch] = struct{}{}
	ch <- initial
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subscribers[ch]; ok {
			delete(h.subscribers, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

func (h *hub) publish(view domain.GameView) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- view:
		default:
			// Slow reader: drop its oldest view so the newest always lands.
			select {
			case <-ch:
			default:
			}
			ch <- view
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		delete(h.subscribers, ch)
		close(ch)
	}
}
