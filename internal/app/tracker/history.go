package tracker

import "github.com/francois-poidevin/flightnotifier/internal/app"

//History - fixed capacity FIFO of path snapshots, the oldest is evicted first
type History struct {
	buf   []app.PathSnapshot
	start int
	size  int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]app.PathSnapshot, capacity)}
}

func (h *History) Add(s app.PathSnapshot) {
	if h.size < len(h.buf) {
		h.buf[(h.start+h.size)%len(h.buf)] = s
		h.size++
		return
	}
	h.buf[h.start] = s
	h.start = (h.start + 1) % len(h.buf)
}

func (h *History) Len() int {
	return h.size
}

func (h *History) Cap() int {
	return len(h.buf)
}

func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = app.PathSnapshot{}
	}
	h.start = 0
	h.size = 0
}

// Snapshots returns a copy, oldest first.
func (h *History) Snapshots() []app.PathSnapshot {
	out := make([]app.PathSnapshot, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.buf[(h.start+i)%len(h.buf)]
	}
	return out
}
