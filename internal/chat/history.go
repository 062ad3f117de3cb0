package chat

import "kbportal/internal/ai"

// history keeps the last cap exchanges, oldest first.
type history struct {
	buf   []ai.Exchange
	start int
	n     int
}

func newHistory(capacity int) *history {
	if capacity < 1 {
		capacity = 1
	}
	return &history{buf: make([]ai.Exchange, capacity)}
}

func (h *history) add(e ai.Exchange) {
	if h.n < len(h.buf) {
		h.buf[(h.start+h.n)%len(h.buf)] = e
		h.n++
		return
	}
	h.buf[h.start] = e
	h.start = (h.start + 1) % len(h.buf)
}

// last returns up to k most recent exchanges, oldest first.
func (h *history) last(k int) []ai.Exchange {
	if k > h.n {
		k = h.n
	}
	out := make([]ai.Exchange, 0, k)
	for i := h.n - k; i < h.n; i++ {
		out = append(out, h.buf[(h.start+i)%len(h.buf)])
	}
	return out
}

func (h *history) all() []ai.Exchange {
	return h.last(h.n)
}

func (h *history) len() int {
	return h.n
}

func (h *history) reset() {
	clear(h.buf)
	h.start, h.n = 0, 0
}
