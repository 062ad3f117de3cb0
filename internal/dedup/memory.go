package dedup

import (
	"context"
	"sync"
	"time"
)

const (
	defaultTTL        = 24 * time.Hour
	defaultMaxEntries = 10000
)

type marked struct {
	key string
	at  time.Time
	seq uint64
}

// Memory is a process-local Store. Keys expire after ttl and the oldest
// marks are evicted once more than maxEntries are held.
type Memory struct {
	mu         sync.Mutex
	seen       map[string]marked
	order      []marked
	seq        uint64
	ttl        time.Duration
	maxEntries int
}

func NewMemory() *Memory {
	return &Memory{
		seen:       make(map[string]marked),
		ttl:        defaultTTL,
		maxEntries: defaultMaxEntries,
	}
}

func (m *Memory) Seen(ctx context.Context, key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.seen[key]
	if !ok {
		return false
	}
	if time.Since(e.at) > m.ttl {
		delete(m.seen, key)
		return false
	}
	return true
}

// Mark records key as handled now. Marking a key again refreshes both its
// expiry and its place in the eviction order.
func (m *Memory) Mark(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.seq++
	e := marked{key: key, at: now, seq: m.seq}
	m.seen[key] = e
	m.order = append(m.order, e)

	m.evictLocked(now)
	return nil
}

// current reports whether e is the latest mark of its key.
func (m *Memory) current(e marked) bool {
	cur, ok := m.seen[e.key]
	return ok && cur.seq == e.seq
}

// evictLocked drops expired keys and then the oldest ones until the store
// fits maxEntries. Entries of order superseded by a later Mark, or whose
// key Seen already expired, are skipped.
func (m *Memory) evictLocked(now time.Time) {
	i := 0
	for ; i < len(m.order); i++ {
		e := m.order[i]
		if !m.current(e) {
			continue
		}
		if now.Sub(e.at) <= m.ttl && len(m.seen) <= m.maxEntries {
			break
		}
		delete(m.seen, e.key)
	}
	m.order = m.order[i:]

	if len(m.order) > 2*len(m.seen)+16 {
		live := make([]marked, 0, len(m.seen))
		for _, e := range m.order {
			if m.current(e) {
				live = append(live, e)
			}
		}
		m.order = live
	}
}
