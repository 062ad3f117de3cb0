package worker

import (
	"context"
	"sync"
)

// FeedbackLog persists processed feedback.
type FeedbackLog interface {
	Record(ctx context.Context, f Feedback) error
}

type Counts struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
}

// MemoryLog keeps the most recent feedback entries and running totals.
type MemoryLog struct {
	mu      sync.Mutex
	entries []Feedback
	max     int
	counts  Counts
}

func NewMemoryLog(max int) *MemoryLog {
	return &MemoryLog{max: max}
}

func (m *MemoryLog) Record(_ context.Context, f Feedback) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if f.Type == "positive" {
		m.counts.Positive++
	} else {
		m.counts.Negative++
	}

	m.entries = append(m.entries, f)
	if m.max > 0 && len(m.entries) > m.max {
		m.entries = m.entries[len(m.entries)-m.max:]
	}
	return nil
}

func (m *MemoryLog) Counts() Counts {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts
}

func (m *MemoryLog) Entries() []Feedback {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Feedback(nil), m.entries...)
}
