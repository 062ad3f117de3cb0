package worker

import "context"

type MemoryQueue struct {
	ch chan Feedback
}

func NewMemoryQueue(size int) *MemoryQueue {
	return &MemoryQueue{
		ch: make(chan Feedback, size),
	}
}

func (m *MemoryQueue) Push(ctx context.Context, f Feedback) error {
	select {
	case m.ch <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *MemoryQueue) Pop(ctx context.Context) (Feedback, error) {
	select {
	case f := <-m.ch:
		return f, nil
	case <-ctx.Done():
		return Feedback{}, ctx.Err()
	}
}
