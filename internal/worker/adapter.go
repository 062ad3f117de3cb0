package worker

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidFeedback = errors.New("feedbackType must be positive or negative")
	ErrMissingQuery    = errors.New("query is required")
)

// Adapter lets the HTTP layer submit feedback without knowing the queue.
type Adapter struct {
	q   Queue
	now func() time.Time
}

func NewAdapter(q Queue) *Adapter {
	return &Adapter{q: q, now: time.Now}
}

func (a *Adapter) Submit(ctx context.Context, query, answer, kind, comment string) error {
	if kind != "positive" && kind != "negative" {
		return ErrInvalidFeedback
	}
	if strings.TrimSpace(query) == "" {
		return ErrMissingQuery
	}

	return a.q.Push(ctx, Feedback{
		Query:     query,
		Answer:    answer,
		Type:      kind,
		Comment:   comment,
		Timestamp: a.now(),
	})
}
