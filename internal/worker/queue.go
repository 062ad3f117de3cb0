package worker

import (
	"context"
	"time"
)

// Queue carries feedback from the HTTP layer to the processor.
type Queue interface {
	Push(ctx context.Context, f Feedback) error
	Pop(ctx context.Context) (Feedback, error)
}

type Feedback struct {
	Query     string    `json:"query"`
	Answer    string    `json:"answer"`
	Type      string    `json:"feedbackType"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
