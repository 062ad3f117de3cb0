package ai

import (
	"context"
	"time"
)

// Exchange is one question/answer pair of a conversation.
type Exchange struct {
	User      string    `json:"user"`
	Bot       string    `json:"bot"`
	Timestamp time.Time `json:"timestamp"`
}

type Request struct {
	Question string
	Context  []Exchange
	// SearchResults are titles of documents matched for the question.
	SearchResults []string
}

type Answer struct {
	Text        string   `json:"answer"`
	Confidence  float64  `json:"confidence"`
	Sources     []string `json:"sources"`
	Suggestions []string `json:"suggestions,omitempty"`
	Kind        string   `json:"type,omitempty"`
	Provider    string   `json:"provider"`
}

//go:generate mockery --name Provider --output ../mocks --with-expecter
type Provider interface {
	Answer(ctx context.Context, r Request) (Answer, error)
}
