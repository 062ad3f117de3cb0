package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"kbportal/internal/ai"
	"kbportal/internal/observability"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("message is required")

// contextWindow is how many past exchanges accompany a message.
const contextWindow = 5

type Reply struct {
	MessageID   string    `json:"messageId"`
	Answer      string    `json:"answer"`
	Confidence  float64   `json:"confidence"`
	Sources     []string  `json:"sources"`
	Suggestions []string  `json:"suggestions"`
	FollowUps   []string  `json:"followUps"`
	Timestamp   time.Time `json:"timestamp"`
}

type Info struct {
	Provider      string     `json:"provider"`
	HistoryLength int        `json:"historyLength"`
	Capacity      int        `json:"capacity"`
	LastActivity  *time.Time `json:"lastActivity"`
}

// Service is the chat assistant. One instance is shared by all handlers.
type Service struct {
	provider     ai.Provider
	providerName string
	logger       *observability.Logger
	now          func() time.Time

	mu      sync.Mutex
	history *history
}

func NewService(p ai.Provider, providerName string, capacity int, logger *observability.Logger) *Service {
	return &Service{
		provider:     p,
		providerName: providerName,
		logger:       logger,
		now:          time.Now,
		history:      newHistory(capacity),
	}
}

func (s *Service) Send(ctx context.Context, message string, includeHistory bool) (Reply, error) {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return Reply{}, ErrEmptyMessage
	}

	req := ai.Request{Question: msg}
	if includeHistory {
		s.mu.Lock()
		req.Context = s.history.last(contextWindow)
		s.mu.Unlock()
	}

	a, err := s.provider.Answer(ctx, req)
	if err != nil {
		s.logger.Error("chat answer failed", "err", err)
		return Reply{}, fmt.Errorf("answer message: %w", err)
	}

	now := s.now()

	s.mu.Lock()
	s.history.add(ai.Exchange{User: msg, Bot: a.Text, Timestamp: now})
	s.mu.Unlock()

	observability.ChatMessages.Inc()
	s.logger.Debug("chat answered",
		"provider", a.Provider,
		"confidence", a.Confidence,
		"context", len(req.Context),
	)

	sources := a.Sources
	if sources == nil {
		sources = []string{}
	}
	suggestions := a.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return Reply{
		MessageID:   uuid.NewString(),
		Answer:      a.Text,
		Confidence:  a.Confidence,
		Sources:     sources,
		Suggestions: suggestions,
		FollowUps:   FollowUps(a.Text),
		Timestamp:   now,
	}, nil
}

// History returns the stored exchanges, oldest first.
func (s *Service) History() []ai.Exchange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.all()
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history.reset()
}

func (s *Service) Info() Info {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := Info{
		Provider:      s.providerName,
		HistoryLength: s.history.len(),
		Capacity:      len(s.history.buf),
	}
	if last := s.history.last(1); len(last) == 1 {
		ts := last[0].Timestamp
		info.LastActivity = &ts
	}
	return info
}
