package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/sony/gobreaker"
)

// CircuitBreakerProvider guards the search API. After more than five
// consecutive failures calls fail fast with gobreaker.ErrOpenState for 30s,
// then up to three trial requests decide whether the breaker closes.
type CircuitBreakerProvider struct {
	provider Provider
	cb       *gobreaker.CircuitBreaker
}

// NewCircuitBreaker wraps p in the "search-api" breaker with gobreaker's
// default trip rule.
func NewCircuitBreaker(p Provider) *CircuitBreakerProvider {

	settings := gobreaker.Settings{
		Name:        "search-api",
		MaxRequests: 3,
		Interval:    0,
		Timeout:     30 * time.Second,
	}

	return &CircuitBreakerProvider{
		provider: p,
		cb:       gobreaker.NewCircuitBreaker(settings),
	}
}

// Answer calls the wrapped provider unless the breaker is open.
func (c *CircuitBreakerProvider) Answer(
	ctx context.Context,
	r Request,
) (Answer, error) {

	out, err := c.cb.Execute(func() (interface{}, error) {
		return c.provider.Answer(ctx, r)
	})

	if err != nil {
		return Answer{}, err
	}

	resp, ok := out.(Answer)
	if !ok {
		return Answer{}, fmt.Errorf("unexpected circuit breaker response type")
	}

	return resp, nil
}

// State reports closed, half-open or open.
func (c *CircuitBreakerProvider) State() string {
	return c.cb.State().String()
}
