package ai

import (
	"context"
	"errors"
	"time"

	"kbportal/internal/config"
	"kbportal/internal/observability"

	"github.com/sony/gobreaker"
)

// NewProvider returns the upstream API guarded by a circuit breaker with
// rules as the fallback, or the rules alone when no upstream is configured.
func NewProvider(cfg *config.Config, rules Provider) Provider {
	upstream := NewUpstream(cfg)
	if upstream == nil {
		return Instrument(rules, "rules")
	}

	return NewFallback(upstream, Instrument(rules, "rules"))
}

// NewUpstream returns the instrumented, breaker-guarded upstream API, or nil
// when none is configured.
func NewUpstream(cfg *config.Config) Provider {
	if cfg.SearchAPIURL == "" {
		return nil
	}
	return Instrument(NewCircuitBreaker(NewRemote(cfg.SearchAPIURL, cfg.AITimeout)), "remote")
}

// Unavailable reports whether err means the upstream is failing on its own
// side, as opposed to a bad request or a network problem on ours.
func Unavailable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Server()
	}
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}

// Instrument records call counts, errors and latency for p.
func Instrument(p Provider, name string) Provider {
	return &instrumented{p: p, name: name}
}

type instrumented struct {
	p    Provider
	name string
}

func (i *instrumented) Answer(ctx context.Context, r Request) (Answer, error) {
	start := time.Now()
	a, err := i.p.Answer(ctx, r)

	observability.AICalls.WithLabelValues(i.name).Inc()
	observability.AILatency.WithLabelValues(i.name).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.AIErrors.WithLabelValues(i.name).Inc()
	}

	return a, err
}
