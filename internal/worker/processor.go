package worker

import (
	"context"
	"errors"
	"time"

	"kbportal/internal/dedup"
	"kbportal/internal/observability"
	"kbportal/internal/retry"

	"github.com/redis/go-redis/v9"
)

type Processor struct {
	queue     Queue
	dedup     dedup.Store
	log       FeedbackLog
	logger    *observability.Logger
	retryWait time.Duration
	done      chan struct{}
}

func NewProcessor(
	q Queue,
	d dedup.Store,
	fl FeedbackLog,
	l *observability.Logger,
) *Processor {

	return &Processor{
		queue:     q,
		dedup:     d,
		log:       fl,
		logger:    l,
		retryWait: 200 * time.Millisecond,
		done:      make(chan struct{}),
	}
}

// Start consumes the queue until ctx is cancelled.
func (p *Processor) Start(ctx context.Context) {

	go func() {
		defer close(p.done)

		for {
			f, err := p.queue.Pop(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				if errors.Is(err, redis.Nil) {
					continue
				}

				observability.FeedbackEvents.WithLabelValues("pop_error").Inc()
				p.logger.Warn("feedback queue pop failed", "err", err)

				if !p.sleep(ctx, p.retryWait) {
					return
				}
				continue
			}

			p.handle(ctx, f)
		}
	}()
}

// sleep waits d and reports false when ctx ended first.
func (p *Processor) sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// Done is closed once the consumer loop has exited.
func (p *Processor) Done() <-chan struct{} {
	return p.done
}

func (p *Processor) handle(parent context.Context, f Feedback) {

	ctx, cancel := context.WithTimeout(parent, 10*time.Second)
	defer cancel()

	key := dedup.Key(f.Query, f.Answer, f.Type)

	if p.dedup.Seen(ctx, key) {
		observability.FeedbackEvents.WithLabelValues("duplicate").Inc()
		p.logger.Debug("duplicate feedback dropped", "type", f.Type)
		return
	}

	err := retry.Do(ctx, 3, p.retryWait, func() error {
		return p.log.Record(ctx, f)
	})
	if err != nil {
		observability.FeedbackEvents.WithLabelValues("failed").Inc()
		p.logger.Error("record feedback failed", "err", err)
		return
	}

	if err := p.dedup.Mark(ctx, key); err != nil {
		p.logger.Warn("dedup mark failed", "err", err)
	}

	observability.FeedbackEvents.WithLabelValues(f.Type).Inc()
	p.logger.Info("feedback recorded",
		"type", f.Type,
		"query", f.Query,
	)
}
