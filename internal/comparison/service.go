package comparison

import (
	"context"
	"errors"
	"fmt"
	"time"

	"kbportal/internal/compare"
	"kbportal/internal/content"
	"kbportal/internal/observability"

	"golang.org/x/sync/errgroup"
)

var ErrMissingDocument = errors.New("two documents are required")

// Documents is the pair of texts a comparison was computed from.
type Documents struct {
	LeftID  string
	RightID string
	Left    string
	Right   string
}

type Service struct {
	source content.Source
	logger *observability.Logger
}

func NewService(src content.Source, logger *observability.Logger) *Service {
	return &Service{
		source: src,
		logger: logger,
	}
}

// Load fetches both documents concurrently and waits for both.
func (s *Service) Load(ctx context.Context, leftID, rightID string) (Documents, error) {
	if leftID == "" || rightID == "" {
		return Documents{}, ErrMissingDocument
	}

	var left, right content.Content

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.fetch(gctx, leftID)
		left = c
		return err
	})
	g.Go(func() error {
		c, err := s.fetch(gctx, rightID)
		right = c
		return err
	})

	if err := g.Wait(); err != nil {
		return Documents{}, err
	}

	return Documents{
		LeftID:  leftID,
		RightID: rightID,
		Left:    left.Content,
		Right:   right.Content,
	}, nil
}

// Compare loads both documents and diffs them. Any fetch failure ends the
// attempt; there is no retry.
func (s *Service) Compare(ctx context.Context, leftID, rightID string) (compare.Result, error) {
	start := time.Now()

	docs, err := s.Load(ctx, leftID, rightID)
	if err != nil {
		observability.Comparisons.WithLabelValues("error").Inc()
		s.logger.Error("comparison failed",
			"left", leftID,
			"right", rightID,
			"err", err,
		)
		return compare.Result{}, err
	}

	res := compare.Compare(docs.Left, docs.Right)

	observability.Comparisons.WithLabelValues("ok").Inc()
	observability.ComparisonLatency.Observe(time.Since(start).Seconds())

	s.logger.Debug("comparison done",
		"left", leftID,
		"right", rightID,
		"lines", len(res.Records),
		"modified", res.Stats.Modified,
	)

	return res, nil
}

// Patch returns the unified patch between two documents.
func (s *Service) Patch(ctx context.Context, leftID, rightID string) (string, error) {
	docs, err := s.Load(ctx, leftID, rightID)
	if err != nil {
		return "", err
	}
	return compare.Patch(leftID, rightID, docs.Left, docs.Right), nil
}

func (s *Service) fetch(ctx context.Context, id string) (content.Content, error) {
	c, err := s.source.Fetch(ctx, id)
	if err != nil {
		observability.ContentFetches.WithLabelValues("error").Inc()
		return content.Content{}, fmt.Errorf("fetch %s: %w", id, err)
	}
	observability.ContentFetches.WithLabelValues("ok").Inc()
	return c, nil
}
