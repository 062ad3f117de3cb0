package ai

import "context"

// FallbackProvider answers from primary and asks secondary only when
// primary returns an error.
type FallbackProvider struct {
	primary   Provider
	secondary Provider
}

// NewFallback chains p1 before p2.
func NewFallback(p1, p2 Provider) *FallbackProvider {
	return &FallbackProvider{
		primary:   p1,
		secondary: p2,
	}
}

// Answer returns the secondary answer on any primary error, including an
// open breaker, so callers never see the primary's failure.
func (f *FallbackProvider) Answer(
	ctx context.Context,
	r Request,
) (Answer, error) {

	resp, err := f.primary.Answer(ctx, r)
	if err == nil {
		return resp, nil
	}

	return f.secondary.Answer(ctx, r)
}
