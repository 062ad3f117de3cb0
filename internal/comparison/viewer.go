package comparison

import (
	"context"
	"errors"
	"sync"

	"kbportal/internal/compare"
)

// ErrStale is returned when a newer selection superseded the comparison.
var ErrStale = errors.New("comparison superseded by a newer selection")

// Viewer holds the comparison currently on screen. Each Select starts a new
// generation and cancels the one in flight; only the latest generation may
// publish its result.
type Viewer struct {
	svc *Service

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	current *Selection
}

// Selection is a published comparison.
type Selection struct {
	LeftID  string
	RightID string
	Result  compare.Result
}

func NewViewer(svc *Service) *Viewer {
	return &Viewer{svc: svc}
}

func (v *Viewer) Select(ctx context.Context, leftID, rightID string) (Selection, error) {
	ctx, cancel := context.WithCancel(ctx)

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	v.cancel = cancel
	v.mu.Unlock()

	res, err := v.svc.Compare(ctx, leftID, rightID)

	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		cancel()
		return Selection{}, ErrStale
	}
	v.cancel = nil
	cancel()

	if err != nil {
		return Selection{}, err
	}

	sel := Selection{LeftID: leftID, RightID: rightID, Result: res}
	v.current = &sel
	return sel, nil
}

// Current returns the last published selection.
func (v *Viewer) Current() (Selection, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.current == nil {
		return Selection{}, false
	}
	return *v.current, true
}

// Reset drops the published selection and cancels any comparison in flight.
func (v *Viewer) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	v.gen++
	v.current = nil
}
