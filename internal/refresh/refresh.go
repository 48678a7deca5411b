package refresh

import (
	"context"
	"sync"
	"time"
)

// DefaultRenderPeriod is how often a mounted view re-renders its relative
// timestamps against the current clock.
const DefaultRenderPeriod = 60 * time.Second

// Refresher drives a long-lived view: a render tick re-draws existing data on
// a fixed period, and an optional refetch tick pulls fresh data. Fetches carry
// a generation number; a slow fetch that finishes after a newer one started is
// discarded instead of overwriting newer state.
type Refresher struct {
	RenderPeriod  time.Duration
	RefetchPeriod time.Duration

	Fetch  func(ctx context.Context) (any, error)
	Render func(snapshot any, now time.Time)

	mu       sync.Mutex
	gen      uint64
	snapshot any
	loaded   bool

	renderMu sync.Mutex
}

// Run blocks until ctx is cancelled. It fetches once up front, then renders
// on every render tick and refetches on every refetch tick (if configured).
// The initial fetch error is returned; later fetch errors keep the previous
// snapshot on screen.
func (r *Refresher) Run(ctx context.Context) error {
	renderPeriod := r.RenderPeriod
	if renderPeriod <= 0 {
		renderPeriod = DefaultRenderPeriod
	}

	if err := r.refetch(ctx); err != nil {
		return err
	}
	r.renderNow(time.Now())

	renderTick := time.NewTicker(renderPeriod)
	defer renderTick.Stop()

	var refetchC <-chan time.Time
	if r.RefetchPeriod > 0 {
		refetchTick := time.NewTicker(r.RefetchPeriod)
		defer refetchTick.Stop()
		refetchC = refetchTick.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-renderTick.C:
			r.renderNow(now)
		case <-refetchC:
			// A slow upstream must not stall the render tick.
			go func() {
				if err := r.refetch(ctx); err == nil {
					r.renderNow(time.Now())
				}
			}()
		}
	}
}

// refetch runs one fetch under a fresh generation number and stores the
// result only if no newer fetch has started in the meantime.
func (r *Refresher) refetch(ctx context.Context) error {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	snapshot, err := r.Fetch(ctx)
	if err != nil {
		return err
	}
	r.store(gen, snapshot)
	return nil
}

// store keeps the snapshot only if no newer fetch generation has started.
func (r *Refresher) store(gen uint64, snapshot any) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	r.snapshot = snapshot
	r.loaded = true
	return true
}

func (r *Refresher) renderNow(now time.Time) {
	r.mu.Lock()
	snapshot, loaded := r.snapshot, r.loaded
	r.mu.Unlock()
	if !loaded {
		return
	}
	r.renderMu.Lock()
	defer r.renderMu.Unlock()
	r.Render(snapshot, now)
}
