package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRunReturnsInitialFetchError(t *testing.T) {
	r := &Refresher{
		Fetch: func(ctx context.Context) (any, error) {
			return nil, errors.New("upstream down")
		},
		Render: func(any, time.Time) { t.Fatal("render must not run without data") },
	}
	if err := r.Run(context.Background()); err == nil {
		t.Fatal("expected the initial fetch error")
	}
}

func TestRunRendersOnTickAndStopsOnCancel(t *testing.T) {
	var mu sync.Mutex
	renders := 0

	ctx, cancel := context.WithCancel(context.Background())
	r := &Refresher{
		RenderPeriod: 5 * time.Millisecond,
		Fetch: func(ctx context.Context) (any, error) {
			return "snapshot", nil
		},
		Render: func(snapshot any, now time.Time) {
			mu.Lock()
			defer mu.Unlock()
			if snapshot != "snapshot" {
				t.Errorf("unexpected snapshot %v", snapshot)
			}
			renders++
			if renders >= 3 {
				cancel()
			}
		},
	}

	if err := r.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if renders < 3 {
		t.Fatalf("expected at least 3 renders, got %d", renders)
	}
}

func TestStaleFetchDoesNotOverwriteNewerState(t *testing.T) {
	r := &Refresher{
		Fetch:  func(ctx context.Context) (any, error) { return "new", nil },
		Render: func(any, time.Time) {},
	}

	// A fetch from generation 1 is still in flight when generation 2
	// completes; the late result must be dropped.
	r.mu.Lock()
	r.gen = 2
	r.mu.Unlock()

	if r.store(1, "stale") {
		t.Fatal("stale generation must not be stored")
	}
	if !r.store(2, "new") {
		t.Fatal("current generation must be stored")
	}

	r.mu.Lock()
	got := r.snapshot
	r.mu.Unlock()
	if got != "new" {
		t.Fatalf("snapshot = %v, want new", got)
	}
}
