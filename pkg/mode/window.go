package mode

import (
	"context"
	"fmt"
	"time"

	"github.com/gammazero/workerpool"
)

// Result is the outcome for one position. OK is false when the window held
// no non-zero value.
type Result struct {
	Value int
	OK    bool
}

// Clip returns the half-open bounds [lo, hi) of the window centered on
// position i with half-width k, clipped to [0, n).
func Clip(i, k, n int) (lo, hi int) {
	lo = i - k
	if lo < 0 {
		lo = 0
	}
	hi = i + k + 1
	if hi > n {
		hi = n
	}
	return lo, hi
}

// Engine runs windowed mode sweeps over a series. Workers <= 1 selects the
// sequential path.
type Engine struct {
	Workers int
}

// Sweep computes the windowed mode for every position of s. Each position
// gets a fresh tracker over its clipped window, so results never depend on
// sweep order. On context cancellation the remaining positions are left
// absent and ctx.Err() is returned alongside the partial results.
func (e *Engine) Sweep(ctx context.Context, s *Series, k int) ([]Result, error) {
	results, _, err := e.sweep(ctx, s, k, false)
	return results, err
}

// SweepTimed is Sweep plus the per-position build latency in microseconds,
// indexed by position.
func (e *Engine) SweepTimed(ctx context.Context, s *Series, k int) ([]Result, []int, error) {
	return e.sweep(ctx, s, k, true)
}

func (e *Engine) sweep(ctx context.Context, s *Series, k int, timed bool) ([]Result, []int, error) {
	if k < 0 {
		return nil, nil, fmt.Errorf("%w: negative half-window %d", ErrInvalidInput, k)
	}

	n := s.Len()
	results := make([]Result, n)
	var latencies []int
	if timed {
		latencies = make([]int, n)
	}

	if e.Workers > 1 {
		err := e.sweepPooled(ctx, s, k, results, latencies)
		return results, latencies, err
	}

	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return results, latencies, err
		}
		start := time.Now()
		results[i] = sweepPosition(s, i, k)
		if timed {
			latencies[i] = int(time.Since(start).Microseconds())
		}
	}
	return results, latencies, nil
}

// sweepPooled distributes positions over a worker pool. Every task writes
// only its own index of results and latencies, so no locking is needed.
func (e *Engine) sweepPooled(ctx context.Context, s *Series, k int, results []Result, latencies []int) error {
	n := s.Len()
	workers := e.Workers
	if n < workers {
		workers = n
	}

	wp := workerpool.New(workers)
	for i := 0; i < n; i++ {
		i := i
		wp.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			start := time.Now()
			results[i] = sweepPosition(s, i, k)
			if latencies != nil {
				latencies[i] = int(time.Since(start).Microseconds())
			}
		})
	}
	wp.StopWait()
	return ctx.Err()
}

func sweepPosition(s *Series, i, k int) Result {
	lo, hi := Clip(i, k, s.Len())
	v, ok := Build(s.Values()[lo:hi]).Mode()
	return Result{Value: v, OK: ok}
}
