package gostay

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// EvaluateBatch evaluates several keyed itineraries against the same
// target year concurrently. Every itinerary gets the same options. The
// first failing evaluation cancels the remaining ones and its error,
// prefixed with the itinerary key, is returned.
func (e *Engine) EvaluateBatch(ctx context.Context, itineraries map[string][]Stay, year int, opts ...EvaluateOption) (map[string]*Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	var mu sync.Mutex
	reports := make(map[string]*Report, len(itineraries))

	for key, stays := range itineraries {
		// Pre-1.22 loop variables are shared across iterations; copy them so
		// each goroutine sees its own itinerary.
		key, stays := key, stays
		g.Go(func() error {
			report, err := e.Evaluate(ctx, stays, year, opts...)
			if err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
			mu.Lock()
			reports[key] = report
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
