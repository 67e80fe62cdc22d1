package projectile

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Sweep simulates every launch in env concurrently and returns the results
// in launch order.
//
// A failing run does not stop the others; the returned error joins every
// run's error, each annotated with its index. Cancelling ctx stops all runs.
func Sweep(ctx context.Context, env Environment, launches []Projectile, optFns ...Option) ([]Result, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	results := make([]Result, len(launches))
	errs := make([]error, len(launches))

	var g errgroup.Group
	g.SetLimit(opts.concurrency)

	for i, p := range launches {
		g.Go(func() error {
			runOpts := opts
			runOpts.logger = opts.logger.WithRun(i)
			results[i], errs[i] = simulate(ctx, env, p, &runOpts)
			if errs[i] != nil {
				errs[i] = fmt.Errorf("run %d: %w", i, errs[i])
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, err := range errs {
		if err != nil {
			failed++
		}
	}
	opts.logger.LogSweep(ctx, len(launches), failed)

	return results, errors.Join(errs...)
}
