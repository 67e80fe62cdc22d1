package tuple

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// chunkSize is the number of tuples each worker transforms per task.
const chunkSize = 1024

type batchOptions struct {
	workers int
}

// BatchOption configures Map.
type BatchOption func(*batchOptions)

// WithWorkers limits the number of concurrent workers used by Map.
// n <= 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		o.workers = n
	}
}

// Map applies fn to every tuple of in and returns the results in input order.
// Chunks are transformed in parallel. fn must be pure; tuples are values, so
// no synchronization is needed.
//
// The only error is ctx.Err() when the context is cancelled before all
// chunks have been scheduled.
func Map(ctx context.Context, in []Tuple, fn func(Tuple) Tuple, optFns ...BatchOption) ([]Tuple, error) {
	opts := batchOptions{}
	for _, o := range optFns {
		o(&opts)
	}
	if opts.workers <= 0 {
		opts.workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Tuple, len(in))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.workers)

	for start := 0; start < len(in); start += chunkSize {
		end := min(start+chunkSize, len(in))
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			for i := start; i < end; i++ {
				out[i] = fn(in[i])
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Sum folds ts with Add. An empty call returns the zero tuple.
func Sum(ts ...Tuple) Tuple {
	var sum Tuple
	for _, t := range ts {
		sum = sum.Add(t)
	}
	return sum
}
