package cvoutline

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchResult pairs a processed document with its failure, if any. A failed
// document does not stop the batch.
type BatchResult struct {
	Source string
	Result *Result
	Err    error
}

// BatchOption configures ProcessAll.
type BatchOption func(*batchOptions)

type batchOptions struct {
	workers int
}

// WithWorkers bounds the number of documents processed at once. Values
// below 1 use GOMAXPROCS.
func WithWorkers(n int) BatchOption {
	return func(o *batchOptions) {
		o.workers = n
	}
}

// ProcessAll runs Result on every processor with bounded parallelism and
// returns the results in input order. Each processor is handled by exactly
// one worker. Cancelling ctx stops new documents from starting; the
// returned error is then ctx.Err() and unstarted entries carry it too.
//
// Example:
//
//	procs := []*cvoutline.Processor{cvoutline.Open("a.json"), cvoutline.Open("b.json")}
//	results, err := cvoutline.ProcessAll(ctx, procs, cvoutline.WithWorkers(4))
func ProcessAll(ctx context.Context, procs []*Processor, opts ...BatchOption) ([]BatchResult, error) {
	o := batchOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	results := make([]BatchResult, len(procs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, p := range procs {
		results[i].Source = p.Source()

		if err := gctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			res, err := p.Result()
			results[i].Result = res
			results[i].Err = err
			return nil
		})
	}

	_ = g.Wait()
	return results, ctx.Err()
}
