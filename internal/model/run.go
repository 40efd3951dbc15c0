package model

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"percolate/internal/core"
	"percolate/internal/lattice"
)

// Analyzer analyses one lattice. lattice.Analyze is the default.
type Analyzer func(*core.ByteGrid) (lattice.Trial, error)

// Option configures Run.
type Option func(*options)

type options struct {
	analyze  Analyzer
	progress func(done, total int)
}

// WithAnalyzer replaces the per-lattice analysis.
func WithAnalyzer(a Analyzer) Option {
	return func(o *options) {
		if a != nil {
			o.analyze = a
		}
	}
}

// WithProgress registers a callback invoked after every completed trial. It
// is called from worker goroutines and must be safe for concurrent use.
func WithProgress(fn func(done, total int)) Option {
	return func(o *options) {
		o.progress = fn
	}
}

// Run executes params.Trials independent trials on a pool of
// params.EffectiveWorkers() goroutines and reduces them once all have
// completed.
//
// Errors:
//   - ErrInvalidParams: params failed Validate; nothing was run.
//   - ErrTrialFailed: a trial returned an error or panicked; the run is aborted.
//   - ctx.Err(): ctx was cancelled before every trial completed.
func Run(ctx context.Context, params Params, opts ...Option) (Result, error) {
	if err := params.Validate(); err != nil {
		return Result{}, err
	}
	o := options{analyze: lattice.Analyze}
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	trials := make([]lattice.Trial, params.Trials)
	jobs := make(chan int)
	var done atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < params.Trials; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < params.EffectiveWorkers(); w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				trial, err := runTrial(params, i, o.analyze)
				if err != nil {
					return err
				}
				trials[i] = trial
				n := done.Add(1)
				if o.progress != nil {
					o.progress(int(n), params.Trials)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	if n := int(done.Load()); n != params.Trials {
		return Result{}, fmt.Errorf("%w: %d of %d trials completed", ErrTrialFailed, n, params.Trials)
	}

	res := Reduce(trials)
	res.Params = params
	res.Elapsed = time.Since(start)
	return res, nil
}

// runTrial draws and analyses the i-th lattice of a run.
func runTrial(params Params, i int, analyze Analyzer) (trial lattice.Trial, err error) {
	defer func() {
		if r := recover(); r != nil {
			trial = lattice.Trial{}
			err = fmt.Errorf("%w: trial %d: panic: %v", ErrTrialFailed, i, r)
		}
	}()
	rng := core.NewStream(params.Seed, uint64(i)).Source()
	g := lattice.Generate(rng, params.Size, params.P)
	trial, err = analyze(g)
	if err != nil {
		return lattice.Trial{}, fmt.Errorf("%w: trial %d: %w", ErrTrialFailed, i, err)
	}
	return trial, nil
}
