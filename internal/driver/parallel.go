package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ManyResult is the outcome of analysing one log in AnalyzeMany.
type ManyResult struct {
	Path     string
	Analysis *Analysis
	Err      error
}

// AnalyzeMany analyses independent logs with at most jobs workers (0 = auto).
// Results are in argument order. A failing log is recorded in its result and
// does not stop the others; only cancellation of ctx aborts the batch.
func AnalyzeMany(ctx context.Context, paths []string, opts Options, jobs int) ([]ManyResult, error) {
	results := make([]ManyResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// each index is written by exactly one goroutine
			a, err := Analyze(gctx, path, opts)
			results[i] = ManyResult{Path: path, Analysis: a, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
