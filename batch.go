package kdgo

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome of one query of a batch.
type BatchResult struct {
	Neighbor Neighbor
	Found    bool
	Err      error
}

// NearestBatch answers queries concurrently, at most WithConcurrency at a time.
//
// results[i] belongs to queries[i]. A failing query records its error in its
// own BatchResult and does not affect the others. The call returns an error
// only when ctx is done before the batch completes.
func (ix *Index) NearestBatch(ctx context.Context, queries []Point, optFns ...SearchOption) ([]BatchResult, error) {
	start := time.Now()
	results := make([]BatchResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(ix.concurrency)

	for i, q := range queries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			n, found, err := ix.Nearest(gctx, q, optFns...)
			results[i] = BatchResult{Neighbor: n, Found: found, Err: err}
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		ix.logger.LogBatchSearch(ctx, len(queries), 0, err)
		return nil, err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	ix.metrics.RecordBatchSearch(len(queries), failed, time.Since(start))
	ix.logger.LogBatchSearch(ctx, len(queries), failed, nil)

	return results, nil
}
