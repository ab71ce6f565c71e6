package kdgo

import (
	"context"
	"time"

	"github.com/hupe1980/kdgo/internal/kdtree"
	"github.com/hupe1980/kdgo/model"
)

// Point is an ordered, fixed-length sequence of coordinates.
type Point = model.Point

// Neighbor is the answer to a nearest-neighbor query.
type Neighbor = model.Neighbor

// Index is an immutable nearest-neighbor index over a fixed-dimension point set.
//
// An Index holds no per-query state; all methods are safe for concurrent use.
type Index struct {
	tree        *kdtree.Tree
	concurrency int
	metrics     MetricsCollector
	logger      *Logger
}

// Build constructs an Index from points.
//
// Every point must have the same length D, taken from WithDimension or else
// from the first point. An empty points slice yields a valid empty Index.
// Points are copied; the caller may reuse them afterwards.
func Build(ctx context.Context, points []Point, optFns ...Option) (*Index, error) {
	o := applyOptions(optFns)
	if o.concurrency < 1 {
		return nil, ErrInvalidConcurrency
	}

	start := time.Now()
	tree, err := kdtree.Build(points, o.dimension)
	err = translateError(err)

	o.metricsCollector.RecordBuild(len(points), time.Since(start), err)
	if err != nil {
		o.logger.LogBuild(ctx, len(points), o.dimension, err)
		return nil, err
	}
	o.logger.LogBuild(ctx, tree.Len(), tree.Dimension(), nil)

	return &Index{
		tree:        tree,
		concurrency: o.concurrency,
		metrics:     o.metricsCollector,
		logger:      o.logger,
	}, nil
}

// Nearest returns the stored point closest to query by Euclidean distance.
//
// found is false when the index is empty or no point passes the filters; this
// is not an error. A query whose length differs from Dimension fails with
// *ErrDimensionMismatch.
func (ix *Index) Nearest(ctx context.Context, query Point, optFns ...SearchOption) (Neighbor, bool, error) {
	so := applySearchOptions(optFns)

	start := time.Now()
	n, stats, found, err := ix.tree.Nearest(query, so.filter())
	err = translateError(err)

	ix.metrics.RecordSearch(stats.Visited, time.Since(start), err)
	ix.logger.LogSearch(ctx, stats.Visited, found, err)

	return n, found, err
}

// Dimension returns D. It is 0 only for an index built from an empty set
// without WithDimension; such an index answers every query with found == false.
func (ix *Index) Dimension() int { return ix.tree.Dimension() }

// Len returns the number of indexed points.
func (ix *Index) Len() int { return ix.tree.Len() }

// Height returns the number of tree levels.
func (ix *Index) Height() int { return ix.tree.Height() }

// Levels returns copies of the indexed points grouped by tree depth, root first.
func (ix *Index) Levels() [][]Point { return ix.tree.Levels() }
