// Package kdgo provides an exact nearest-neighbor index for fixed-dimension points.
//
// kdgo builds a balanced k-d tree once from a point set and answers "which stored
// point is closest to Q" under Euclidean distance. The index is immutable after
// construction and safe for any number of concurrent queries: each query carries
// its own search state, so no result ever depends on an earlier query.
//
// # Quick Start
//
//	ctx := context.Background()
//	idx, err := kdgo.Build(ctx, []kdgo.Point{{2, 3}, {4, 7}, {5, 4}, {7, 4}, {8, 7}, {9, 1}})
//	if err != nil {
//	    return err
//	}
//
//	n, found, err := idx.Nearest(ctx, kdgo.Point{3, 4.5})
//	if err != nil {
//	    return err // e.g. *kdgo.ErrDimensionMismatch
//	}
//	if found {
//	    fmt.Println(n.Point, n.Index, n.Distance) // [2 3] 0 1.8027...
//	}
//
// An index built from an empty set is valid; every query against it reports
// found == false.
//
// # Fluent Builder
//
//	idx, err := kdgo.NewBuilder().
//	    Dimension(768).                  // required when the set may be empty
//	    Logger(kdgo.NewJSONLogger(slog.LevelInfo)).
//	    Metrics(&kdgo.BasicMetricsCollector{}).
//	    Concurrency(8).                  // NearestBatch fan-out
//	    Build(ctx, embeddings)
//
// # Filtering
//
// Restrict answers to a subset of the input, addressed by input index:
//
//	allowed := roaring.BitmapOf(0, 4, 5)
//	n, found, err := idx.Nearest(ctx, q, kdgo.WithFilter(allowed))
//
// # Batches
//
// NearestBatch answers many queries concurrently over the shared read-only tree:
//
//	results, err := idx.NearestBatch(ctx, queries)
//
// # Complexity
//
// Construction is O(n log² n) with a stable sort per level. A query is O(log n)
// expected for well-spread data and O(n) in the worst case.
package kdgo
