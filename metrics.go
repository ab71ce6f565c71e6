package kdgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// github.com/hupe1980/kdgo/prometheus ships a Prometheus implementation.
type MetricsCollector interface {
	// RecordBuild is called after each index construction.
	// points is the size of the input, err is nil if successful.
	RecordBuild(points int, duration time.Duration, err error)

	// RecordSearch is called after each nearest-neighbor query.
	// visited is the number of tree nodes whose distance was computed.
	RecordSearch(visited int, duration time.Duration, err error)

	// RecordBatchSearch is called after each NearestBatch call that ran to completion.
	// count is the number of queries, failed is the number that returned an error.
	RecordBatchSearch(count, failed int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordSearch(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordBatchSearch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	BuildCount        atomic.Int64
	BuildErrors       atomic.Int64
	BuildPoints       atomic.Int64
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchVisited     atomic.Int64
	SearchTotalNanos  atomic.Int64
	BatchSearchCount  atomic.Int64
	BatchSearchItems  atomic.Int64
	BatchSearchFailed atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(points int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	if err != nil {
		b.BuildErrors.Add(1)
		return
	}
	b.BuildPoints.Add(int64(points))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(visited int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	b.SearchVisited.Add(int64(visited))
	if err != nil {
		b.SearchErrors.Add(1)
	}
}

// RecordBatchSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatchSearch(count, failed int, duration time.Duration) {
	b.BatchSearchCount.Add(1)
	b.BatchSearchItems.Add(int64(count))
	b.BatchSearchFailed.Add(int64(failed))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:        b.BuildCount.Load(),
		BuildErrors:       b.BuildErrors.Load(),
		BuildPoints:       b.BuildPoints.Load(),
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchAvgNanos:    b.avgPerSearch(b.SearchTotalNanos.Load()),
		SearchAvgVisited:  b.avgPerSearch(b.SearchVisited.Load()),
		BatchSearchCount:  b.BatchSearchCount.Load(),
		BatchSearchItems:  b.BatchSearchItems.Load(),
		BatchSearchFailed: b.BatchSearchFailed.Load(),
	}
}

func (b *BasicMetricsCollector) avgPerSearch(total int64) int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount        int64
	BuildErrors       int64
	BuildPoints       int64
	SearchCount       int64
	SearchErrors      int64
	SearchAvgNanos    int64
	SearchAvgVisited  int64
	BatchSearchCount  int64
	BatchSearchItems  int64
	BatchSearchFailed int64
}
