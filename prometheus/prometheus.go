// Package prometheus exports kdgo operational metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, err := kdprom.New(reg, "kdgo")
//	idx, err := kdgo.Build(ctx, points, kdgo.WithMetricsCollector(mc))
package prometheus

import (
	"time"

	"github.com/hupe1980/kdgo"
	promclient "github.com/prometheus/client_golang/prometheus"
)

var _ kdgo.MetricsCollector = (*Collector)(nil)

// Collector implements kdgo.MetricsCollector on top of Prometheus metrics.
type Collector struct {
	builds        *promclient.CounterVec
	buildPoints   promclient.Counter
	buildLatency  promclient.Histogram
	searches      *promclient.CounterVec
	searchVisited promclient.Histogram
	searchLatency promclient.Histogram
	batchQueries  *promclient.CounterVec
}

// New creates a Collector and registers its metrics with reg under namespace.
func New(reg promclient.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		builds: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Index constructions by outcome",
		}, []string{"status"}),
		buildPoints: promclient.NewCounter(promclient.CounterOpts{
			Namespace: namespace,
			Name:      "build_points_total",
			Help:      "Points indexed by successful constructions",
		}),
		buildLatency: promclient.NewHistogram(promclient.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Latency of index construction",
			Buckets:   promclient.DefBuckets,
		}),
		searches: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Nearest-neighbor queries by outcome",
		}, []string{"status"}),
		searchVisited: promclient.NewHistogram(promclient.HistogramOpts{
			Namespace: namespace,
			Name:      "search_visited_nodes",
			Help:      "Tree nodes evaluated per query",
			Buckets:   promclient.ExponentialBuckets(1, 2, 16),
		}),
		searchLatency: promclient.NewHistogram(promclient.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "Latency of nearest-neighbor queries",
			Buckets:   promclient.ExponentialBuckets(1e-7, 4, 12),
		}),
		batchQueries: promclient.NewCounterVec(promclient.CounterOpts{
			Namespace: namespace,
			Name:      "batch_queries_total",
			Help:      "Queries answered through NearestBatch by outcome",
		}, []string{"status"}),
	}

	for _, m := range []promclient.Collector{
		c.builds, c.buildPoints, c.buildLatency,
		c.searches, c.searchVisited, c.searchLatency,
		c.batchQueries,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordBuild implements kdgo.MetricsCollector.
func (c *Collector) RecordBuild(points int, d time.Duration, err error) {
	c.builds.WithLabelValues(status(err)).Inc()
	c.buildLatency.Observe(d.Seconds())
	if err == nil {
		c.buildPoints.Add(float64(points))
	}
}

// RecordSearch implements kdgo.MetricsCollector.
func (c *Collector) RecordSearch(visited int, d time.Duration, err error) {
	c.searches.WithLabelValues(status(err)).Inc()
	c.searchLatency.Observe(d.Seconds())
	if err == nil {
		c.searchVisited.Observe(float64(visited))
	}
}

// RecordBatchSearch implements kdgo.MetricsCollector.
func (c *Collector) RecordBatchSearch(count, failed int, _ time.Duration) {
	c.batchQueries.WithLabelValues("success").Add(float64(count - failed))
	c.batchQueries.WithLabelValues("error").Add(float64(failed))
}
