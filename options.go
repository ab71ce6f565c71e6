package kdgo

import (
	"log/slog"
	"runtime"

	"github.com/RoaringBitmap/roaring/v2"
)

type options struct {
	dimension        int
	concurrency      int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures index construction.
type Option func(*options)

// WithDimension fixes the dimensionality D instead of inferring it from the
// first point. It is the only way to give an index built from an empty set a
// dimension; queries against such an index are then checked against D.
func WithDimension(dim int) Option {
	return func(o *options) {
		o.dimension = dim
	}
}

// WithConcurrency limits how many queries NearestBatch runs at once.
// Defaults to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kdgo.BasicMetricsCollector{}
//	idx, _ := kdgo.Build(ctx, points, kdgo.WithMetricsCollector(metrics))
//	// ... use idx ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg visited: %d\n", stats.SearchCount, stats.SearchAvgVisited)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kdgo.NewJSONLogger(slog.LevelInfo)
//	idx, _ := kdgo.Build(ctx, points, kdgo.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		concurrency:      runtime.GOMAXPROCS(0),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}

type searchOptions struct {
	filters []func(index int) bool
}

// SearchOption configures a single query.
type SearchOption func(*searchOptions)

// WithFilter restricts answers to the input indices set in allowed.
// A nil bitmap leaves the query unrestricted.
func WithFilter(allowed *roaring.Bitmap) SearchOption {
	return func(o *searchOptions) {
		if allowed == nil {
			return
		}
		o.filters = append(o.filters, func(index int) bool {
			return index >= 0 && uint64(index) <= uint64(^uint32(0)) && allowed.Contains(uint32(index))
		})
	}
}

// WithFilterFunc restricts answers to the input indices fn accepts.
// Multiple filters must all accept an index.
func WithFilterFunc(fn func(index int) bool) SearchOption {
	return func(o *searchOptions) {
		if fn != nil {
			o.filters = append(o.filters, fn)
		}
	}
}

func (o searchOptions) filter() func(index int) bool {
	switch len(o.filters) {
	case 0:
		return nil
	case 1:
		return o.filters[0]
	}
	filters := o.filters
	return func(index int) bool {
		for _, f := range filters {
			if !f(index) {
				return false
			}
		}
		return true
	}
}

func applySearchOptions(optFns []SearchOption) searchOptions {
	var o searchOptions
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
