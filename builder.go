package kdgo

import (
	"context"
	"log/slog"
)

// Builder is an immutable fluent builder for constructing an Index.
// Each method returns a new builder with the updated configuration.
//
// Example:
//
//	idx, err := kdgo.NewBuilder().
//	    Dimension(3).
//	    Logger(kdgo.NewTextLogger(slog.LevelDebug)).
//	    Concurrency(4).
//	    Build(ctx, points)
type Builder struct {
	dimension   int
	concurrency int
	logger      *Logger
	metrics     MetricsCollector
}

// NewBuilder returns a Builder with default settings.
func NewBuilder() Builder {
	return Builder{}
}

// Dimension fixes the dimensionality D. See WithDimension.
func (b Builder) Dimension(dim int) Builder {
	b.dimension = dim
	return b
}

// Concurrency sets the NearestBatch fan-out limit. See WithConcurrency.
func (b Builder) Concurrency(n int) Builder {
	b.concurrency = n
	return b
}

// Logger sets the structured logger.
func (b Builder) Logger(l *Logger) Builder {
	b.logger = l
	return b
}

// LogLevel sets a text logger at level.
func (b Builder) LogLevel(level slog.Level) Builder {
	b.logger = NewTextLogger(level)
	return b
}

// Metrics sets the metrics collector.
func (b Builder) Metrics(mc MetricsCollector) Builder {
	b.metrics = mc
	return b
}

// Build constructs the Index from points.
func (b Builder) Build(ctx context.Context, points []Point) (*Index, error) {
	return Build(ctx, points, b.options()...)
}

func (b Builder) options() []Option {
	opts := []Option{WithDimension(b.dimension)}
	if b.concurrency != 0 {
		opts = append(opts, WithConcurrency(b.concurrency))
	}
	if b.logger != nil {
		opts = append(opts, WithLogger(b.logger))
	}
	if b.metrics != nil {
		opts = append(opts, WithMetricsCollector(b.metrics))
	}
	return opts
}
