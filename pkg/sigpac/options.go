package sigpac

import (
	"io"
	"log/slog"
	"runtime"
)

// DefaultCRS is the reference system of registry responses that carry none.
const DefaultCRS = "epsg:4258"

// AggregateOptions configures an Aggregator.
type AggregateOptions struct {
	// Precision is the number of decimals kept in land-use areas.
	// Zero means the default of 4. The total surface is never rounded.
	Precision int

	// DefaultCRS names the coordinate reference system when the registry
	// response does not.
	DefaultCRS string

	// Logger receives aggregation summaries. Nil uses slog.Default().
	Logger *slog.Logger
}

// DefaultAggregateOptions returns default options.
func DefaultAggregateOptions() AggregateOptions {
	return AggregateOptions{
		Precision:  4,
		DefaultCRS: DefaultCRS,
		Logger:     nil,
	}
}

// BatchOptions controls AggregateParallel.
type BatchOptions struct {
	// Parallel enables concurrent aggregation.
	Parallel bool

	// Workers is the number of concurrent aggregations.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// SkipErrors continues past payloads that fail to aggregate; their
	// errors are collected. When false, the first error stops the batch.
	SkipErrors bool

	// Progress is called after each payload with the number processed so far.
	Progress func(done, total int)

	// ErrorLog receives one line per failed payload.
	ErrorLog io.Writer
}

// DefaultBatchOptions returns batch options with sensible defaults.
func DefaultBatchOptions() BatchOptions {
	return BatchOptions{
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}
