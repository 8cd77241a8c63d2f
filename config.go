package parloop

import (
	"github.com/ygrebnov/errorc"

	"github.com/ygrebnov/parloop/metrics"
)

// config holds the per-call scheduling configuration.
// A config is assembled from options at the start of every call and is not
// retained afterwards.
type config struct {
	// parallelism is the available-parallelism reading used to clamp worker
	// counts. Injectable via WithParallelism so tests can pin it.
	// Default: runtime.GOMAXPROCS(0).
	parallelism int

	// maxWorkers is the hinted worker count.
	// Zero (default) means "use parallelism".
	maxWorkers int

	// force dispatches maxWorkers workers even beyond parallelism.
	// The small-workload sequential fallback still applies.
	force bool

	// batchSize fixes the sequence batch size.
	// Zero (default) derives it from the size hint.
	batchSize int

	// sizeHint is the known-or-estimated element count of a pull sequence.
	// Zero means unknown.
	sizeHint int

	// faults receives contained per-item failures.
	faults FaultHandler

	// metrics constructs the instruments recorded during a call.
	metrics metrics.Provider
}

// Option configures a single For/ForEach call.
// Options returning an error abort the call before any dispatch.
type Option func(*config) error

// WithParallelism overrides the available-parallelism reading (default
// runtime.GOMAXPROCS(0)). Intended for tests and for callers that partition
// CPU budget themselves.
func WithParallelism(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithParallelism requires n >= 1"))
		}
		cfg.parallelism = n
		return nil
	}
}

// WithMaxWorkers sets the hinted worker count. Without WithForceParallel the
// effective count never exceeds the available parallelism.
func WithMaxWorkers(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMaxWorkers requires n >= 1"))
		}
		cfg.maxWorkers = n
		return nil
	}
}

// WithForceParallel lifts the parallelism clamp on the hinted worker count.
// Workloads smaller than the worker count still run sequentially.
func WithForceParallel() Option {
	return func(cfg *config) error { cfg.force = true; return nil }
}

// WithBatchSize fixes the number of elements pulled per cursor lock
// acquisition in ForEachSeq, overriding the size-hint heuristic.
func WithBatchSize(n int) Option {
	return func(cfg *config) error {
		if n < 1 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithBatchSize requires n >= 1"))
		}
		cfg.batchSize = n
		return nil
	}
}

// WithSizeHint declares the known-or-estimated element count of a pull
// sequence. The hint sizes batches, clamps the worker count, and enables the
// small-workload sequential fallback for ForEachSeq.
func WithSizeHint(n int) Option {
	return func(cfg *config) error {
		if n < 0 {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithSizeHint requires n >= 0"))
		}
		cfg.sizeHint = n
		return nil
	}
}

// WithFaultHandler replaces the diagnostic sink receiving contained per-item
// failures (default: the standard logger).
func WithFaultHandler(h FaultHandler) Option {
	return func(cfg *config) error {
		if h == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithFaultHandler requires a non-nil handler"))
		}
		cfg.faults = h
		return nil
	}
}

// WithMetrics sets the metrics provider for the call (default: no-op).
func WithMetrics(p metrics.Provider) Option {
	return func(cfg *config) error {
		if p == nil {
			return errorc.With(ErrInvalidConfig, errorc.String("", "WithMetrics requires a non-nil provider"))
		}
		cfg.metrics = p
		return nil
	}
}

// newConfig assembles a config from defaults plus options.
func newConfig(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// effectiveWorkers resolves the worker count for one call: the hint when
// forced, otherwise the hint clamped to the available parallelism.
func (c *config) effectiveWorkers() int {
	hinted := c.maxWorkers
	if hinted == 0 {
		hinted = c.parallelism
	}
	if c.force {
		return hinted
	}
	return min(hinted, c.parallelism)
}

// batchSizeFor resolves the sequence batch size for the given worker count:
// an explicit WithBatchSize wins; otherwise aim for batchesPerWorker batches
// per worker based on the size hint, clamped to [minBatchSize, maxBatchSize];
// without a hint, defaultBatchSize.
func (c *config) batchSizeFor(workers int) int {
	if c.batchSize > 0 {
		return c.batchSize
	}
	if c.sizeHint <= 0 {
		return defaultBatchSize
	}
	size := c.sizeHint / (workers * batchesPerWorker)
	if size < minBatchSize {
		return minBatchSize
	}
	if size > maxBatchSize {
		return maxBatchSize
	}
	return size
}
