package strategy

import (
	"time"

	"github.com/arloliu/vcut/internal/backoff"
	"github.com/arloliu/vcut/internal/logger"
	"github.com/arloliu/vcut/internal/metrics"
	"github.com/arloliu/vcut/types"
)

// Option configures a strategy.
type Option func(*options)

type options struct {
	logger         types.Logger
	metrics        types.StrategyMetrics
	backoffBase    time.Duration
	maxLockRetries int
	hashSeed       uint64
}

func defaultOptions() options {
	return options{
		logger:      logger.NewNop(),
		metrics:     metrics.NewNop(),
		backoffBase: backoff.DefaultBase,
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}
	if o.metrics == nil {
		o.metrics = metrics.NewNop()
	}

	return o
}

// WithLogger sets the logger used to report lock restarts and broken invariants.
//
// Parameters:
//   - l: Logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(l types.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics sets the metrics sink.
//
// Parameters:
//   - m: StrategyMetrics implementation (a full types.MetricsCollector also fits)
//
// Returns:
//   - Option: Configuration option
func WithMetrics(m types.StrategyMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithBackoffBase sets the first polling delay of a contended vertex lock.
//
// The delay doubles on each failed poll (default: 2µs).
//
// Parameters:
//   - d: Initial delay
//
// Returns:
//   - Option: Configuration option
func WithBackoffBase(d time.Duration) Option {
	return func(o *options) {
		o.backoffBase = d
	}
}

// WithMaxLockRetries bounds how many times an assignment restarts after the
// second vertex lock hits the backoff ceiling.
//
// Exceeding the bound makes Assign return types.ErrLockContention.
// Zero (the default) means unlimited restarts.
//
// Parameters:
//   - n: Maximum restarts per edge
//
// Returns:
//   - Option: Configuration option
func WithMaxLockRetries(n int) Option {
	return func(o *options) {
		o.maxLockRetries = n
	}
}

// WithHashSeed sets the xxh3 seed of the hashing strategies (Hash, DBH).
//
// Parameters:
//   - seed: Hash seed value
//
// Returns:
//   - Option: Configuration option
func WithHashSeed(seed uint64) Option {
	return func(o *options) {
		o.hashSeed = seed
	}
}
