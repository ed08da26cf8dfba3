package vcut

import (
	"context"
	"errors"
)

// Option configures a Partitioner with optional dependencies.
type Option func(*partitionerOptions)

// partitionerOptions holds optional Partitioner configuration.
type partitionerOptions struct {
	metrics      MetricsCollector
	logger       Logger
	errorHandler ErrorHandler
	hooks        *Hooks
}

// ErrorHandler decides what happens to an edge that failed.
//
// It is called from the worker that processed the edge, concurrently with
// other workers. Returning nil skips the edge and the run continues;
// returning an error aborts the run with that error wrapped in
// ErrAssignmentFailed. For undecodable source input the edge is the zero
// value and err wraps ErrMalformedEdge.
type ErrorHandler func(ctx context.Context, edge Edge, err error) error

// AbortOnError is the default ErrorHandler: every failed edge aborts the run.
func AbortOnError(_ context.Context, _ Edge, err error) error {
	return err
}

// SkipTransient skips edges that failed on lock contention or malformed
// input and aborts on everything else, in particular on broken scoring
// invariants.
func SkipTransient(_ context.Context, _ Edge, err error) error {
	if errors.Is(err, ErrLockContention) || errors.Is(err, ErrMalformedEdge) {
		return nil
	}

	return err
}

// WithMetrics sets a metrics collector.
//
// The collector is also handed to the strategy when it is built with NewStrategy.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	collector := vcut.NewPrometheusMetrics(prometheus.DefaultRegisterer)
//	p, err := vcut.NewPartitioner(&cfg, hdrf, vcut.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *partitionerOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation taking a message plus key/value pairs
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	p, err := vcut.NewPartitioner(&cfg, hdrf, vcut.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *partitionerOptions) {
		o.logger = logger
	}
}

// WithErrorHandler sets the handler deciding between skipping a failed edge
// and aborting the run (default: AbortOnError).
//
// Parameters:
//   - handler: ErrorHandler implementation
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	p, err := vcut.NewPartitioner(&cfg, hdrf, vcut.WithErrorHandler(vcut.SkipTransient))
func WithErrorHandler(handler ErrorHandler) Option {
	return func(o *partitionerOptions) {
		o.errorHandler = handler
	}
}

// WithHooks sets run event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for NewPartitioner
//
// Example:
//
//	hooks := &vcut.Hooks{
//	    OnEdgeFailed: func(ctx context.Context, e vcut.Edge, err error) error {
//	        failed.Add(1)
//	        return nil
//	    },
//	}
//	p, err := vcut.NewPartitioner(&cfg, hdrf, vcut.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *partitionerOptions) {
		o.hooks = hooks
	}
}
