package types

import (
	"context"
	"time"
)

// Hooks defines callbacks for Partitioner run events.
//
// All hooks are optional. They run synchronously on the goroutine that
// raised the event: OnRunStarted and OnRunCompleted on the caller of Run,
// OnEdgeFailed on the worker that assigned the edge, concurrently with other
// workers. Hook errors are logged and never change the outcome of the run.
//
// Best practices for hook implementation:
//   - Complete quickly; a slow OnEdgeFailed stalls its worker
//   - Respect context cancellation
//   - Be safe for concurrent use
//
// Example:
//
//	hooks := &vcut.Hooks{
//	    OnRunCompleted: func(ctx context.Context, run vcut.RunSummary) error {
//	        fmt.Printf("assigned %d edges in %s\n", run.Edges, run.Duration)
//	        return nil
//	    },
//	}
type Hooks struct {
	// OnRunStarted is called before the first edge of a run is read.
	OnRunStarted func(ctx context.Context) error

	// OnEdgeFailed is called for every failed edge, before the error handler
	// decides whether to skip it.
	OnEdgeFailed func(ctx context.Context, edge Edge, err error) error

	// OnRunCompleted is called when a run ends, successfully or not.
	OnRunCompleted func(ctx context.Context, run RunSummary) error
}

// RunSummary describes one finished Partitioner run.
type RunSummary struct {
	// Edges is the number of edges assigned during the run.
	Edges int64
	// Skipped is the number of edges skipped during the run.
	Skipped int64
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err is the error that stopped the run, nil on success.
	Err error
}
