package types

import "errors"

// Sentinel errors for the vcut library.
//
// These errors provide type-safe error checking using errors.Is() and errors.As().
// All components should use these sentinel errors for known error conditions
// and wrap them with context using fmt.Errorf("%w: detail", err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (Partitioner, Strategy, Source)
//   - Use consistent messages across similar error types

// Partitioner errors - Public API errors returned by the Partitioner.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStrategyRequired is returned when the partition strategy is nil.
	ErrStrategyRequired = errors.New("partition strategy is required")

	// ErrSourceRequired is returned when the edge source is nil.
	ErrSourceRequired = errors.New("edge source is required")

	// ErrAlreadyRunning is returned when Run is called while a run is in progress.
	ErrAlreadyRunning = errors.New("partitioner already running")

	// ErrAssignmentFailed is returned when an edge could not be assigned and
	// the error handler chose to abort the run.
	ErrAssignmentFailed = errors.New("edge assignment failed")
)

// Strategy errors - Broken invariants and contention signals from strategies.
var (
	// ErrInvalidScore is returned when a computed partition score is negative.
	// It indicates a configuration or arithmetic error (e.g. lambda < 0) and is
	// not retryable for the same edge.
	ErrInvalidScore = errors.New("invalid partition score")

	// ErrNoCandidates is returned when no partition attained the maximum score.
	// It indicates P < 1 or a logic error and is not retryable.
	ErrNoCandidates = errors.New("no candidate partition")

	// ErrLockContention is returned when the vertex locks of an edge could not
	// be obtained within the configured number of restarts. It is transient:
	// the edge may be submitted again.
	ErrLockContention = errors.New("vertex lock contention")

	// ErrPartitionOutOfRange is returned when a strategy selects a partition
	// outside [0, P).
	ErrPartitionOutOfRange = errors.New("partition out of range")
)

// Source errors - Errors reported by edge sources.
var (
	// ErrMalformedEdge is returned when an edge cannot be decoded from its input.
	ErrMalformedEdge = errors.New("malformed edge")

	// ErrSourceUnavailable is returned when a networked source lost its server.
	ErrSourceUnavailable = errors.New("edge source unavailable")
)

// IsFatal reports whether err represents a broken algorithm invariant that
// makes the whole run suspect.
//
// Parameters:
//   - err: The error to check
//
// Returns:
//   - bool: true for ErrInvalidScore, ErrNoCandidates and ErrPartitionOutOfRange
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	return errors.Is(err, ErrInvalidScore) ||
		errors.Is(err, ErrNoCandidates) ||
		errors.Is(err, ErrPartitionOutOfRange)
}
