package types

import (
	"fmt"
	"math"
	"time"
)

// Globals holds the immutable parameters of a partitioning run.
//
// A Globals value is handed to a strategy once at construction and never
// changes for the life of the run.
type Globals struct {
	// Partitions is the number of target partitions (P). Must be >= 1.
	Partitions int `yaml:"partitions"`

	// Lambda weights the balance term of the HDRF score. Must be >= 0.
	Lambda float64 `yaml:"lambda"`

	// Epsilon smooths the balance term denominator so that equal min and
	// max loads never divide by zero. Must be > 0.
	Epsilon float64 `yaml:"epsilon"`

	// BackoffCeiling bounds the wait for the second vertex lock of an edge.
	// Once the next backoff delay would exceed it, the first lock is released
	// and the assignment restarts. Must be > 0.
	BackoffCeiling time.Duration `yaml:"backoffCeiling"`
}

// DefaultGlobals returns the parameters recommended by the HDRF authors for
// the given partition count.
func DefaultGlobals(partitions int) Globals {
	return Globals{
		Partitions:     partitions,
		Lambda:         1.0,
		Epsilon:        1.0,
		BackoffCeiling: 5 * time.Millisecond,
	}
}

// Validate checks the parameter ranges.
//
// Returns:
//   - error: ErrInvalidConfig wrapped with the offending field, or nil
func (g Globals) Validate() error {
	if g.Partitions < 1 {
		return fmt.Errorf("%w: partitions must be >= 1, got %d", ErrInvalidConfig, g.Partitions)
	}
	if math.IsNaN(g.Lambda) || math.IsInf(g.Lambda, 0) || g.Lambda < 0 {
		return fmt.Errorf("%w: lambda must be finite and >= 0, got %v", ErrInvalidConfig, g.Lambda)
	}
	if math.IsNaN(g.Epsilon) || math.IsInf(g.Epsilon, 0) || g.Epsilon <= 0 {
		return fmt.Errorf("%w: epsilon must be finite and > 0, got %v", ErrInvalidConfig, g.Epsilon)
	}
	if g.BackoffCeiling <= 0 {
		return fmt.Errorf("%w: backoff ceiling must be > 0, got %v", ErrInvalidConfig, g.BackoffCeiling)
	}

	return nil
}
