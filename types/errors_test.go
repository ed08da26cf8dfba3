package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSentinelErrors(t *testing.T) {
	t.Run("errors.Is works correctly", func(t *testing.T) {
		require.True(t, errors.Is(ErrInvalidScore, ErrInvalidScore))
		require.False(t, errors.Is(ErrInvalidScore, ErrNoCandidates))

		// Wrapped errors keep their identity
		wrapped := fmt.Errorf("%w: partition=3 fu=0", ErrInvalidScore)
		require.True(t, errors.Is(wrapped, ErrInvalidScore))
	})

	t.Run("all errors are distinct", func(t *testing.T) {
		allErrors := []error{
			// Partitioner errors
			ErrInvalidConfig,
			ErrStrategyRequired,
			ErrSourceRequired,
			ErrAlreadyRunning,
			ErrAssignmentFailed,
			// Strategy errors
			ErrInvalidScore,
			ErrNoCandidates,
			ErrLockContention,
			ErrPartitionOutOfRange,
			// Source errors
			ErrMalformedEdge,
			ErrSourceUnavailable,
		}

		for i, err1 := range allErrors {
			for j, err2 := range allErrors {
				if i == j {
					require.True(t, errors.Is(err1, err2), "error should equal itself: %v", err1)
				} else {
					require.False(t, errors.Is(err1, err2), "errors should be distinct: %v vs %v", err1, err2)
				}
			}
		}
	})
}

func TestIsFatal(t *testing.T) {
	t.Run("returns false for nil error", func(t *testing.T) {
		require.False(t, IsFatal(nil))
	})

	t.Run("returns true for broken invariants", func(t *testing.T) {
		require.True(t, IsFatal(ErrInvalidScore))
		require.True(t, IsFatal(ErrNoCandidates))
		require.True(t, IsFatal(fmt.Errorf("edge 1-2: %w", ErrPartitionOutOfRange)))
	})

	t.Run("returns false for transient errors", func(t *testing.T) {
		require.False(t, IsFatal(ErrLockContention))
		require.False(t, IsFatal(errors.New("some other error")))
	})
}
