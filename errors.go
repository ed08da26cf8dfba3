package vcut

import "github.com/arloliu/vcut/types"

// Sentinel errors re-exported from the types package.
var (
	ErrInvalidConfig       = types.ErrInvalidConfig
	ErrStrategyRequired    = types.ErrStrategyRequired
	ErrSourceRequired      = types.ErrSourceRequired
	ErrAlreadyRunning      = types.ErrAlreadyRunning
	ErrAssignmentFailed    = types.ErrAssignmentFailed
	ErrInvalidScore        = types.ErrInvalidScore
	ErrNoCandidates        = types.ErrNoCandidates
	ErrLockContention      = types.ErrLockContention
	ErrPartitionOutOfRange = types.ErrPartitionOutOfRange
	ErrMalformedEdge       = types.ErrMalformedEdge
	ErrSourceUnavailable   = types.ErrSourceUnavailable
)
