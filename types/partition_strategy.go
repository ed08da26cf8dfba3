package types

import (
	"context"
	rand "math/rand/v2"
)

// PartitionStrategy assigns one edge at a time against a shared partition state.
//
// Strategies implement different algorithms:
//   - HDRF: High-Degree Replicated First greedy scoring (recommended)
//   - Hash: Stateless hashing of the edge endpoints
//   - RoundRobin: Cyclic assignment by arrival order
//   - Custom: User-defined algorithms
//
// Strategy implementations should:
//   - Be safe for concurrent use by many workers sharing one PartitionState
//   - Hold only immutable configuration (all mutable state lives in PartitionState)
//   - Never leave partial mutations behind when returning an error
//   - Make their decision visible only through the mutated PartitionState
type PartitionStrategy interface {
	// Assign processes one edge to completion.
	//
	// Parameters:
	//   - ctx: Context for cancellation while waiting on contended vertices
	//   - edge: Edge to assign
	//   - state: Shared partition state mutated by the assignment
	//   - rng: The calling worker's private random source (nil uses the global source)
	//
	// Returns:
	//   - error: ErrInvalidScore, ErrNoCandidates, ErrLockContention or a context error
	Assign(ctx context.Context, edge Edge, state PartitionState, rng *rand.Rand) error
}
