package strategy

import (
	"context"
	rand "math/rand/v2"
	"sync/atomic"

	"github.com/arloliu/vcut/types"
)

// RoundRobin implements cyclic edge assignment in arrival order.
type RoundRobin struct {
	globals types.Globals
	locker  edgeLocker
	metrics types.StrategyMetrics
	next    atomic.Uint64
}

var _ types.PartitionStrategy = (*RoundRobin)(nil)

// NewRoundRobin creates a new round-robin strategy.
//
// The strategy distributes edges evenly across partitions in arrival order.
// This provides perfect balance but ignores locality, so the replication
// factor approaches its worst case. Useful as a baseline.
//
// Parameters:
//   - globals: Partition count and backoff ceiling (lambda and epsilon are ignored)
//   - opts: Optional configuration
//
// Returns:
//   - *RoundRobin: Initialized round-robin strategy
//
// Example:
//
//	rr := strategy.NewRoundRobin(types.DefaultGlobals(4))
//	p, err := vcut.NewPartitioner(&cfg, rr)
func NewRoundRobin(globals types.Globals, opts ...Option) *RoundRobin {
	o := applyOptions(opts)

	return &RoundRobin{
		globals: globals,
		locker:  newEdgeLocker(globals.BackoffCeiling, o),
		metrics: o.metrics,
	}
}

// Assign places edge in the next partition of the cycle.
//
// Returns:
//   - error: types.ErrNoCandidates when P < 1, types.ErrLockContention or a context error
func (rr *RoundRobin) Assign(ctx context.Context, edge types.Edge, st types.PartitionState, rng *rand.Rand) error {
	if rr.globals.Partitions < 1 {
		return errNoPartitions(edge)
	}
	if err := checkPartitions(rr.globals.Partitions, st); err != nil {
		return err
	}

	u := st.Record(edge.U)
	v := st.Record(edge.V)
	if err := rr.locker.lock(ctx, edge, u, v, rng); err != nil {
		return err
	}
	defer rr.locker.unlock(edge, u, v)

	m := int((rr.next.Add(1) - 1) % uint64(rr.globals.Partitions))
	return commit(st, edge, u, v, m, rr.metrics)
}
