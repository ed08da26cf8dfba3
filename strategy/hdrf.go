package strategy

import (
	"context"
	"fmt"
	"math"
	rand "math/rand/v2"

	"github.com/arloliu/vcut/types"
)

// HDRF implements High-Degree Replicated First vertex-cut partitioning.
//
// See Petroni et al., "HDRF: Stream-Based Partitioning for Power-Law Graphs"
// (CIKM 2015). For an edge (u, v) every partition m is scored as
//
//	score(m) = g(u, m) + g(v, m) + lambda * bal(m)
//	g(x, m)  = 1 + (1 - deg(x)/(deg(u)+deg(v)))  if x has a replica in m, else 0
//	bal(m)   = max(0, (maxLoad - load(m)) / (epsilon + maxLoad - minLoad))
//
// with degrees counted including the current edge. The replica terms favour
// partitions that already hold the lower-degree endpoint, so high-degree
// vertices are the ones that get replicated. Ties are broken uniformly at
// random with the caller's generator.
//
// HDRF holds only immutable configuration and is safe for concurrent use.
type HDRF struct {
	globals types.Globals
	locker  edgeLocker
	logger  types.Logger
	metrics types.StrategyMetrics
}

var _ types.PartitionStrategy = (*HDRF)(nil)

// NewHDRF creates a new HDRF strategy.
//
// The globals are not validated here so that callers can exercise the
// invariant checks of Assign; the Partitioner validates them before a run.
//
// Parameters:
//   - globals: Partition count, lambda, epsilon and backoff ceiling
//   - opts: Optional configuration (WithLogger, WithMetrics, WithBackoffBase, WithMaxLockRetries)
//
// Returns:
//   - *HDRF: Initialized strategy
//
// Example:
//
//	hdrf := strategy.NewHDRF(types.DefaultGlobals(8),
//	    strategy.WithMaxLockRetries(100),
//	)
//	err := hdrf.Assign(ctx, types.NewEdge(1, 2), state.NewCoordinated(8), rng)
func NewHDRF(globals types.Globals, opts ...Option) *HDRF {
	o := applyOptions(opts)

	return &HDRF{
		globals: globals,
		locker:  newEdgeLocker(globals.BackoffCeiling, o),
		logger:  o.logger,
		metrics: o.metrics,
	}
}

// Globals returns the strategy parameters.
func (h *HDRF) Globals() types.Globals {
	return h.globals
}

// Assign places edge in the highest-scoring partition.
//
// The algorithm:
//  1. Lock u, then v (a self-loop locks its single record once)
//  2. Snapshot min and max edge load
//  3. Score every partition and collect all partitions tied at the maximum
//  4. Pick one candidate uniformly at random
//  5. Add missing replicas (and vertex loads), assign the edge, bump degrees
//  6. Release the locks
//
// Nothing is mutated before both locks are held, so a restart of the lock
// protocol or an error leaves the state untouched.
//
// Parameters:
//   - ctx: Context for cancellation while waiting on contended vertices
//   - edge: Edge to assign
//   - st: Shared partition state
//   - rng: The worker's random source (nil uses the global source)
//
// Returns:
//   - error: types.ErrInvalidScore, types.ErrNoCandidates, types.ErrLockContention,
//     types.ErrInvalidConfig or a context error
func (h *HDRF) Assign(ctx context.Context, edge types.Edge, st types.PartitionState, rng *rand.Rand) error {
	if err := checkPartitions(h.globals.Partitions, st); err != nil {
		return err
	}

	u := st.Record(edge.U)
	v := st.Record(edge.V)

	if err := h.locker.lock(ctx, edge, u, v, rng); err != nil {
		return err
	}
	defer h.locker.unlock(edge, u, v)

	candidates, err := h.candidates(edge, u, v, st, st.MinLoad(), st.MaxLoad())
	if err != nil {
		return err
	}
	h.metrics.RecordCandidates(len(candidates))

	m := candidates[intN(rng, len(candidates))]
	return commit(st, edge, u, v, m, h.metrics)
}

// candidates returns every partition attaining the maximum score.
func (h *HDRF) candidates(
	edge types.Edge,
	u, v types.VertexRecord,
	st types.PartitionState,
	minLoad, maxLoad int64,
) ([]int, error) {
	degU := float64(u.Degree() + 1)
	degV := float64(v.Degree() + 1)
	sum := degU + degV
	spread := h.globals.Epsilon + float64(maxLoad-minLoad)

	maxScore := 0.0
	candidates := make([]int, 0, 4)

	for m := range h.globals.Partitions {
		fu := 0.0
		if u.HasReplicaInPartition(m) {
			fu = 1 + (1 - degU/sum)
		}
		fv := 0.0
		if v.HasReplicaInPartition(m) {
			fv = 1 + (1 - degV/sum)
		}

		// loads read outside the locks may be newer than maxLoad
		bal := float64(maxLoad-st.MachineLoad(m)) / spread
		if bal < 0 {
			bal = 0
		}

		score := fu + fv + h.globals.Lambda*bal
		if score < 0 || math.IsNaN(score) {
			h.logger.Error("negative partition score",
				"edge", edge, "partition", m, "fu", fu, "fv", fv,
				"lambda", h.globals.Lambda, "bal", bal)

			return nil, fmt.Errorf("%w: edge %s partition %d: score=%v fu=%v fv=%v lambda=%v bal=%v",
				types.ErrInvalidScore, edge, m, score, fu, fv, h.globals.Lambda, bal)
		}

		switch {
		case score > maxScore:
			maxScore = score
			candidates = append(candidates[:0], m)
		case score == maxScore:
			candidates = append(candidates, m)
		}
	}

	if len(candidates) == 0 {
		h.logger.Error("no candidate partition", "edge", edge, "partitions", h.globals.Partitions, "max_score", maxScore)

		return nil, fmt.Errorf("%w: edge %s over %d partitions (max score %v)",
			types.ErrNoCandidates, edge, h.globals.Partitions, maxScore)
	}

	return candidates, nil
}
