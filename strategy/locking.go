package strategy

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"time"

	"github.com/arloliu/vcut/internal/backoff"
	"github.com/arloliu/vcut/types"
)

// growth is the backoff multiplier between two polls of a contended lock.
const growth = 2.0

// edgeLocker implements the per-vertex locking protocol shared by all strategies.
//
// Locks are taken in edge orientation (u, then v). Each acquisition polls
// TryAcquireLock with exponentially growing, jittered sleeps. The wait for u
// never gives up (its sleeps are clamped to the ceiling); the wait for v gives
// up once the next delay would exceed the ceiling, releases u, pauses for a
// random fraction of the ceiling and restarts the whole acquisition.
type edgeLocker struct {
	base       time.Duration
	ceiling    time.Duration
	maxRetries int
	metrics    types.StrategyMetrics
	logger     types.Logger
}

func newEdgeLocker(ceiling time.Duration, o options) edgeLocker {
	return edgeLocker{
		base:       o.backoffBase,
		ceiling:    ceiling,
		maxRetries: o.maxLockRetries,
		metrics:    o.metrics,
		logger:     o.logger,
	}
}

// lock acquires both endpoint records of edge (a single one for self-loops).
//
// On error no lock is held.
func (l edgeLocker) lock(ctx context.Context, edge types.Edge, u, v types.VertexRecord, rng *rand.Rand) error {
	for restarts := 0; ; restarts++ {
		if l.maxRetries > 0 && restarts > l.maxRetries {
			return fmt.Errorf("%w: edge %s gave up after %d restarts", types.ErrLockContention, edge, l.maxRetries)
		}

		if _, err := l.acquire(ctx, u, rng, false); err != nil {
			return err
		}
		if edge.IsSelfLoop() {
			return nil
		}

		acquired, err := l.acquire(ctx, v, rng, true)
		if err != nil {
			u.ReleaseLock()

			return err
		}
		if acquired {
			return nil
		}

		u.ReleaseLock()
		l.metrics.RecordLockRestart()
		l.logger.Debug("vertex lock wait hit backoff ceiling, restarting", "edge", edge, "restarts", restarts+1)

		if err := backoff.Sleep(ctx, restartPause(l.ceiling, rng)); err != nil {
			return err
		}
	}
}

// unlock releases the locks taken by lock.
func (l edgeLocker) unlock(edge types.Edge, u, v types.VertexRecord) {
	if !edge.IsSelfLoop() {
		v.ReleaseLock()
	}
	u.ReleaseLock()
}

// acquire polls r until its lock is taken.
//
// When bounded is true it returns false (without error) as soon as the backoff
// sequence passes the ceiling.
func (l edgeLocker) acquire(ctx context.Context, r types.VertexRecord, rng *rand.Rand, bounded bool) (bool, error) {
	if r.TryAcquireLock() {
		return true, nil
	}

	seq := backoff.NewExponential(l.base, l.ceiling, growth, rng)
	for {
		d, ok := seq.Next()
		if !ok && bounded {
			return false, nil
		}

		l.metrics.RecordLockBackoff(d.Seconds())
		if err := backoff.Sleep(ctx, d); err != nil {
			return false, err
		}
		if r.TryAcquireLock() {
			return true, nil
		}
	}
}

// restartPause returns a uniformly random pause in [0, ceiling).
//
//nolint:gosec // non-crypto backoff jitter
func restartPause(ceiling time.Duration, rng *rand.Rand) time.Duration {
	if ceiling <= 0 {
		return 0
	}
	if rng != nil {
		return time.Duration(rng.Int64N(int64(ceiling)))
	}

	return time.Duration(rand.Int64N(int64(ceiling)))
}

// commit applies an assignment decision: replicas for both endpoints (with
// vertex-load bookkeeping when the state supports it), the edge load and the
// endpoint degrees. Both endpoint locks must be held. Nothing is mutated when
// m is outside the state's partitions.
func commit(st types.PartitionState, edge types.Edge, u, v types.VertexRecord, m int, sink types.StrategyMetrics) error {
	if m < 0 || m >= st.NumPartitions() {
		return fmt.Errorf("%w: edge %s partition=%d partitions=%d",
			types.ErrPartitionOutOfRange, edge, m, st.NumPartitions())
	}

	tracker := st.VertexLoads()

	addReplica(u, m, tracker, sink)
	if !edge.IsSelfLoop() {
		addReplica(v, m, tracker, sink)
	}

	st.IncrementMachineLoad(m, edge)
	sink.RecordEdgeAssigned(m)

	u.IncrementDegree()
	if !edge.IsSelfLoop() {
		v.IncrementDegree()
	}

	return nil
}

func addReplica(r types.VertexRecord, m int, tracker types.VertexLoadTracker, sink types.StrategyMetrics) {
	if r.HasReplicaInPartition(m) {
		return
	}
	if !r.AddPartition(m) {
		return
	}
	if tracker != nil {
		tracker.IncrementMachineLoadVertices(m)
	}
	sink.RecordReplicaCreated(m)
}

// checkPartitions verifies that st can hold the configured partition count.
func checkPartitions(configured int, st types.PartitionState) error {
	if st.NumPartitions() < configured {
		return fmt.Errorf("%w: strategy configured for %d partitions, state holds %d",
			types.ErrInvalidConfig, configured, st.NumPartitions())
	}

	return nil
}

// intN draws from rng, or from the package-level generator when rng is nil.
//
//nolint:gosec // tie-breaking does not need crypto randomness
func intN(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.IntN(n)
	}

	return rand.IntN(n)
}
