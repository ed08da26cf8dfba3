package strategy

import (
	"context"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"

	"github.com/zeebo/xxh3"

	"github.com/arloliu/vcut/types"
)

// Hash implements edge hashing: the partition is a hash of both endpoints.
//
// The hash is orientation independent, so (u, v) and (v, u) land in the same
// partition.
type Hash struct {
	globals types.Globals
	locker  edgeLocker
	metrics types.StrategyMetrics
	seed    uint64
}

var _ types.PartitionStrategy = (*Hash)(nil)

// NewHash creates a new edge hashing strategy.
//
// Parameters:
//   - globals: Partition count and backoff ceiling (lambda and epsilon are ignored)
//   - opts: Optional configuration (WithHashSeed, WithLogger, WithMetrics, ...)
//
// Returns:
//   - *Hash: Initialized hashing strategy
func NewHash(globals types.Globals, opts ...Option) *Hash {
	o := applyOptions(opts)

	return &Hash{
		globals: globals,
		locker:  newEdgeLocker(globals.BackoffCeiling, o),
		metrics: o.metrics,
		seed:    o.hashSeed,
	}
}

// Partition returns the partition edge hashes to, or -1 when P < 1.
func (h *Hash) Partition(edge types.Edge) int {
	if h.globals.Partitions < 1 {
		return -1
	}

	lo, hi := edge.U, edge.V
	if lo > hi {
		lo, hi = hi, lo
	}

	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(lo))
	binary.LittleEndian.PutUint64(buf[8:], uint64(hi))

	return int(hashBytes(buf[:], h.seed) % uint64(h.globals.Partitions))
}

// Assign places edge in its hash partition.
//
// Returns:
//   - error: types.ErrNoCandidates when P < 1, types.ErrLockContention or a context error
func (h *Hash) Assign(ctx context.Context, edge types.Edge, st types.PartitionState, rng *rand.Rand) error {
	if h.globals.Partitions < 1 {
		return errNoPartitions(edge)
	}
	if err := checkPartitions(h.globals.Partitions, st); err != nil {
		return err
	}

	u := st.Record(edge.U)
	v := st.Record(edge.V)
	if err := h.locker.lock(ctx, edge, u, v, rng); err != nil {
		return err
	}
	defer h.locker.unlock(edge, u, v)

	return commit(st, edge, u, v, h.Partition(edge), h.metrics)
}

// DBH implements Degree-Based Hashing.
//
// The edge goes to the hash partition of its endpoint with the lower partial
// degree (ties use u), so low-degree vertices stay whole and high-degree
// vertices absorb the replication. See Xie et al., "Distributed Power-law
// Graph Computing" (NIPS 2014).
type DBH struct {
	globals types.Globals
	locker  edgeLocker
	metrics types.StrategyMetrics
	seed    uint64
}

var _ types.PartitionStrategy = (*DBH)(nil)

// NewDBH creates a new degree-based hashing strategy.
//
// Parameters:
//   - globals: Partition count and backoff ceiling (lambda and epsilon are ignored)
//   - opts: Optional configuration (WithHashSeed, WithLogger, WithMetrics, ...)
//
// Returns:
//   - *DBH: Initialized strategy
func NewDBH(globals types.Globals, opts ...Option) *DBH {
	o := applyOptions(opts)

	return &DBH{
		globals: globals,
		locker:  newEdgeLocker(globals.BackoffCeiling, o),
		metrics: o.metrics,
		seed:    o.hashSeed,
	}
}

// Assign places edge in the hash partition of its lower-degree endpoint.
//
// Returns:
//   - error: types.ErrNoCandidates when P < 1, types.ErrLockContention or a context error
func (d *DBH) Assign(ctx context.Context, edge types.Edge, st types.PartitionState, rng *rand.Rand) error {
	if d.globals.Partitions < 1 {
		return errNoPartitions(edge)
	}
	if err := checkPartitions(d.globals.Partitions, st); err != nil {
		return err
	}

	u := st.Record(edge.U)
	v := st.Record(edge.V)
	if err := d.locker.lock(ctx, edge, u, v, rng); err != nil {
		return err
	}
	defer d.locker.unlock(edge, u, v)

	target := edge.U
	if v.Degree() < u.Degree() {
		target = edge.V
	}

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(target))
	m := int(hashBytes(buf[:], d.seed) % uint64(d.globals.Partitions))

	return commit(st, edge, u, v, m, d.metrics)
}

func hashBytes(b []byte, seed uint64) uint64 {
	if seed != 0 {
		return xxh3.HashSeed(b, seed)
	}

	return xxh3.Hash(b)
}

func errNoPartitions(edge types.Edge) error {
	return fmt.Errorf("%w: edge %s: no partitions configured", types.ErrNoCandidates, edge)
}
