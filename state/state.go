package state

import (
	"math"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/vcut/types"
)

// State is the base partition state: per-partition edge loads and the vertex
// record table.
type State struct {
	partitions int
	loads      []atomic.Int64
	records    *xsync.Map[types.VertexID, *Record]
}

var _ types.PartitionState = (*State)(nil)

// New creates a base partition state that tracks edge loads only.
//
// Parameters:
//   - partitions: Number of partitions (P)
//
// Returns:
//   - *State: Empty state with zero loads
//
// Example:
//
//	st := state.New(8)
//	err := hdrf.Assign(ctx, types.NewEdge(1, 2), st, rng)
func New(partitions int) *State {
	return &State{
		partitions: max(partitions, 0),
		loads:      make([]atomic.Int64, max(partitions, 0)),
		records:    xsync.NewMap[types.VertexID, *Record](),
	}
}

// NumPartitions returns the partition count.
func (s *State) NumPartitions() int {
	return s.partitions
}

// Record returns the record for id, creating it on first access.
//
// Concurrent first-touch by several workers creates exactly one record.
func (s *State) Record(id types.VertexID) types.VertexRecord {
	return s.record(id)
}

func (s *State) record(id types.VertexID) *Record {
	r, _ := s.records.LoadOrCompute(id, func() (*Record, bool) {
		return NewRecord(id, s.partitions), false
	})

	return r
}

// Lookup returns the record for id without creating it.
//
// Returns:
//   - *Record: The record, or nil if the vertex was never referenced
//   - bool: true if the record exists
func (s *State) Lookup(id types.VertexID) (*Record, bool) {
	return s.records.Load(id)
}

// Range calls fn for every vertex record until fn returns false.
// Iteration order is unspecified.
func (s *State) Range(fn func(r *Record) bool) {
	s.records.Range(func(_ types.VertexID, r *Record) bool {
		return fn(r)
	})
}

// NumVertices returns the number of vertex records created so far.
func (s *State) NumVertices() int {
	return s.records.Size()
}

// MachineLoad returns the number of edges assigned to partition m.
func (s *State) MachineLoad(m int) int64 {
	return s.loads[m].Load()
}

// MinLoad returns the smallest edge load across partitions (0 when P == 0).
func (s *State) MinLoad() int64 {
	if len(s.loads) == 0 {
		return 0
	}
	minLoad := int64(math.MaxInt64)
	for i := range s.loads {
		minLoad = min(minLoad, s.loads[i].Load())
	}

	return minLoad
}

// MaxLoad returns the largest edge load across partitions (0 when P == 0).
func (s *State) MaxLoad() int64 {
	maxLoad := int64(0)
	for i := range s.loads {
		maxLoad = max(maxLoad, s.loads[i].Load())
	}

	return maxLoad
}

// IncrementMachineLoad assigns an edge to partition m.
func (s *State) IncrementMachineLoad(m int, _ /* edge */ types.Edge) {
	s.loads[m].Add(1)
}

// VertexLoads returns nil: the base state does not track vertex loads.
func (s *State) VertexLoads() types.VertexLoadTracker {
	return nil
}

// EdgeLoads returns a copy of the per-partition edge loads.
func (s *State) EdgeLoads() []int64 {
	out := make([]int64, len(s.loads))
	for i := range s.loads {
		out[i] = s.loads[i].Load()
	}

	return out
}

// Snapshot captures the current counters.
//
// The snapshot is only consistent once no assignment is in flight.
func (s *State) Snapshot() Snapshot {
	return s.snapshot(nil)
}

func (s *State) snapshot(vertexLoads []int64) Snapshot {
	snap := Snapshot{
		EdgeLoads:   s.EdgeLoads(),
		VertexLoads: vertexLoads,
	}
	for _, l := range snap.EdgeLoads {
		snap.Edges += l
	}
	s.Range(func(r *Record) bool {
		// Records of edges that failed before commit hold no replica.
		n := r.ReplicaCount()
		if n == 0 {
			return true
		}
		snap.Vertices++
		snap.Replicas += int64(n)

		return true
	})

	return snap
}
