package state

import (
	"math/bits"
	"sync/atomic"

	"github.com/arloliu/vcut/types"
)

// Record is the per-vertex partitioning state.
//
// The degree and replica set are stored in atomics so that reads are always
// race-free; mutations are still serialised by the record lock, which the
// caller must hold.
type Record struct {
	id       types.VertexID
	degree   atomic.Int64
	replicas []atomic.Uint64 // bitset over partition indices
	locked   atomic.Bool
}

var _ types.VertexRecord = (*Record)(nil)

// NewRecord creates an empty record for a run with the given partition count.
//
// Parameters:
//   - id: Vertex identifier
//   - partitions: Partition count of the run (sizes the replica bitset)
//
// Returns:
//   - *Record: Unlocked record with zero degree and no replicas
func NewRecord(id types.VertexID, partitions int) *Record {
	words := (max(partitions, 0) + 63) / 64

	return &Record{
		id:       id,
		replicas: make([]atomic.Uint64, words),
	}
}

// ID returns the vertex identifier.
func (r *Record) ID() types.VertexID {
	return r.id
}

// Degree returns the number of processed edges touching the vertex.
func (r *Record) Degree() int64 {
	return r.degree.Load()
}

// IncrementDegree increments the degree by one.
func (r *Record) IncrementDegree() {
	r.degree.Add(1)
}

// HasReplicaInPartition reports whether the vertex has a replica in partition m.
// Out-of-range partitions never hold a replica.
func (r *Record) HasReplicaInPartition(m int) bool {
	if m < 0 || m/64 >= len(r.replicas) {
		return false
	}

	return r.replicas[m/64].Load()&(1<<(uint(m)%64)) != 0
}

// AddPartition records a replica in partition m.
//
// Parameters:
//   - m: Partition index in [0, P)
//
// Returns:
//   - bool: true if the replica was not present before
func (r *Record) AddPartition(m int) bool {
	if m < 0 || m/64 >= len(r.replicas) {
		return false
	}
	bit := uint64(1) << (uint(m) % 64)
	old := r.replicas[m/64].Or(bit)

	return old&bit == 0
}

// Partitions returns the replica partitions in ascending order.
func (r *Record) Partitions() []int {
	out := make([]int, 0, r.ReplicaCount())
	for w := range r.replicas {
		word := r.replicas[w].Load()
		for word != 0 {
			b := bits.TrailingZeros64(word)
			out = append(out, w*64+b)
			word &= word - 1
		}
	}

	return out
}

// ReplicaCount returns the number of partitions holding a replica.
func (r *Record) ReplicaCount() int {
	n := 0
	for w := range r.replicas {
		n += bits.OnesCount64(r.replicas[w].Load())
	}

	return n
}

// TryAcquireLock attempts to take exclusive access without blocking.
func (r *Record) TryAcquireLock() bool {
	return r.locked.CompareAndSwap(false, true)
}

// ReleaseLock releases exclusive access.
func (r *Record) ReleaseLock() {
	r.locked.Store(false)
}

// IsLocked reports whether some caller currently holds the lock.
func (r *Record) IsLocked() bool {
	return r.locked.Load()
}
