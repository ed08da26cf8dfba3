package types

// VertexRecord is the mutable per-vertex partitioning state.
//
// Degree and replica mutations require the caller to hold the record lock.
// The lock is a non-blocking flag: retry and backoff policy belongs to the
// strategy, never to the record.
type VertexRecord interface {
	// ID returns the vertex identifier this record tracks.
	ID() VertexID

	// Degree returns the number of processed edges touching the vertex.
	Degree() int64

	// IncrementDegree increments the degree by one. Caller must hold the lock.
	IncrementDegree()

	// HasReplicaInPartition reports whether the vertex has a replica in partition m.
	HasReplicaInPartition(m int) bool

	// AddPartition records a replica in partition m. Idempotent; caller must hold the lock.
	//
	// Returns:
	//   - bool: true if the replica is new
	AddPartition(m int) bool

	// Partitions returns the replica partitions in ascending order.
	Partitions() []int

	// ReplicaCount returns the number of partitions holding a replica.
	ReplicaCount() int

	// TryAcquireLock attempts to take exclusive access without blocking.
	//
	// Returns:
	//   - bool: true if the caller now holds the lock
	TryAcquireLock() bool

	// ReleaseLock releases exclusive access. Must only be called by the holder.
	ReleaseLock()
}

// PartitionState is the shared state of one partitioning run.
//
// It owns every VertexRecord and every load counter. Load reads are snapshots
// that may be stale relative to concurrent updates of other partitions;
// callers must tolerate that.
type PartitionState interface {
	// NumPartitions returns the partition count the state was created for.
	NumPartitions() int

	// Record returns the record for id, creating it exactly once on first access.
	Record(id VertexID) VertexRecord

	// MachineLoad returns the number of edges assigned to partition m.
	MachineLoad(m int) int64

	// MinLoad returns the smallest edge load across partitions.
	MinLoad() int64

	// MaxLoad returns the largest edge load across partitions.
	MaxLoad() int64

	// IncrementMachineLoad assigns edge to partition m.
	IncrementMachineLoad(m int, edge Edge)

	// VertexLoads returns the vertex-load capability, or nil when the state
	// only tracks edge loads.
	VertexLoads() VertexLoadTracker
}

// VertexLoadTracker is the extended "coordinated" capability of a PartitionState:
// it also counts distinct vertex replicas per partition.
type VertexLoadTracker interface {
	// IncrementMachineLoadVertices records a new vertex replica in partition m.
	IncrementMachineLoadVertices(m int)

	// MachineLoadVertices returns the number of vertex replicas in partition m.
	MachineLoadVertices(m int) int64
}
