package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// All methods are called from worker goroutines and must be thread-safe.
//
// This interface composes smaller, domain-focused interfaces for better modularity.
type MetricsCollector interface {
	StrategyMetrics
	PartitionerMetrics
}

// StrategyMetrics defines metrics recorded by partitioning strategies.
type StrategyMetrics interface {
	// RecordEdgeAssigned records an edge placed in a partition.
	//
	// Parameters:
	//   - partition: Chosen partition index
	RecordEdgeAssigned(partition int)

	// RecordReplicaCreated records a new vertex replica in a partition.
	//
	// Parameters:
	//   - partition: Partition receiving the replica
	RecordReplicaCreated(partition int)

	// RecordLockRestart records an assignment restart after the second vertex
	// lock could not be obtained within the backoff ceiling.
	RecordLockRestart()

	// RecordLockBackoff records a single backoff sleep while polling a vertex lock.
	//
	// Parameters:
	//   - seconds: Sleep duration in seconds
	RecordLockBackoff(seconds float64)

	// RecordCandidates records the size of the tied maximum-score candidate set.
	//
	// Parameters:
	//   - count: Number of tied candidates
	RecordCandidates(count int)
}

// PartitionerMetrics defines metrics recorded by the Partitioner driver.
type PartitionerMetrics interface {
	// RecordAssignDuration records the time taken to assign one edge.
	//
	// Parameters:
	//   - seconds: Assignment latency in seconds
	RecordAssignDuration(seconds float64)

	// RecordAssignError records a failed assignment.
	//
	// Parameters:
	//   - kind: Error kind ("invalid_score", "no_candidates", "lock_contention", "canceled", "other")
	RecordAssignError(kind string)

	// RecordEdgeSkipped records an edge dropped by the error handler.
	RecordEdgeSkipped()

	// RecordActiveWorkers sets the current worker count (gauge metric).
	//
	// Parameters:
	//   - count: Number of running workers
	RecordActiveWorkers(count int)
}
