// Package types provides core type definitions and interfaces for the vcut library.
//
// This package contains shared types that are used across multiple packages in the
// vcut library. By keeping these types in a separate package, we avoid import cycles
// between the main vcut package and its internal implementations.
//
// Key types:
//   - Edge, VertexID: The unit of work fed to a partitioning strategy
//   - Globals: Immutable partitioning parameters (P, lambda, epsilon, backoff ceiling)
//   - PartitionStrategy: The single-method strategy contract
//   - PartitionState, VertexRecord, VertexLoadTracker: Shared partitioning state
//   - EdgeSource: Stream of edges consumed by the Partitioner
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
