// Package state provides the shared partition state of a partitioning run.
//
// Two capability levels are available:
//
//   - State: tracks per-partition edge loads and per-vertex records
//   - Coordinated: additionally tracks per-partition vertex-replica loads
//
// Both satisfy types.PartitionState and are safe for concurrent use by many
// workers. Vertex records are created lazily, exactly once per vertex id, and
// live for the duration of the run.
package state
