// Package strategy provides built-in vertex-cut partitioning strategies.
//
// A strategy decides, one edge at a time, which partition receives the edge.
// The endpoints of the edge are replicated into that partition. The package
// includes four built-in strategies:
//
//   - HDRF: High-Degree Replicated First greedy scoring (recommended)
//   - DBH: Degree-Based Hashing of the lower-degree endpoint
//   - Hash: Hashing of the whole edge
//   - RoundRobin: Cyclic assignment by arrival order
//
// # Strategy Selection Guide
//
// HDRF:
//   - Use for power-law graphs where replication factor matters
//   - Balances replica affinity against partition load via lambda
//   - Configuration: lambda, epsilon, backoff ceiling
//
// DBH:
//   - Use when scoring cost must stay O(1) per edge
//   - Cuts high-degree vertices first, like HDRF, without load feedback
//
// Hash:
//   - Use as a baseline; near-perfect balance, high replication
//
// RoundRobin:
//   - Use as a baseline; perfect balance, no locality
//
// # Concurrency
//
// Every strategy is safe for concurrent use by many workers sharing one
// types.PartitionState. Both endpoint records of an edge are locked (u first,
// then v) before any mutation. When the second lock cannot be taken before the
// backoff ceiling, the first lock is released and the assignment restarts, so
// two workers locking (a, b) and (b, a) never deadlock.
//
// Custom strategies can be implemented by satisfying the types.PartitionStrategy interface.
package strategy
