// Package metrics provides MetricsCollector implementations.
package metrics

import "github.com/arloliu/vcut/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	metrics := metrics.NewNop()
//	hdrf := strategy.NewHDRF(globals, strategy.WithMetrics(metrics))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// StrategyMetrics implementation

// RecordEdgeAssigned discards the edge assignment metric.
func (n *NopMetrics) RecordEdgeAssigned(_ /* partition */ int) {
	// No-op
}

// RecordReplicaCreated discards the replica creation metric.
func (n *NopMetrics) RecordReplicaCreated(_ /* partition */ int) {
	// No-op
}

// RecordLockRestart discards the lock restart metric.
func (n *NopMetrics) RecordLockRestart() {
	// No-op
}

// RecordLockBackoff discards the lock backoff metric.
func (n *NopMetrics) RecordLockBackoff(_ /* seconds */ float64) {
	// No-op
}

// RecordCandidates discards the candidate set size metric.
func (n *NopMetrics) RecordCandidates(_ /* count */ int) {
	// No-op
}

// PartitionerMetrics implementation

// RecordAssignDuration discards the assignment latency metric.
func (n *NopMetrics) RecordAssignDuration(_ /* seconds */ float64) {
	// No-op
}

// RecordAssignError discards the assignment error metric.
func (n *NopMetrics) RecordAssignError(_ /* kind */ string) {
	// No-op
}

// RecordEdgeSkipped discards the skipped edge metric.
func (n *NopMetrics) RecordEdgeSkipped() {
	// No-op
}

// RecordActiveWorkers discards the active workers metric.
func (n *NopMetrics) RecordActiveWorkers(_ /* count */ int) {
	// No-op
}
