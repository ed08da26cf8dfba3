package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arloliu/vcut/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are created and registered lazily on first use, so constructing
// a PrometheusCollector never touches the registry.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	// Strategy metrics
	edgesAssigned   *prometheus.CounterVec
	replicasCreated *prometheus.CounterVec
	lockRestarts    prometheus.Counter
	lockBackoff     prometheus.Histogram
	candidates      prometheus.Histogram

	// Partitioner metrics
	assignLatency prometheus.Histogram
	assignErrors  *prometheus.CounterVec
	edgesSkipped  prometheus.Counter
	activeWorkers prometheus.Gauge
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "vcut" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "vcut"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.edgesAssigned = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "edges_assigned_total",
			Help:      "Total edges assigned by partition.",
		}, []string{"partition"})

		p.replicasCreated = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "replicas_created_total",
			Help:      "Total vertex replicas created by partition.",
		}, []string{"partition"})

		p.lockRestarts = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "lock_restarts_total",
			Help:      "Assignments restarted after the second vertex lock hit the backoff ceiling.",
		})

		p.lockBackoff = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "lock_backoff_seconds",
			Help:      "Backoff sleeps while polling vertex locks in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10), // 1us .. ~262ms
		})

		p.candidates = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "strategy",
			Name:      "tied_candidates",
			Help:      "Size of the tied maximum-score candidate set.",
			Buckets:   prometheus.LinearBuckets(1, 1, 16),
		})

		p.assignLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "assign_latency_seconds",
			Help:      "Latency of single edge assignments in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12), // 100ns .. ~0.4s
		})

		p.assignErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "assign_errors_total",
			Help:      "Failed edge assignments by kind.",
		}, []string{"kind"})

		p.edgesSkipped = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "edges_skipped_total",
			Help:      "Edges dropped by the error handler.",
		})

		p.activeWorkers = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "partitioner",
			Name:      "active_workers",
			Help:      "Number of running partitioning workers.",
		})

		p.reg.MustRegister(p.edgesAssigned)
		p.reg.MustRegister(p.replicasCreated)
		p.reg.MustRegister(p.lockRestarts)
		p.reg.MustRegister(p.lockBackoff)
		p.reg.MustRegister(p.candidates)
		p.reg.MustRegister(p.assignLatency)
		p.reg.MustRegister(p.assignErrors)
		p.reg.MustRegister(p.edgesSkipped)
		p.reg.MustRegister(p.activeWorkers)
	})
}

// StrategyMetrics implementation

// RecordEdgeAssigned increments the edge counter of the partition.
func (p *PrometheusCollector) RecordEdgeAssigned(partition int) {
	p.ensureRegistered()
	p.edgesAssigned.WithLabelValues(strconv.Itoa(partition)).Inc()
}

// RecordReplicaCreated increments the replica counter of the partition.
func (p *PrometheusCollector) RecordReplicaCreated(partition int) {
	p.ensureRegistered()
	p.replicasCreated.WithLabelValues(strconv.Itoa(partition)).Inc()
}

// RecordLockRestart increments the lock restart counter.
func (p *PrometheusCollector) RecordLockRestart() {
	p.ensureRegistered()
	p.lockRestarts.Inc()
}

// RecordLockBackoff observes a backoff sleep.
func (p *PrometheusCollector) RecordLockBackoff(seconds float64) {
	p.ensureRegistered()
	p.lockBackoff.Observe(seconds)
}

// RecordCandidates observes the tied candidate set size.
func (p *PrometheusCollector) RecordCandidates(count int) {
	p.ensureRegistered()
	p.candidates.Observe(float64(count))
}

// PartitionerMetrics implementation

// RecordAssignDuration observes single edge assignment latency.
func (p *PrometheusCollector) RecordAssignDuration(seconds float64) {
	p.ensureRegistered()
	p.assignLatency.Observe(seconds)
}

// RecordAssignError increments the error counter for kind.
func (p *PrometheusCollector) RecordAssignError(kind string) {
	p.ensureRegistered()
	p.assignErrors.WithLabelValues(kind).Inc()
}

// RecordEdgeSkipped increments the skipped edge counter.
func (p *PrometheusCollector) RecordEdgeSkipped() {
	p.ensureRegistered()
	p.edgesSkipped.Inc()
}

// RecordActiveWorkers sets the active worker gauge.
func (p *PrometheusCollector) RecordActiveWorkers(count int) {
	p.ensureRegistered()
	p.activeWorkers.Set(float64(count))
}
