package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	t.Run("registers lazily", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		_ = NewPrometheus(reg, "test")

		families, err := reg.Gather()
		require.NoError(t, err)
		require.Empty(t, families)
	})

	t.Run("records strategy metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "test")

		p.RecordEdgeAssigned(1)
		p.RecordEdgeAssigned(1)
		p.RecordEdgeAssigned(0)
		p.RecordReplicaCreated(1)
		p.RecordLockRestart()
		p.RecordLockBackoff(0.00001)
		p.RecordCandidates(2)

		require.InDelta(t, 2, testutil.ToFloat64(p.edgesAssigned.WithLabelValues("1")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(p.edgesAssigned.WithLabelValues("0")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(p.replicasCreated.WithLabelValues("1")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(p.lockRestarts), 0)
		require.Equal(t, 1, testutil.CollectAndCount(p.lockBackoff))
	})

	t.Run("records partitioner metrics", func(t *testing.T) {
		reg := prometheus.NewRegistry()
		p := NewPrometheus(reg, "")

		p.RecordAssignDuration(0.001)
		p.RecordAssignError("invalid_score")
		p.RecordEdgeSkipped()
		p.RecordActiveWorkers(4)

		require.InDelta(t, 1, testutil.ToFloat64(p.assignErrors.WithLabelValues("invalid_score")), 0)
		require.InDelta(t, 1, testutil.ToFloat64(p.edgesSkipped), 0)
		require.InDelta(t, 4, testutil.ToFloat64(p.activeWorkers), 0)

		families, err := reg.Gather()
		require.NoError(t, err)
		names := make([]string, 0, len(families))
		for _, f := range families {
			names = append(names, f.GetName())
		}
		require.Contains(t, names, "vcut_partitioner_active_workers")
	})
}
