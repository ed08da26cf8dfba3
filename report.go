package vcut

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/arloliu/vcut/state"
)

// Report summarizes a partitioning.
type Report struct {
	// Strategy is the configured strategy name.
	Strategy string `json:"strategy" yaml:"strategy"`

	// Partitions is the number of partitions.
	Partitions int `json:"partitions" yaml:"partitions"`

	// Edges is the number of assigned edges.
	Edges int64 `json:"edges" yaml:"edges"`

	// Skipped is the number of edges dropped by the error handler.
	Skipped int64 `json:"skipped" yaml:"skipped"`

	// Vertices is the number of distinct vertices.
	Vertices int `json:"vertices" yaml:"vertices"`

	// Replicas is the total number of vertex replicas.
	Replicas int64 `json:"replicas" yaml:"replicas"`

	// ReplicationFactor is Replicas / Vertices, 1 being a perfect vertex cut.
	ReplicationFactor float64 `json:"replicationFactor" yaml:"replicationFactor"`

	// EdgeLoads holds the edges per partition.
	EdgeLoads []int64 `json:"edgeLoads" yaml:"edgeLoads"`

	// VertexLoads holds the vertex replicas per partition.
	VertexLoads []int64 `json:"vertexLoads" yaml:"vertexLoads"`

	// LoadStdDev is the population standard deviation of EdgeLoads.
	LoadStdDev float64 `json:"loadStdDev" yaml:"loadStdDev"`

	// LoadRelStdDev is LoadStdDev divided by the mean edge load.
	LoadRelStdDev float64 `json:"loadRelStdDev" yaml:"loadRelStdDev"`

	// Imbalance is the maximum edge load divided by the mean edge load,
	// 1 being perfect balance.
	Imbalance float64 `json:"imbalance" yaml:"imbalance"`

	// Duration is the wall time of the run that produced the report.
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// NewReport computes the statistics of a snapshot.
//
// Ratios are 0 when there are no edges (or no vertices).
func NewReport(snap state.Snapshot) *Report {
	r := &Report{
		Partitions:        len(snap.EdgeLoads),
		Edges:             snap.Edges,
		Vertices:          snap.Vertices,
		Replicas:          snap.Replicas,
		ReplicationFactor: snap.ReplicationFactor(),
		EdgeLoads:         slices.Clone(snap.EdgeLoads),
		VertexLoads:       slices.Clone(snap.VertexLoads),
	}

	if len(snap.EdgeLoads) == 0 || snap.Edges == 0 {
		return r
	}

	loads := make([]float64, len(snap.EdgeLoads))
	for i, l := range snap.EdgeLoads {
		loads[i] = float64(l)
	}

	mean, std := stat.PopMeanStdDev(loads, nil)
	r.LoadStdDev = std
	r.LoadRelStdDev = std / mean
	r.Imbalance = floats.Max(loads) / mean

	return r
}

// WriteText writes a human readable summary of r to w.
func (r *Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "strategy\t%s\n", r.Strategy)
	fmt.Fprintf(tw, "partitions\t%d\n", r.Partitions)
	fmt.Fprintf(tw, "edges\t%d\n", r.Edges)
	fmt.Fprintf(tw, "skipped\t%d\n", r.Skipped)
	fmt.Fprintf(tw, "vertices\t%d\n", r.Vertices)
	fmt.Fprintf(tw, "replicas\t%d\n", r.Replicas)
	fmt.Fprintf(tw, "replication factor\t%.4f\n", r.ReplicationFactor)
	fmt.Fprintf(tw, "edge load stddev\t%.4f (%.2f%%)\n", r.LoadStdDev, 100*r.LoadRelStdDev)
	fmt.Fprintf(tw, "imbalance\t%.4f\n", r.Imbalance)
	fmt.Fprintf(tw, "duration\t%s\n", r.Duration)
	fmt.Fprintf(tw, "edge loads\t%s\n", joinLoads(r.EdgeLoads))
	fmt.Fprintf(tw, "vertex loads\t%s\n", joinLoads(r.VertexLoads))

	return tw.Flush()
}

func joinLoads(loads []int64) string {
	parts := make([]string, len(loads))
	for i, l := range loads {
		parts[i] = fmt.Sprint(l)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
