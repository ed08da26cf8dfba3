package state

// Snapshot is a point-in-time copy of a partition state's counters.
type Snapshot struct {
	// EdgeLoads holds the number of edges per partition.
	EdgeLoads []int64 `json:"edgeLoads" yaml:"edgeLoads"`

	// VertexLoads holds the number of vertex replicas per partition.
	// Nil when the state does not track vertex loads.
	VertexLoads []int64 `json:"vertexLoads,omitempty" yaml:"vertexLoads,omitempty"`

	// Edges is the sum of EdgeLoads.
	Edges int64 `json:"edges" yaml:"edges"`

	// Vertices is the number of distinct vertices holding at least one replica.
	Vertices int `json:"vertices" yaml:"vertices"`

	// Replicas is the total number of vertex replicas across partitions.
	Replicas int64 `json:"replicas" yaml:"replicas"`
}

// ReplicationFactor returns the average number of replicas per vertex
// (0 when no vertex was seen).
func (s Snapshot) ReplicationFactor() float64 {
	if s.Vertices == 0 {
		return 0
	}

	return float64(s.Replicas) / float64(s.Vertices)
}

// Snapshotter is implemented by both state capability levels.
type Snapshotter interface {
	Snapshot() Snapshot
}
