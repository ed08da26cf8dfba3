package state

import (
	"sync/atomic"

	"github.com/arloliu/vcut/types"
)

// Coordinated is the extended partition state that also counts distinct
// vertex replicas per partition.
type Coordinated struct {
	*State
	vertexLoads []atomic.Int64
}

var (
	_ types.PartitionState    = (*Coordinated)(nil)
	_ types.VertexLoadTracker = (*Coordinated)(nil)
)

// NewCoordinated creates a partition state that tracks both edge and vertex loads.
//
// Parameters:
//   - partitions: Number of partitions (P)
//
// Returns:
//   - *Coordinated: Empty state with zero loads
func NewCoordinated(partitions int) *Coordinated {
	return &Coordinated{
		State:       New(partitions),
		vertexLoads: make([]atomic.Int64, max(partitions, 0)),
	}
}

// VertexLoads returns the state itself as the vertex-load tracker.
func (c *Coordinated) VertexLoads() types.VertexLoadTracker {
	return c
}

// IncrementMachineLoadVertices records a new vertex replica in partition m.
func (c *Coordinated) IncrementMachineLoadVertices(m int) {
	c.vertexLoads[m].Add(1)
}

// MachineLoadVertices returns the number of vertex replicas in partition m.
func (c *Coordinated) MachineLoadVertices(m int) int64 {
	return c.vertexLoads[m].Load()
}

// VertexLoadSlice returns a copy of the per-partition vertex loads.
func (c *Coordinated) VertexLoadSlice() []int64 {
	out := make([]int64, len(c.vertexLoads))
	for i := range c.vertexLoads {
		out[i] = c.vertexLoads[i].Load()
	}

	return out
}

// Snapshot captures edge loads, vertex loads and replica totals.
func (c *Coordinated) Snapshot() Snapshot {
	return c.snapshot(c.VertexLoadSlice())
}
