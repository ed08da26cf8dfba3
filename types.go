package vcut

import "github.com/arloliu/vcut/types"

// Re-export types from the types package.
//
// Internal packages depend on types without depending on the root vcut
// package, while users still get vcut.Edge, vcut.Logger and so on.
type (
	VertexID = types.VertexID
	Edge     = types.Edge
	Globals  = types.Globals

	Hooks      = types.Hooks
	RunSummary = types.RunSummary
)

// Re-export interfaces from the types package for convenience.
type (
	PartitionStrategy = types.PartitionStrategy
	PartitionState    = types.PartitionState
	VertexRecord      = types.VertexRecord
	EdgeSource        = types.EdgeSource
	MetricsCollector  = types.MetricsCollector
	Logger            = types.Logger
)

// NewEdge creates an edge from u to v.
func NewEdge(u, v VertexID) Edge {
	return types.NewEdge(u, v)
}
