package types

import "strconv"

// VertexID identifies a vertex.
//
// Identifiers are only compared for identity; their numeric order carries
// no meaning for the partitioning algorithms.
type VertexID uint64

// String returns the decimal form of the identifier.
func (id VertexID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Edge is an ordered pair of vertex identifiers.
//
// The orientation (U, V) is preserved: strategies acquire vertex locks in
// that order.
type Edge struct {
	U VertexID `json:"u" yaml:"u"`
	V VertexID `json:"v" yaml:"v"`
}

// NewEdge creates an edge from u to v.
func NewEdge(u, v VertexID) Edge {
	return Edge{U: u, V: v}
}

// IsSelfLoop reports whether both endpoints are the same vertex.
func (e Edge) IsSelfLoop() bool {
	return e.U == e.V
}

// Reverse returns the edge with swapped endpoints.
func (e Edge) Reverse() Edge {
	return Edge{U: e.V, V: e.U}
}

// String returns "u-v".
func (e Edge) String() string {
	return e.U.String() + "-" + e.V.String()
}
