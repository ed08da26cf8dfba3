package source

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"

	"github.com/arloliu/vcut/types"
)

// Graph implements an edge source over a gonum graph.
//
// Edges are produced in deterministic order: nodes by ascending id, then each
// node's successors by ascending id. An undirected edge is produced once, from
// its lower endpoint.
type Graph struct {
	*Static
}

var _ types.EdgeSource = (*Graph)(nil)

// NewGraph enumerates the edges of g.
//
// Parameters:
//   - g: Source graph (undirected graphs are detected via graph.Undirected)
//
// Returns:
//   - *Graph: Source over the graph's edges
//   - error: types.ErrMalformedEdge if a node has a negative id
//
// Example:
//
//	g := simple.NewUndirectedGraph()
//	g.SetEdge(g.NewEdge(simple.Node(1), simple.Node(2)))
//	src, err := source.NewGraph(g)
func NewGraph(g graph.Graph) (*Graph, error) {
	_, undirected := g.(graph.Undirected)

	nodes := graph.NodesOf(g.Nodes())
	slices.SortFunc(nodes, byID)

	var edges []types.Edge
	for _, n := range nodes {
		if n.ID() < 0 {
			return nil, fmt.Errorf("%w: negative node id %d", types.ErrMalformedEdge, n.ID())
		}

		succ := graph.NodesOf(g.From(n.ID()))
		slices.SortFunc(succ, byID)
		for _, s := range succ {
			if undirected && s.ID() < n.ID() {
				continue
			}
			edges = append(edges, types.NewEdge(types.VertexID(n.ID()), types.VertexID(s.ID())))
		}
	}

	return &Graph{Static: NewStatic(edges)}, nil
}

func byID(a, b graph.Node) int {
	switch {
	case a.ID() < b.ID():
		return -1
	case a.ID() > b.ID():
		return 1
	default:
		return 0
	}
}
