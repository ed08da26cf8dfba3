package source

import (
	"context"
	"io"
	rand "math/rand/v2"
	"sync"

	"github.com/arloliu/vcut/types"
)

// Static implements an edge source over a fixed list of edges.
type Static struct {
	mu    sync.Mutex
	edges []types.Edge
	pos   int
}

var _ types.EdgeSource = (*Static)(nil)

// NewStatic creates a new static edge source.
//
// The source yields the edges in order, then io.EOF. Useful for testing and
// for graphs that are already in memory.
//
// Parameters:
//   - edges: Edges to stream (copied)
//
// Returns:
//   - *Static: Initialized static source
//
// Example:
//
//	src := source.NewStatic([]types.Edge{
//	    types.NewEdge(1, 2),
//	    types.NewEdge(2, 3),
//	})
//	report, err := p.Run(ctx, src)
func NewStatic(edges []types.Edge) *Static {
	s := &Static{}
	s.Update(edges)

	return s
}

// Next returns the next edge, or io.EOF once all edges were returned.
func (s *Static) Next(ctx context.Context) (types.Edge, error) {
	if err := ctx.Err(); err != nil {
		return types.Edge{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pos >= len(s.edges) {
		return types.Edge{}, io.EOF
	}
	e := s.edges[s.pos]
	s.pos++

	return e, nil
}

// Len returns the total number of edges.
func (s *Static) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.edges)
}

// Reset rewinds the source to its first edge.
func (s *Static) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pos = 0
}

// Update replaces the edge list and rewinds the source.
//
// Parameters:
//   - edges: New list of edges (copied)
func (s *Static) Update(edges []types.Edge) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edges = make([]types.Edge, len(edges))
	copy(s.edges, edges)
	s.pos = 0
}

// Shuffle randomizes the edge order and rewinds the source.
//
// Parameters:
//   - rng: Random source (nil uses the global source)
func (s *Static) Shuffle(rng *rand.Rand) {
	s.mu.Lock()
	defer s.mu.Unlock()

	swap := func(i, j int) { s.edges[i], s.edges[j] = s.edges[j], s.edges[i] }
	if rng != nil {
		rng.Shuffle(len(s.edges), swap)
	} else {
		rand.Shuffle(len(s.edges), swap)
	}
	s.pos = 0
}

// Edges returns a copy of all edges.
func (s *Static) Edges() []types.Edge {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]types.Edge, len(s.edges))
	copy(out, s.edges)

	return out
}
