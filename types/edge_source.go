package types

import "context"

// EdgeSource provides the stream of edges to partition.
//
// Implementations can read from various backends:
//   - Static: fixed slice for testing
//   - Reader: text edge lists
//   - Graph: an in-memory gonum graph
//   - NATS: edges published on a subject
type EdgeSource interface {
	// Next returns the next edge of the stream.
	//
	// Implementations should:
	//   - Return io.EOF once the stream is exhausted
	//   - Handle context cancellation gracefully
	//   - Wrap malformed input with ErrMalformedEdge
	//
	// Parameters:
	//   - ctx: Context for cancellation and timeout
	//
	// Returns:
	//   - Edge: The next edge
	//   - error: io.EOF at end of stream, or a read error
	Next(ctx context.Context) (Edge, error)
}
