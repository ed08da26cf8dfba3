// Package source provides built-in edge source implementations.
//
// Edge sources feed the Partitioner one edge at a time and report io.EOF at
// the end of the stream. The package includes:
//
//   - Static: Fixed list of edges
//   - Reader: Text edge list (one "u v" pair per line)
//   - Graph: Edges of a gonum graph
//   - NATS: Edges published on a core NATS subject
//   - Stream: Edges stored in a JetStream stream, replayed in order
//
// Custom sources can be implemented by satisfying the types.EdgeSource interface.
package source
