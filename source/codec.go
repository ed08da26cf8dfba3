package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arloliu/vcut/types"
)

// EndOfStreamHeader marks the message that terminates a NATS edge stream.
const EndOfStreamHeader = "Vcut-End-Of-Stream"

// ParseEdge parses a "u v" pair.
//
// The endpoints are unsigned integers separated by whitespace or a comma.
// A third column (an edge weight in most edge-list formats) is ignored.
//
// Parameters:
//   - s: Line or message payload
//
// Returns:
//   - types.Edge: Parsed edge
//   - error: types.ErrMalformedEdge wrapped with the offending input
func ParseEdge(s string) (types.Edge, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) < 2 || len(fields) > 3 {
		return types.Edge{}, fmt.Errorf("%w: %q: want 2 or 3 fields, got %d", types.ErrMalformedEdge, s, len(fields))
	}

	u, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return types.Edge{}, fmt.Errorf("%w: %q: source vertex: %w", types.ErrMalformedEdge, s, err)
	}
	v, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return types.Edge{}, fmt.Errorf("%w: %q: target vertex: %w", types.ErrMalformedEdge, s, err)
	}

	return types.NewEdge(types.VertexID(u), types.VertexID(v)), nil
}

// FormatEdge renders edge in the format accepted by ParseEdge.
func FormatEdge(edge types.Edge) string {
	return strconv.FormatUint(uint64(edge.U), 10) + " " + strconv.FormatUint(uint64(edge.V), 10)
}

// isComment reports whether a trimmed edge-list line carries no edge.
func isComment(line string) bool {
	return line == "" || line[0] == '#' || line[0] == '%'
}
