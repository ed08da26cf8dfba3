package source

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/arloliu/vcut/types"
)

// Reader implements an edge source over a text edge list.
//
// Each line holds one edge as two unsigned vertex ids separated by whitespace
// or a comma, optionally followed by a weight column that is ignored. Blank
// lines and lines starting with '#' or '%' are skipped, which covers SNAP
// headers. Input starting with a "%%MatrixMarket" banner is read as a Matrix
// Market coordinate file: its first non-comment line is the "M N NNZ" size
// line and is skipped as well.
type Reader struct {
	mu      sync.Mutex
	scanner *bufio.Scanner
	closer  io.Closer
	line    int

	// matrixSize is set while a Matrix Market size line is still expected.
	matrixSize bool
}

const matrixMarketBanner = "%%MatrixMarket"


var _ types.EdgeSource = (*Reader)(nil)

// NewReader creates an edge source reading from r.
//
// Parameters:
//   - r: Edge list input
//
// Returns:
//   - *Reader: Initialized reader source
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	rd := &Reader{scanner: scanner}
	if c, ok := r.(io.Closer); ok {
		rd.closer = c
	}

	return rd
}

// Open creates an edge source reading the edge list file at path.
//
// The caller must Close the returned reader.
//
// Parameters:
//   - path: File path
//
// Returns:
//   - *Reader: Reader over the opened file
//   - error: File open error
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge list: %w", err)
	}

	return NewReader(f), nil
}

// Next returns the next edge of the list.
//
// Returns:
//   - types.Edge: Next edge
//   - error: io.EOF at the end of input, types.ErrMalformedEdge (with the line
//     number) for an unparsable line, or a read error
func (r *Reader) Next(ctx context.Context) (types.Edge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		if err := ctx.Err(); err != nil {
			return types.Edge{}, err
		}

		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return types.Edge{}, fmt.Errorf("read edge list: %w", err)
			}

			return types.Edge{}, io.EOF
		}
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if r.line == 1 && strings.HasPrefix(text, matrixMarketBanner) {
			r.matrixSize = true
		}
		if isComment(text) {
			continue
		}
		if r.matrixSize {
			r.matrixSize = false
			continue
		}

		e, err := ParseEdge(text)
		if err != nil {
			return types.Edge{}, fmt.Errorf("line %d: %w", r.line, err)
		}

		return e, nil
	}
}

// Close closes the underlying input if it is closable.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}

	return r.closer.Close()
}
