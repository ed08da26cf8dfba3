package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vcut/types"
)

func TestParseEdge(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.Edge
		wantErr bool
	}{
		{name: "space separated", input: "1 2", want: types.NewEdge(1, 2)},
		{name: "tab separated", input: "10\t20", want: types.NewEdge(10, 20)},
		{name: "comma separated", input: "3,4", want: types.NewEdge(3, 4)},
		{name: "weight ignored", input: "5 6 0.25", want: types.NewEdge(5, 6)},
		{name: "self loop", input: "7 7", want: types.NewEdge(7, 7)},
		{name: "max id", input: "18446744073709551615 0", want: types.NewEdge(18446744073709551615, 0)},
		{name: "single field", input: "1", wantErr: true},
		{name: "too many fields", input: "1 2 3 4", wantErr: true},
		{name: "negative id", input: "-1 2", wantErr: true},
		{name: "not a number", input: "a b", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEdge(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, types.ErrMalformedEdge)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestFormatEdge(t *testing.T) {
	e := types.NewEdge(42, 7)

	require.Equal(t, "42 7", FormatEdge(e))

	parsed, err := ParseEdge(FormatEdge(e))
	require.NoError(t, err)
	require.Equal(t, e, parsed)
}

func TestReader_Next(t *testing.T) {
	t.Run("skips comments and blank lines", func(t *testing.T) {
		input := `# Directed graph (each unordered pair of nodes is saved once)
% matrix market style comment

1 2
  2 3  
3,1,1.5
`
		src := NewReader(strings.NewReader(input))

		require.Equal(t, []types.Edge{
			types.NewEdge(1, 2),
			types.NewEdge(2, 3),
			types.NewEdge(3, 1),
		}, drain(t, src))
		require.NoError(t, src.Close())
	})

	t.Run("skips the matrix market size line", func(t *testing.T) {
		input := `%%MatrixMarket matrix coordinate pattern general
% 4 vertices, 2 entries
4 4 2
1 2
3 4
`
		src := NewReader(strings.NewReader(input))

		require.Equal(t, []types.Edge{
			types.NewEdge(1, 2),
			types.NewEdge(3, 4),
		}, drain(t, src))
	})

	t.Run("keeps a three column first line without banner", func(t *testing.T) {
		src := NewReader(strings.NewReader("4 4 2
1 2
"))

		require.Equal(t, []types.Edge{
			types.NewEdge(4, 4),
			types.NewEdge(1, 2),
		}, drain(t, src))
	})

	t.Run("reports the malformed line", func(t *testing.T) {
		src := NewReader(strings.NewReader("1 2\n# ok\nx y\n"))

		_, err := src.Next(context.Background())
		require.NoError(t, err)

		_, err = src.Next(context.Background())
		require.ErrorIs(t, err, types.ErrMalformedEdge)
		require.Contains(t, err.Error(), "line 3")
	})

	t.Run("continues after a malformed line", func(t *testing.T) {
		src := NewReader(strings.NewReader("bad\n4 5\n"))

		_, err := src.Next(context.Background())
		require.ErrorIs(t, err, types.ErrMalformedEdge)

		e, err := src.Next(context.Background())
		require.NoError(t, err)
		require.Equal(t, types.NewEdge(4, 5), e)
	})

	t.Run("opens files", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "edges.txt")
		require.NoError(t, os.WriteFile(path, []byte("1 2\n2 3\n"), 0o600))

		src, err := Open(path)
		require.NoError(t, err)
		defer src.Close()

		require.Len(t, drain(t, src), 2)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Open(filepath.Join(t.TempDir(), "missing.txt"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
