package strategy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vcut/state"
	"github.com/arloliu/vcut/types"
)

func TestHash_Partition(t *testing.T) {
	h := NewHash(testGlobals(8, 0))

	t.Run("orientation independent", func(t *testing.T) {
		for i := range types.VertexID(100) {
			e := types.NewEdge(i, i*7+3)
			require.Equal(t, h.Partition(e), h.Partition(e.Reverse()))
		}
	})

	t.Run("in range", func(t *testing.T) {
		for i := range types.VertexID(1000) {
			p := h.Partition(types.NewEdge(i, i+1))
			require.GreaterOrEqual(t, p, 0)
			require.Less(t, p, 8)
		}
	})

	t.Run("no partitions", func(t *testing.T) {
		empty := NewHash(testGlobals(0, 0))
		require.Equal(t, -1, empty.Partition(types.NewEdge(1, 2)))
	})

	t.Run("seed changes placement", func(t *testing.T) {
		seeded := NewHash(testGlobals(8, 0), WithHashSeed(12345))

		differ := 0
		for i := range types.VertexID(200) {
			e := types.NewEdge(i, i+1)
			if h.Partition(e) != seeded.Partition(e) {
				differ++
			}
		}
		require.Positive(t, differ)
	})

	t.Run("spreads edges", func(t *testing.T) {
		counts := make([]int, 8)
		for i := range types.VertexID(8000) {
			counts[h.Partition(types.NewEdge(i, i+1))]++
		}
		for p, c := range counts {
			require.InDelta(t, 1000, c, 250, "partition %d", p)
		}
	})
}

func TestHash_Assign(t *testing.T) {
	ctx := context.Background()
	h := NewHash(testGlobals(4, 0))

	t.Run("uses the hash partition", func(t *testing.T) {
		st := state.NewCoordinated(4)
		e := types.NewEdge(10, 20)

		require.NoError(t, h.Assign(ctx, e, st, nil))

		m := h.Partition(e)
		require.Equal(t, int64(1), st.MachineLoad(m))
		u, _ := st.Lookup(10)
		v, _ := st.Lookup(20)
		require.Equal(t, []int{m}, u.Partitions())
		require.Equal(t, []int{m}, v.Partitions())
		require.Equal(t, int64(2), st.MachineLoadVertices(m))
	})

	t.Run("no partitions", func(t *testing.T) {
		err := NewHash(testGlobals(0, 0)).Assign(ctx, types.NewEdge(1, 2), state.New(0), nil)
		require.ErrorIs(t, err, types.ErrNoCandidates)
	})

	t.Run("state too small", func(t *testing.T) {
		err := h.Assign(ctx, types.NewEdge(1, 2), state.New(2), nil)
		require.ErrorIs(t, err, types.ErrInvalidConfig)
	})
}

func TestDBH_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("follows the lower-degree endpoint", func(t *testing.T) {
		st := state.New(16)
		dbh := NewDBH(testGlobals(16, 0))

		// vertex 1 becomes a hub, every leaf keeps degree 0 before its edge
		for leaf := types.VertexID(100); leaf < 140; leaf++ {
			require.NoError(t, dbh.Assign(ctx, types.NewEdge(1, leaf), st, nil))
		}

		hub, _ := st.Lookup(1)
		for leaf := types.VertexID(101); leaf < 140; leaf++ {
			r, _ := st.Lookup(leaf)
			require.Equal(t, 1, r.ReplicaCount())
		}
		require.Greater(t, hub.ReplicaCount(), 1, "the hub absorbs replication")
	})

	t.Run("ties hash u", func(t *testing.T) {
		st := state.New(16)
		dbh := NewDBH(testGlobals(16, 0))
		single := NewDBH(testGlobals(16, 0))

		require.NoError(t, dbh.Assign(ctx, types.NewEdge(7, 9), st, nil))
		other := state.New(16)
		require.NoError(t, single.Assign(ctx, types.NewEdge(7, 3), other, nil))

		a, _ := st.Lookup(7)
		b, _ := other.Lookup(7)
		require.Equal(t, a.Partitions(), b.Partitions())
	})

	t.Run("no partitions", func(t *testing.T) {
		err := NewDBH(testGlobals(0, 0)).Assign(ctx, types.NewEdge(1, 2), state.New(0), nil)
		require.ErrorIs(t, err, types.ErrNoCandidates)
	})
}
