package strategy

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vcut/state"
	"github.com/arloliu/vcut/types"
)

func TestRoundRobin_Assign(t *testing.T) {
	ctx := context.Background()

	t.Run("cycles in arrival order", func(t *testing.T) {
		st := state.New(3)
		rr := NewRoundRobin(testGlobals(3, 0))

		for i := range types.VertexID(7) {
			require.NoError(t, rr.Assign(ctx, types.NewEdge(i, i+100), st, nil))
		}

		require.Equal(t, []int64{3, 2, 2}, st.EdgeLoads())
		r, _ := st.Lookup(0)
		require.Equal(t, []int{0}, r.Partitions())
		r, _ = st.Lookup(4)
		require.Equal(t, []int{1}, r.Partitions())
	})

	t.Run("balanced under concurrency", func(t *testing.T) {
		st := state.New(4)
		rr := NewRoundRobin(testGlobals(4, 0))

		var wg sync.WaitGroup
		for w := range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range 100 {
					id := types.VertexID(w*1000 + i)
					_ = rr.Assign(ctx, types.NewEdge(id, id+500), st, nil)
				}
			}()
		}
		wg.Wait()

		require.Equal(t, []int64{100, 100, 100, 100}, st.EdgeLoads())
	})

	t.Run("replicates a repeated vertex", func(t *testing.T) {
		st := state.NewCoordinated(2)
		rr := NewRoundRobin(testGlobals(2, 0))

		require.NoError(t, rr.Assign(ctx, types.NewEdge(1, 2), st, nil))
		require.NoError(t, rr.Assign(ctx, types.NewEdge(1, 3), st, nil))

		r, _ := st.Lookup(1)
		require.Equal(t, []int{0, 1}, r.Partitions())
		require.Equal(t, int64(2), r.Degree())
		require.Equal(t, []int64{2, 2}, st.VertexLoadSlice())
	})

	t.Run("no partitions", func(t *testing.T) {
		err := NewRoundRobin(testGlobals(0, 0)).Assign(ctx, types.NewEdge(1, 2), state.New(0), nil)
		require.ErrorIs(t, err, types.ErrNoCandidates)
	})
}
