package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/vcut/types"
)

func TestState_Record(t *testing.T) {
	t.Run("returns the same record for the same id", func(t *testing.T) {
		st := New(4)

		r1 := st.Record(1)
		r2 := st.Record(1)

		require.Same(t, r1, r2)
		require.Equal(t, 1, st.NumVertices())
	})

	t.Run("concurrent first touch creates exactly one record", func(t *testing.T) {
		st := New(4)
		const workers = 32
		got := make([]types.VertexRecord, workers)

		var wg sync.WaitGroup
		start := make(chan struct{})
		for i := range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				got[i] = st.Record(99)
			}()
		}
		close(start)
		wg.Wait()

		for i := 1; i < workers; i++ {
			require.Same(t, got[0], got[i])
		}
		require.Equal(t, 1, st.NumVertices())
	})

	t.Run("lookup does not create", func(t *testing.T) {
		st := New(2)

		_, ok := st.Lookup(5)
		require.False(t, ok)
		require.Zero(t, st.NumVertices())

		st.Record(5)
		r, ok := st.Lookup(5)
		require.True(t, ok)
		require.EqualValues(t, 5, r.ID())
	})
}

func TestState_Loads(t *testing.T) {
	t.Run("min and max over zero loads", func(t *testing.T) {
		st := New(3)

		require.Equal(t, int64(0), st.MinLoad())
		require.Equal(t, int64(0), st.MaxLoad())
	})

	t.Run("tracks per partition loads", func(t *testing.T) {
		st := New(3)
		e := types.NewEdge(1, 2)

		st.IncrementMachineLoad(0, e)
		st.IncrementMachineLoad(0, e)
		st.IncrementMachineLoad(2, e)

		require.Equal(t, int64(2), st.MachineLoad(0))
		require.Equal(t, int64(0), st.MachineLoad(1))
		require.Equal(t, int64(0), st.MinLoad())
		require.Equal(t, int64(2), st.MaxLoad())
		require.Equal(t, []int64{2, 0, 1}, st.EdgeLoads())
	})

	t.Run("zero partitions", func(t *testing.T) {
		st := New(0)

		require.Equal(t, 0, st.NumPartitions())
		require.Equal(t, int64(0), st.MinLoad())
		require.Equal(t, int64(0), st.MaxLoad())
	})

	t.Run("concurrent increments are not lost", func(t *testing.T) {
		st := New(2)
		var wg sync.WaitGroup
		for w := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range 1000 {
					st.IncrementMachineLoad(w%2, types.NewEdge(1, 2))
				}
			}()
		}
		wg.Wait()

		require.Equal(t, []int64{4000, 4000}, st.EdgeLoads())
	})

	t.Run("base state has no vertex load capability", func(t *testing.T) {
		require.Nil(t, New(2).VertexLoads())
	})
}

func TestState_Snapshot(t *testing.T) {
	st := New(2)
	st.Record(1).AddPartition(0)
	st.Record(1).AddPartition(1)
	st.Record(2).AddPartition(1)
	st.Record(3) // looked up by an edge that was never committed
	st.IncrementMachineLoad(1, types.NewEdge(1, 2))

	snap := st.Snapshot()

	require.Equal(t, []int64{0, 1}, snap.EdgeLoads)
	require.Nil(t, snap.VertexLoads)
	require.Equal(t, int64(1), snap.Edges)
	require.Equal(t, 3, st.NumVertices())
	require.Equal(t, 2, snap.Vertices)
	require.Equal(t, int64(3), snap.Replicas)
	require.InDelta(t, 1.5, snap.ReplicationFactor(), 1e-9)
	require.Zero(t, Snapshot{}.ReplicationFactor())
}

func TestCoordinated(t *testing.T) {
	st := NewCoordinated(3)

	tracker := st.VertexLoads()
	require.NotNil(t, tracker)

	tracker.IncrementMachineLoadVertices(2)
	tracker.IncrementMachineLoadVertices(2)
	tracker.IncrementMachineLoadVertices(0)

	require.Equal(t, int64(2), tracker.MachineLoadVertices(2))
	require.Equal(t, []int64{1, 0, 2}, st.VertexLoadSlice())

	st.IncrementMachineLoad(1, types.NewEdge(3, 4))
	snap := st.Snapshot()
	require.Equal(t, []int64{1, 0, 2}, snap.VertexLoads)
	require.Equal(t, int64(1), snap.Edges)
}
