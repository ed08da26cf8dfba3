package backoff

import (
	"context"
	rand "math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponential(t *testing.T) {
	t.Run("grows and stays within jitter bounds", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(1, 2))
		b := NewExponential(10*time.Microsecond, 0, 2, rng)

		nominal := 10 * time.Microsecond
		for range 8 {
			d, ok := b.Next()
			require.True(t, ok)
			require.GreaterOrEqual(t, d, nominal/2)
			require.LessOrEqual(t, d, nominal)
			nominal *= 2
		}
	})

	t.Run("reports exhaustion past the ceiling", func(t *testing.T) {
		b := NewExponential(time.Microsecond, 8*time.Microsecond, 2, nil)

		steps := 0
		for {
			d, ok := b.Next()
			require.LessOrEqual(t, d, 8*time.Microsecond)
			if !ok {
				break
			}
			steps++
		}

		// 1, 2, 4, 8 fit under the ceiling; 16 does not
		require.Equal(t, 4, steps)
	})

	t.Run("reset restarts from base", func(t *testing.T) {
		b := NewExponential(time.Microsecond, 2*time.Microsecond, 2, nil)
		b.Next()
		b.Next()
		_, ok := b.Next()
		require.False(t, ok)

		b.Reset()
		_, ok = b.Next()
		require.True(t, ok)
	})

	t.Run("invalid parameters fall back to defaults", func(t *testing.T) {
		b := NewExponential(0, 0, 0.5, nil)

		d, ok := b.Next()
		require.True(t, ok)
		require.LessOrEqual(t, d, DefaultBase)

		d, ok = b.Next()
		require.True(t, ok)
		require.LessOrEqual(t, d, 2*DefaultBase)
	})

	t.Run("same seed gives same sequence", func(t *testing.T) {
		a := NewExponential(time.Microsecond, 0, 2, rand.New(rand.NewPCG(7, 7)))
		b := NewExponential(time.Microsecond, 0, 2, rand.New(rand.NewPCG(7, 7)))

		for range 10 {
			da, _ := a.Next()
			db, _ := b.Next()
			require.Equal(t, da, db)
		}
	})
}

func TestSleep(t *testing.T) {
	t.Run("returns nil after the delay", func(t *testing.T) {
		require.NoError(t, Sleep(context.Background(), time.Microsecond))
		require.NoError(t, Sleep(context.Background(), 0))
	})

	t.Run("returns context error when canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, Sleep(ctx, time.Hour), context.Canceled)
	})
}
