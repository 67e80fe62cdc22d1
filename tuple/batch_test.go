package tuple_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rtc/testutil"
	"github.com/hupe1980/rtc/tuple"
)

func TestMap(t *testing.T) {
	rng := testutil.NewRNG(4711)
	in := rng.Vectors(5000, -50, 50)

	t.Run("PreservesOrder", func(t *testing.T) {
		out, err := tuple.Map(context.Background(), in, tuple.Tuple.Normalize, tuple.WithWorkers(4))
		require.NoError(t, err)
		require.Len(t, out, len(in))
		for i := range in {
			assert.Equal(t, in[i].Normalize(), out[i])
		}
	})

	t.Run("DefaultWorkers", func(t *testing.T) {
		shift := tuple.Vector(1, 0, 0)
		out, err := tuple.Map(context.Background(), in, func(v tuple.Tuple) tuple.Tuple { return v.Add(shift) })
		require.NoError(t, err)
		assert.Equal(t, in[17].Add(shift), out[17])
	})

	t.Run("Empty", func(t *testing.T) {
		out, err := tuple.Map(context.Background(), nil, tuple.Tuple.Neg)
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out, err := tuple.Map(ctx, in, tuple.Tuple.Neg)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Nil(t, out)
	})
}

func TestSum(t *testing.T) {
	assert.Equal(t, tuple.Tuple{}, tuple.Sum())
	assertTupleEqual(t, tuple.Vector(-0.01, -1, 0), tuple.Sum(tuple.Vector(0, -1, 0), tuple.Vector(-0.01, 0, 0)))
	assertTupleEqual(t, tuple.Of(3, 3, 3, 2), tuple.Sum(tuple.Point(1, 1, 1), tuple.Point(2, 2, 2)))
}
