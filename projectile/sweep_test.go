package projectile

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/rtc"
	"github.com/hupe1980/rtc/tuple"
)

func TestSweep(t *testing.T) {
	env, _ := Default()
	speeds := []float64{100, 1, 50, 10}
	want := []int{143, 4, 72, 16}

	launches := make([]Projectile, len(speeds))
	for i, s := range speeds {
		launches[i] = Launch(tuple.Point(0, 1, 0), tuple.Vector(1, 1, 0), s)
	}

	var metrics rtc.BasicMetricsCollector
	results, err := Sweep(context.Background(), env, launches, WithConcurrency(2), WithMetrics(&metrics))
	require.NoError(t, err)
	require.Len(t, results, len(launches))

	for i, res := range results {
		assert.Equal(t, want[i], res.Ticks, "launch %d", i)
		assert.True(t, res.Landed())
	}
	assert.Equal(t, int64(4), metrics.GetStats().RunCount)
}

func TestSweepMatchesSimulate(t *testing.T) {
	env, p := Default()

	single, err := Simulate(context.Background(), env, p)
	require.NoError(t, err)

	results, err := Sweep(context.Background(), env, []Projectile{p, p, p}, WithConcurrency(0))
	require.NoError(t, err)
	for _, res := range results {
		assert.Equal(t, single, res)
	}
}

func TestSweepPartialFailure(t *testing.T) {
	env, p := Default()
	stuck := Projectile{Position: tuple.Point(0, 1, 0), Velocity: tuple.Vector(0, 1e6, 0)}

	results, err := Sweep(context.Background(), env, []Projectile{p, stuck}, WithMaxTicks(200))
	require.ErrorIs(t, err, ErrMaxTicks)
	assert.Contains(t, err.Error(), "run 1")
	assert.NotContains(t, err.Error(), "run 0")

	assert.Equal(t, 143, results[0].Ticks)
	assert.Equal(t, 200, results[1].Ticks)
}

func TestSweepEmpty(t *testing.T) {
	env, _ := Default()

	results, err := Sweep(context.Background(), env, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
