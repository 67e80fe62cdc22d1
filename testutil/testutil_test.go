package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectors(t *testing.T) {
	rng := NewRNG(4711)

	vs := rng.Vectors(8, -1, 1)

	assert.Len(t, vs, 8)
	for _, v := range vs {
		assert.True(t, v.IsVector())
		assert.GreaterOrEqual(t, v.X.Float64(), -1.0)
		assert.Less(t, v.X.Float64(), 1.0)
	}
}

func TestPoints(t *testing.T) {
	rng := NewRNG(4711)

	ps := rng.Points(8, 0, 10)

	assert.Len(t, ps, 8)
	for _, p := range ps {
		assert.True(t, p.IsPoint())
		assert.GreaterOrEqual(t, p.Y.Float64(), 0.0)
	}
}

func TestUnitVector(t *testing.T) {
	rng := NewRNG(4711)

	for range 32 {
		v := rng.UnitVector()
		assert.InDelta(t, 1.0, v.Magnitude().Float64(), 1e-9)
		assert.True(t, v.IsVector())
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	v1 := rng.Tuple(-5, 5)

	rng.Reset()
	v2 := rng.Tuple(-5, 5)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestFloat64Range(t *testing.T) {
	rng := NewRNG(1)

	for range 100 {
		f := rng.Float64Range(2, 3)
		assert.GreaterOrEqual(t, f, 2.0)
		assert.Less(t, f, 3.0)
	}
	assert.GreaterOrEqual(t, rng.Intn(10), 0)
	assert.Less(t, rng.Float64(), 1.0)
}
