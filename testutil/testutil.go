package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/rtc/tuple"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Float64Range returns a pseudo-random number in [minVal, maxVal).
func (r *RNG) Float64Range(minVal, maxVal float64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uniformLocked(minVal, maxVal)
}

func (r *RNG) uniformLocked(minVal, maxVal float64) float64 {
	return minVal + r.rand.Float64()*(maxVal-minVal)
}

// Tuple returns a tuple with all four components in [minVal, maxVal).
func (r *RNG) Tuple(minVal, maxVal float64) tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()
	return tuple.Of(
		r.uniformLocked(minVal, maxVal),
		r.uniformLocked(minVal, maxVal),
		r.uniformLocked(minVal, maxVal),
		r.uniformLocked(minVal, maxVal),
	)
}

// Vectors generates num vectors with x, y, z in [minVal, maxVal).
// Locks only once per call.
func (r *RNG) Vectors(num int, minVal, maxVal float64) []tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]tuple.Tuple, num)
	for i := range out {
		out[i] = tuple.Vector(
			r.uniformLocked(minVal, maxVal),
			r.uniformLocked(minVal, maxVal),
			r.uniformLocked(minVal, maxVal),
		)
	}
	return out
}

// Points generates num points with x, y, z in [minVal, maxVal).
func (r *RNG) Points(num int, minVal, maxVal float64) []tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]tuple.Tuple, num)
	for i := range out {
		out[i] = tuple.Point(
			r.uniformLocked(minVal, maxVal),
			r.uniformLocked(minVal, maxVal),
			r.uniformLocked(minVal, maxVal),
		)
	}
	return out
}

// UnitVector returns a random vector of magnitude 1.
// Components are drawn from a standard normal distribution, which gives a
// uniform direction on the sphere.
func (r *RNG) UnitVector() tuple.Tuple {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		x, y, z := r.rand.NormFloat64(), r.rand.NormFloat64(), r.rand.NormFloat64()
		norm := math.Sqrt(x*x + y*y + z*z)
		if norm > 1e-9 {
			return tuple.Vector(x/norm, y/norm, z/norm)
		}
	}
}
