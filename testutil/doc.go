// Package testutil provides testing utilities for rtc.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating random points,
// vectors and projectile launches.
//
// # Random Tuple Generation
//
//	rng := testutil.NewRNG(seed)
//	vs := rng.Vectors(100, -10, 10) // random vectors, components in [-10, 10)
//	ps := rng.Points(100, -10, 10)  // random points
//	u := rng.UnitVector()           // magnitude 1
package testutil
