// Package projectile simulates a projectile under gravity and wind using
// tuple algebra.
//
// Each tick moves the projectile by its velocity, then changes the velocity
// by the environment's gravity and wind. A simulation runs until the
// projectile's y coordinate is no longer greater than zero.
//
// # Usage
//
//	env, p := projectile.Default()
//	res, err := projectile.Simulate(ctx, env, p,
//	    projectile.WithObserver(func(s projectile.Sample) {
//	        fmt.Printf("Position: %v Ticks: %d\n", s.Position, s.Tick)
//	    }),
//	)
//
// Sweep runs many independent launches concurrently.
package projectile
