// Package rtc is the first stage of a ray tracer: homogeneous-coordinate
// tuple algebra and a projectile simulation that exercises it.
//
// The algebra lives in package tuple. Package projectile drives the
// tick-based simulation, package trajectory exports recorded runs, and
// package blobstore stores the exports locally or in object storage.
//
// This package holds the ambient pieces shared by the others: a structured
// Logger and a MetricsCollector.
//
// # Quick Start
//
//	env, p := projectile.Default()
//	res, err := projectile.Simulate(ctx, env, p,
//	    projectile.WithLogger(rtc.NewTextLogger(slog.LevelInfo)),
//	)
//	fmt.Println(res.Ticks, res.Final.Position)
package rtc
