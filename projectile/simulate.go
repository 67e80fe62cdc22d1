package projectile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/rtc/tuple"
)

// ErrMaxTicks is returned when a projectile is still airborne after the
// configured number of ticks.
var ErrMaxTicks = errors.New("projectile still airborne")

// Sample is the state of a projectile after a tick.
// Tick 0 is the launch state.
type Sample struct {
	Tick     int
	Position tuple.Tuple
	Velocity tuple.Tuple
}

// Result is the outcome of a simulation.
type Result struct {
	// Ticks is the number of ticks taken.
	Ticks int
	// Final is the projectile state after the last tick.
	Final Projectile
	// Trajectory holds one sample per tick, starting with the launch state.
	// It is nil when recording is disabled.
	Trajectory []Sample
}

// Landed reports whether the projectile ended at or below y = 0.
func (r Result) Landed() bool {
	return !r.Final.Position.Y.Greater(0)
}

// Simulate ticks p in env until its y coordinate is no longer greater than
// zero (under epsilon ordering, so y within Epsilon of 0 counts as landed).
//
// On error the returned Result holds the progress made so far. Errors are
// ErrMaxTicks (wrapped) or the context's error.
func Simulate(ctx context.Context, env Environment, p Projectile, optFns ...Option) (Result, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return simulate(ctx, env, p, &opts)
}

func simulate(ctx context.Context, env Environment, p Projectile, opts *options) (Result, error) {
	start := time.Now()

	var (
		ticks      int
		trajectory []Sample
		err        error
	)
	if opts.record {
		trajectory = append(trajectory, Sample{Tick: 0, Position: p.Position, Velocity: p.Velocity})
	}

	for p.Position.Y.Greater(0) {
		if opts.maxTicks > 0 && ticks >= opts.maxTicks {
			err = fmt.Errorf("%w after %d ticks", ErrMaxTicks, ticks)
			break
		}
		if err = ctx.Err(); err != nil {
			break
		}
		if opts.limiter != nil {
			if err = opts.limiter.Wait(ctx); err != nil {
				break
			}
		}

		p = Tick(env, p)
		ticks++

		s := Sample{Tick: ticks, Position: p.Position, Velocity: p.Velocity}
		if opts.record {
			trajectory = append(trajectory, s)
		}
		for _, fn := range opts.observers {
			fn(s)
		}
		opts.logger.LogTick(ctx, ticks, p.Position, p.Velocity)
	}

	opts.logger.LogLanding(ctx, ticks, p.Position, err)
	opts.metrics.RecordRun(ticks, time.Since(start), err)

	return Result{
		Ticks:      ticks,
		Final:      p,
		Trajectory: trajectory,
	}, err
}
