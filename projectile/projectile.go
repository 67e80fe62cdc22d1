package projectile

import "github.com/hupe1980/rtc/tuple"

// Projectile is a point with a velocity.
type Projectile struct {
	Position tuple.Tuple
	Velocity tuple.Tuple
}

// Environment is the constant acceleration applied each tick.
type Environment struct {
	Gravity tuple.Tuple
	Wind    tuple.Tuple
}

// Tick advances p by one step in env.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Launch creates a projectile at start moving along heading with the given speed.
// heading is normalized first; a zero heading yields NaN velocity.
func Launch(start, heading tuple.Tuple, speed float64) Projectile {
	return Projectile{
		Position: start,
		Velocity: heading.Normalize().Mul(tuple.F(speed)),
	}
}

// Default returns the reference scenario: a projectile launched from
// point(0, 1, 0) along vector(1, 1, 0) at speed 100, with gravity
// vector(0, -1, 0) and wind vector(-0.01, 0, 0).
func Default() (Environment, Projectile) {
	env := Environment{
		Gravity: tuple.Vector(0, -1, 0),
		Wind:    tuple.Vector(-0.01, 0, 0),
	}
	return env, Launch(tuple.Point(0, 1, 0), tuple.Vector(1, 1, 0), 100)
}
