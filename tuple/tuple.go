package tuple

import "fmt"

// Tuple is a homogeneous coordinate (x, y, z, w).
type Tuple struct {
	X, Y, Z, W Float
}

// New creates a tuple from four Floats.
func New(x, y, z, w Float) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// IsPoint reports whether w equals 1.
func (t Tuple) IsPoint() bool { return t.W.Equal(1) }

// IsVector reports whether w equals 0.
func (t Tuple) IsVector() bool { return t.W.Equal(0) }

// Add returns the componentwise sum.
func (t Tuple) Add(o Tuple) Tuple {
	return Tuple{
		X: t.X.Add(o.X),
		Y: t.Y.Add(o.Y),
		Z: t.Z.Add(o.Z),
		W: t.W.Add(o.W),
	}
}

// Sub returns the componentwise difference.
func (t Tuple) Sub(o Tuple) Tuple {
	return Tuple{
		X: t.X.Sub(o.X),
		Y: t.Y.Sub(o.Y),
		Z: t.Z.Sub(o.Z),
		W: t.W.Sub(o.W),
	}
}

// Mul scales every component, w included, by s.
// Scaling a point moves its w away from 1.
func (t Tuple) Mul(s Float) Tuple {
	return Tuple{
		X: t.X.Mul(s),
		Y: t.Y.Mul(s),
		Z: t.Z.Mul(s),
		W: t.W.Mul(s),
	}
}

// Neg negates every component.
func (t Tuple) Neg() Tuple {
	return Tuple{
		X: t.X.Neg(),
		Y: t.Y.Neg(),
		Z: t.Z.Neg(),
		W: t.W.Neg(),
	}
}

// Magnitude returns the Euclidean norm over all four components.
func (t Tuple) Magnitude() Float {
	return t.X.Sqr().Add(t.Y.Sqr()).Add(t.Z.Sqr()).Add(t.W.Sqr()).Sqrt()
}

// Normalize divides every component by the magnitude.
// A zero-length tuple yields NaN components.
func (t Tuple) Normalize() Tuple {
	m := t.Magnitude()
	return Tuple{
		X: t.X.Div(m),
		Y: t.Y.Div(m),
		Z: t.Z.Div(m),
		W: t.W.Div(m),
	}
}

// Dot returns the sum of the componentwise products.
func (t Tuple) Dot(o Tuple) Float {
	return t.X.Mul(o.X).Add(t.Y.Mul(o.Y)).Add(t.Z.Mul(o.Z)).Add(t.W.Mul(o.W))
}

// Cross returns the 3-D cross product of the x, y, z parts.
// The result's w is always 0, whatever the inputs' w.
func (t Tuple) Cross(o Tuple) Tuple {
	return Tuple{
		X: t.Y.Mul(o.Z).Sub(t.Z.Mul(o.Y)),
		Y: t.Z.Mul(o.X).Sub(t.X.Mul(o.Z)),
		Z: t.X.Mul(o.Y).Sub(t.Y.Mul(o.X)),
		W: 0,
	}
}

// Equal reports whether all four components are epsilon equal.
func (t Tuple) Equal(o Tuple) bool {
	return t.X.Equal(o.X) && t.Y.Equal(o.Y) && t.Z.Equal(o.Z) && t.W.Equal(o.W)
}

func (t Tuple) String() string {
	return fmt.Sprintf("(%v, %v, %v, %v)", t.X, t.Y, t.Z, t.W)
}

// Of creates a tuple from raw float64 values.
func Of(x, y, z, w float64) Tuple {
	return New(Float(x), Float(y), Float(z), Float(w))
}

// Point creates a tuple with w = 1.
func Point(x, y, z float64) Tuple {
	return Of(x, y, z, 1)
}

// Vector creates a tuple with w = 0.
func Vector(x, y, z float64) Tuple {
	return Of(x, y, z, 0)
}
