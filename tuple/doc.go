// Package tuple provides homogeneous-coordinate tuple algebra.
//
// A Tuple holds four Float components (x, y, z, w). A tuple with w == 1 is a
// point, a tuple with w == 0 is a vector. Any other w is still a legal tuple;
// adding two points, for example, yields w == 2.
//
// Float comparisons are epsilon tolerant (see Epsilon). Arithmetic follows
// IEEE-754 and never fails: normalizing a zero-length tuple or taking the
// square root of a negative Float yields NaN or Inf components.
//
// # Usage
//
//	p := tuple.Point(0, 1, 0)
//	v := tuple.Vector(1, 1, 0).Normalize().Mul(100)
//	next := p.Add(v)
package tuple
