package tuple

import (
	"math"
	"strconv"
)

// Epsilon is the tolerance used by Float.Equal.
// Two Floats are equal iff their absolute difference is strictly less than Epsilon.
const Epsilon = 1e-5

// Float is a float64 with epsilon-tolerant equality and ordering.
type Float float64

// F wraps a float64 literal.
func F(v float64) Float { return Float(v) }

// Float64 returns the raw value.
func (a Float) Float64() float64 { return float64(a) }

// Add returns a + b.
func (a Float) Add(b Float) Float { return Float(float64(a) + float64(b)) }

// Sub returns a - b.
func (a Float) Sub(b Float) Float { return Float(float64(a) - float64(b)) }

// Mul returns a * b.
func (a Float) Mul(b Float) Float { return Float(float64(a) * float64(b)) }

// Div returns a / b. Division by zero yields ±Inf or NaN.
func (a Float) Div(b Float) Float { return Float(float64(a) / float64(b)) }

// Neg returns -a.
func (a Float) Neg() Float { return Float(-float64(a)) }

// Abs returns |a|.
func (a Float) Abs() Float { return Float(math.Abs(float64(a))) }

// Sqr returns a * a.
func (a Float) Sqr() Float { return a.Mul(a) }

// Sqrt returns the square root of a. Negative input yields NaN.
func (a Float) Sqrt() Float { return Float(math.Sqrt(float64(a))) }

// Equal reports whether |a - b| < Epsilon.
// NaN is never equal to anything, including itself.
func (a Float) Equal(b Float) bool {
	return math.Abs(float64(a)-float64(b)) < Epsilon
}

// Ordering is the result of Float.Compare.
type Ordering int

const (
	Less Ordering = iota - 1
	Equal
	Greater
	// Unordered is returned when either operand is NaN.
	Unordered
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Unordered:
		return "Unordered"
	default:
		return "Ordering(" + strconv.Itoa(int(o)) + ")"
	}
}

// Compare orders a and b. Values that are Equal under the epsilon tolerance
// compare as Equal; everything else falls back to numeric order, so two
// infinities of the same sign compare Equal even though Equal reports false.
func (a Float) Compare(b Float) Ordering {
	switch {
	case a.Equal(b), a == b:
		return Equal
	case a < b:
		return Less
	case a > b:
		return Greater
	default:
		return Unordered
	}
}

// Less reports whether a orders strictly before b.
func (a Float) Less(b Float) bool { return a.Compare(b) == Less }

// Greater reports whether a orders strictly after b.
func (a Float) Greater(b Float) bool { return a.Compare(b) == Greater }

func (a Float) String() string {
	return strconv.FormatFloat(float64(a), 'g', -1, 64)
}
