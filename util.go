package planar

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used by all floating point comparisons. It can be
// changed before segments are added or solved.
var Epsilon = 1e-4

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// less returns true if a is smaller than b by more than Epsilon.
func less(a, b float64) bool {
	return b-a > Epsilon
}

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// PerpDot returns the cross product of p and q, ie. the signed area of the
// parallelogram they span.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}
