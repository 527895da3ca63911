package planar

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestEqual(t *testing.T) {
	test.That(t, equal(1.0, 1.0))
	test.That(t, equal(1.0, 1.0+1e-5))
	test.That(t, equal(1.0+1e-5, 1.0))
	test.That(t, !equal(1.0, 1.001))
	test.That(t, !equal(1.001, 1.0))
}

func TestLess(t *testing.T) {
	test.That(t, less(1.0, 2.0))
	test.That(t, !less(2.0, 1.0))
	test.That(t, !less(1.0, 1.0))
	test.That(t, !less(1.0, 1.0+1e-5)) // within tolerance
	test.That(t, less(1.0, 1.001))
}

func TestPoint(t *testing.T) {
	p := Point{3, 4}
	test.T(t, p.Add(Point{1, 1}), Point{4, 5})
	test.T(t, p.Sub(Point{1, 1}), Point{2, 3})
	test.Float(t, p.PerpDot(Point{3, 0}), -12.0)
	test.Float(t, p.PerpDot(p), 0.0)
	test.That(t, p.Equals(Point{3 + 1e-5, 4 - 1e-5}))
	test.That(t, !p.Equals(Point{3, 5}))
	test.String(t, p.String(), "(3,4)")
}
