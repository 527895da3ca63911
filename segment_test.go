package planar

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestSegmentCanonical(t *testing.T) {
	d := newSegmentData(10, 2, 0, 1, 0)
	test.T(t, d.p0, Point{0, 1})
	test.T(t, d.p1, Point{10, 2})
	test.T(t, d.dir, Point{10, 1})
	test.T(t, d.number, 0)
	test.T(t, d.group, -1)
}

func TestSegmentVertical(t *testing.T) {
	test.That(t, newSegmentData(5, 0, 5, 10, 0).vertical())
	test.That(t, !newSegmentData(0, 0, 10, 10, 0).vertical())

	v := newSegmentData(5, 10, 5, 0, 0)
	test.Float(t, v.specialY, 10.0) // keeps the first endpoint's y
	test.Float(t, v.sweepY(5.0), 10.0)
}

func TestSegmentDegenerate(t *testing.T) {
	test.That(t, newSegmentData(1, 1, 1, 1, 0).degenerate())
	test.That(t, !newSegmentData(1, 1, 2, 1, 0).degenerate())
}

func TestSegmentYAt(t *testing.T) {
	d := newSegmentData(0, 0, 10, 10, 0)
	test.Float(t, d.yAt(0.0), 0.0)
	test.Float(t, d.yAt(5.0), 5.0)
	test.Float(t, d.yAt(10.0), 10.0)
	test.Float(t, d.sweepY(2.0), 2.0)
}

func TestSegmentIntersection(t *testing.T) {
	var tts = []struct {
		a, b [4]float64
		z    Point
		ok   bool
	}{
		{[4]float64{0, 0, 10, 10}, [4]float64{0, 10, 10, 0}, Point{5, 5}, true},
		{[4]float64{0, 0, 10, 0}, [4]float64{5, -5, 5, 5}, Point{5, 0}, true},   // vertical
		{[4]float64{0, 0, 10, 10}, [4]float64{0, 1, 10, 11}, Point{}, false},    // parallel
		{[4]float64{0, 0, 10, 0}, [4]float64{5, 0, 15, 0}, Point{5, 0}, true},   // collinear overlap
		{[4]float64{0, 0, 10, 0}, [4]float64{11, 0, 15, 0}, Point{}, false},     // collinear apart
		{[4]float64{0, 0, 10, 10}, [4]float64{10, 10, 20, 0}, Point{10, 10}, true}, // shared endpoint
		{[4]float64{0, 0, 4, 4}, [4]float64{0, 10, 10, 0}, Point{}, false},      // cross beyond end
		{[4]float64{3, 3, 3, 3}, [4]float64{0, 0, 10, 10}, Point{}, false},      // degenerate on the line
	}
	for _, tt := range tts {
		a := newSegmentData(tt.a[0], tt.a[1], tt.a[2], tt.a[3], 0)
		b := newSegmentData(tt.b[0], tt.b[1], tt.b[2], tt.b[3], 1)
		z, ok := a.intersection(b)
		test.T(t, ok, tt.ok)
		if ok {
			test.Float(t, z.X, tt.z.X)
			test.Float(t, z.Y, tt.z.Y)
		}
	}
}

func TestSegmentSwap(t *testing.T) {
	a := &Segment{newSegmentData(0, 0, 1, 1, 0)}
	b := &Segment{newSegmentData(2, 2, 3, 3, 1)}
	a.swap(b)

	// payloads moved, slots stayed
	test.T(t, a.Number(), 1)
	test.T(t, b.Number(), 0)
	test.T(t, a.d.index, 0)
	test.T(t, b.d.index, 1)
	test.T(t, a.Start(), Point{2, 2})
	test.T(t, b.Start(), Point{0, 0})
}

func TestSegmentConnect(t *testing.T) {
	a := &Segment{newSegmentData(0, 0, 1, 1, 0)}
	b := &Segment{newSegmentData(0, 1, 1, 0, 1)}
	a.connect(b)
	b.connect(a)
	test.T(t, a.Neighbors(), []int{1})
	test.T(t, b.Neighbors(), []int{0})
}
